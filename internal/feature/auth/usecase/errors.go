package usecase

import "errors"

var (
	// ErrMissingCredentials is returned when username or password is absent from a registration payload.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrPasswordTooShort is returned when the password does not meet the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrInvalidEmail is returned when the email does not match the local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the username or email collides with a stored record.
	// Callers must not reveal which of the two fields collided.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned for every failed login, regardless of
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// IsValidationError reports whether err is one of the registration input validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrInvalidEmail)
}
