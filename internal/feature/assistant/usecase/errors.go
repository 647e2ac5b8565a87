package usecase

import "errors"

var (
	// ErrMissingInput is returned when the job description, CV or question is absent.
	ErrMissingInput = errors.New("job description and CV are required")

	// ErrMissingQuestion is returned when a custom-question request carries no question.
	ErrMissingQuestion = errors.New("question is required")

	// ErrGeneratorUnavailable is returned when no text generation client is configured.
	ErrGeneratorUnavailable = errors.New("text generator is not configured")
)
