// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the free-form profile text
// consumed by the job match endpoints.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name for the user.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:80;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:120;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// UserData is opaque profile text supplied by the user (skills, experience).
	UserData string `gorm:"type:text"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
