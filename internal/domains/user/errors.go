package user

import "errors"

// Directory-level errors
var (
	// Not Found
	ErrUserNotFound = errors.New("user not found")

	// Conflict
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

// Authentication errors
var (
	ErrWrongPassword = errors.New("wrong password")
)

// Validation errors
// Field-level validation failures are wrapped around ErrInvalidField so
// callers can match the class while still surfacing the specific reason.
var (
	ErrInvalidField = errors.New("invalid field")
)
