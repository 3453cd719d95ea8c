package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")
)
