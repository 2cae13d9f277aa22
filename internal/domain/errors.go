package domain

import (
	"errors"
)

// Sentinel errors used across all layers.
var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateUser      = errors.New("email already registered")
	ErrDuplicateSubject   = errors.New("subject already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrNotConfigured      = errors.New("not configured")
)

// ErrInvalidID is returned for chat ids the store cannot parse.
var ErrInvalidID error = NewValidationError("id", "Invalid chat ID")

// ValidationError describes malformed or missing input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PublicError pairs a sentinel with the message shown to API clients.
type PublicError struct {
	Kind    error
	Message string
}

func (e *PublicError) Error() string {
	return e.Message
}

func (e *PublicError) Unwrap() error { return e.Kind }

// NewPublicError wraps kind with a client-facing message.
func NewPublicError(kind error, message string) *PublicError {
	return &PublicError{Kind: kind, Message: message}
}
