package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Resources owned by another user are reported with this error as well.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// FieldError describes a validation failure of a single input field. It matches ErrValidation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// NewFieldError returns a validation error for one field.
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
