package apperrors

import "errors"

// Base errors for the record-validation-and-persistence pipeline. Every
// service error wraps exactly one of these so the HTTP layer can map it
// to a status code without knowing the entity.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("resource already exists")
	ErrNotFound   = errors.New("resource not found")
	ErrInternal   = errors.New("internal error")
)

// CustomError carries a human-readable message and optional diagnostic
// detail alongside the wrapped base error.
type CustomError struct {
	Err     error
	Message string
	Details string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails attaches diagnostic detail (store error text) to the error.
// The HTTP layer only exposes it in development mode.
func (e *CustomError) WithDetails(details string) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates an error for missing or malformed input.
func NewValidationError(message string) *CustomError {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewConflictError creates an error for duplicate keys or tuples.
func NewConflictError(message string) *CustomError {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewNotFoundError creates an error for operations targeting a missing row.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewInternalError wraps a store failure with a generic message. The
// underlying error text is kept as detail for diagnostics.
func NewInternalError(err error, message string) *CustomError {
	e := &CustomError{Err: ErrInternal, Message: message}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}
