package domain

import "errors"

// Common errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("record already exists")
)

// ValidationError carries the exact message returned to the client
// for a malformed or invalid request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given client message
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// AsValidationError returns the validation error wrapped in err, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
