package services

import (
	"errors"
)

// Validation messages returned to callers
const (
	MsgMissingBody           = "Missing request body"
	MsgMissingIDOrName       = "Missing 'id' or 'name' in the request body"
	MsgMissingIDOrNameOrPath = "Missing 'id' or 'name' in the request body or path"
	MsgMissingPathID         = "Missing 'id' in the path parameters"
	MsgDeleteMissingPathID   = "Missing 'id' in path parameters"
)

// ValidationError reports missing or malformed request input
type ValidationError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
