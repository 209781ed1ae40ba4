package services

import "errors"

// ErrNotFound covers unknown or inactive entities referenced by slug or id.
var ErrNotFound = errors.New("not found")

// ValidationError carries a message that is safe to surface to the visitor
// verbatim. Anything else is masked at the handler level.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}
