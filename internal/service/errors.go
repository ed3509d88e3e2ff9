package service

import "net/http"

// Error is a terminal service failure carrying the HTTP status to surface
// and, for validation failures, per-field messages for form highlighting.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewValidationError creates a 400 error with a field→message map
func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// NewUnauthorizedError creates a 401 error
func NewUnauthorizedError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewConflictError creates a 409 error
func NewConflictError(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusConflict, Message: message, Fields: fields}
}

// NewDependencyError creates a 500 error wrapping the underlying cause.
// The cause is logged server-side; Message is what clients may see.
func NewDependencyError(message string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, cause: cause}
}
