package ledger

import (
	"errors"
	"net/http"
)

// Error is a store-level failure carrying the HTTP status it maps to at
// the API edge.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidPayload reports a malformed request: missing ids, zero or
// negative amounts.
func InvalidPayload(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound reports an unknown account or user id.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate email or username during registration.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Unauthorized reports failed login credentials.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// StatusOf returns the HTTP status for err, defaulting to 500 for
// errors the store did not classify.
func StatusOf(err error) int {
	var ledgerErr *Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Status
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a NotFound ledger error.
func IsNotFound(err error) bool {
	var ledgerErr *Error
	return errors.As(err, &ledgerErr) && ledgerErr.Status == http.StatusNotFound
}
