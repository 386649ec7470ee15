package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two client-facing failure classes. Anything a
// service returns that does not wrap one of these is a store failure and is
// mapped to an internal error by the controllers.
var (
	// ErrInvalidInput marks a malformed or out-of-range client value
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a referenced entity that is absent or soft-deleted
	ErrNotFound = errors.New("not found")
)

// InvalidInputf wraps ErrInvalidInput with a human-readable reason
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with the missing reference
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse wraps a mutated record with a confirmation message. The
// record key is "pizzeria" for every mutation envelope, matching the wire
// format the original API shipped with.
type MessageResponse struct {
	Message  string      `json:"message"`
	Pizzeria interface{} `json:"pizzeria"`
}
