// Package apperr defines the error taxonomy shared by the trivia services.
//
// NotFound means a correctly shaped request had nothing to return (missing id,
// page past the end, no categories). Unprocessable covers persistence faults and
// payloads the store rejected. Unauthorized and Forbidden come from the editor
// token check. Handlers map these onto HTTP statuses; anything else is an
// internal error.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// NotFound wraps ErrNotFound with the operation that produced it.
func NotFound(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotFound)
}

// Unprocessable wraps a persistence fault so that errors.Is matches both
// ErrUnprocessable and the underlying cause.
func Unprocessable(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, ErrUnprocessable)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnprocessable, err)
}
