// Package domain holds the entity types and the error kinds shared by
// every layer. There are exactly two failure categories: a referenced id
// that does not exist (ErrNotFound) and an operation-specific precondition
// that does not hold (ErrInvalidInput). Services forward these upward
// unchanged; the HTTP layer maps them to status codes with errors.Is.
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced identifier has no record in
// the relevant table.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a precondition of the operation is
// violated, e.g. booking a flight with no available seats.
var ErrInvalidInput = errors.New("invalid input")

// NotFoundf builds a message-carrying error that matches ErrNotFound
// under errors.Is.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}

// InvalidInputf builds a message-carrying error that matches
// ErrInvalidInput under errors.Is.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
