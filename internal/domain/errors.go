package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries one or more input problems. errors.Is(err, ErrInvalidInput)
// reports true for it.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns a ValidationError for the given messages, or nil when there are none.
func NewValidationError(msgs ...string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
