package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or missing required input. The reason
// names the precise unmet precondition so callers can surface it verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StateConflictError reports an operation attempted from a state that does
// not permit it. No mutation is performed when it is returned.
type StateConflictError struct {
	Op     string
	Status string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s in status %q", e.Op, e.Status)
}

// Conflict builds a StateConflictError.
func Conflict(op string, status string) error {
	return &StateConflictError{Op: op, Status: status}
}

// ErrForbidden is returned when the actor lacks permission for the
// operation on the targeted entity.
var ErrForbidden = errors.New("forbidden")
