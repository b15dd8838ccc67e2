package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden indicates a role or ownership mismatch.
var ErrForbidden = errors.New("permission denied")

// ErrInvalidState indicates that the operation is not allowed in the current state.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates a uniqueness conflict.
var ErrConflict = errors.New("conflict")

// ErrNoDriversAvailable is returned by matching when no fresh driver is available.
var ErrNoDriversAvailable = errors.New("no drivers available")

// ErrNoCandidateFound is returned by matching when no available driver is within range.
var ErrNoCandidateFound = errors.New("no candidate found within range")

// ValidationError describes a malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Invalid returns a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError names the missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// Unwrap lets errors.Is match ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound returns a NotFoundError for the given entity.
func NotFound(entity string, id fmt.Stringer) error {
	return &NotFoundError{Entity: entity, ID: id.String()}
}

// PermissionError explains why a user may not perform an operation.
type PermissionError struct {
	UserID string
	Reason string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s: %s", e.UserID, e.Reason)
}

// Unwrap lets errors.Is match ErrForbidden.
func (e *PermissionError) Unwrap() error { return ErrForbidden }

// Forbidden returns a PermissionError for the given user.
func Forbidden(userID fmt.Stringer, reason string) error {
	return &PermissionError{UserID: userID.String(), Reason: reason}
}

// TransitionError is returned when a delivery cannot move from its current status to the requested one.
type TransitionError struct {
	DeliveryID string
	From       string
	To         string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("delivery %s: invalid status transition from %s to %s", e.DeliveryID, e.From, e.To)
}

// Unwrap lets errors.Is match ErrInvalidState.
func (e *TransitionError) Unwrap() error { return ErrInvalidState }

// StateError is returned when a precondition on the current state does not hold.
type StateError struct {
	DeliveryID string
	Current    string
	Reason     string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("delivery %s (status %s): %s", e.DeliveryID, e.Current, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidState.
func (e *StateError) Unwrap() error { return ErrInvalidState }
