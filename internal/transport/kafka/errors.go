package kafka

import (
	"errors"

	"service-dispatch/internal/apperr"
)

// Reasons attached to rejected location messages.
const (
	ReasonBadJSON     = "bad_json"
	ReasonBadDriverID = "bad_driver_id"
	ReasonInvalid     = "invalid_report"
	ReasonUnknown     = "unknown_driver"
)

// PermanentError marks a message that will never succeed on redelivery.
// The consumer commits such messages instead of retrying them.
type PermanentError struct {
	Reason string
	Err    error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "kafka: rejected: " + e.Reason
	}
	return "kafka: rejected (" + e.Reason + "): " + e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err as a PermanentError with an explicit reason.
func Permanent(reason string, err error) error {
	return PermanentError{Reason: reason, Err: err}
}

// rejection classifies a handler error. Validation and missing-entity errors
// from the registry are as final as a malformed payload.
func rejection(err error) (string, bool) {
	var perm PermanentError
	switch {
	case errors.As(err, &perm):
		return perm.Reason, true
	case errors.Is(err, apperr.ErrInvalid):
		return ReasonInvalid, true
	case errors.Is(err, apperr.ErrNotFound):
		return ReasonUnknown, true
	default:
		return "", false
	}
}
