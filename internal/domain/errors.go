package domain

import (
	"errors"
	"fmt"
)

// Flow-state errors: caller-facing guidance, not user-input problems.
var (
	ErrNoActiveFlow = errors.New("no active profile flow")
	ErrNoActiveItem = errors.New("no vacancy awaiting a decision")
	ErrNoProfile    = errors.New("profile not found")
)

// RejectReason classifies why a step input was rejected.
type RejectReason string

const (
	RejectTooFewSkills  RejectReason = "too_few_skills"
	RejectNotANumber    RejectReason = "not_a_number"
	RejectBelowMinimum  RejectReason = "below_minimum"
	RejectUnknownChoice RejectReason = "unknown_choice"
)

// ValidationError is a user-input rejection. It is recovered locally by
// re-prompting the same step and never surfaced as a system fault.
type ValidationError struct {
	Reason RejectReason
	Floor  int // set for RejectBelowMinimum
}

func (e *ValidationError) Error() string {
	return "validation rejected: " + string(e.Reason)
}

// AsValidationError unwraps err into a ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}

// PersistenceError is a store failure surfaced to the caller so the write can
// be retried without re-asking the user.
type PersistenceError struct {
	Op     string
	UserID int64
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %s (user %d): %v", e.Op, e.UserID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
