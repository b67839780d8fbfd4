package billing

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrChargeNotFound = errors.New("charge not found")

	// ErrNothingToBill is returned when a stay has no unbilled days left.
	// It is a business error, not grounds for a zero-amount charge.
	ErrNothingToBill = errors.New("stay has no unbilled days")
)

// ValidationError reports input that violates a billing rule. The reason
// carries enough detail (expected vs. actual values) for a precise
// user-facing message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// OverlapError reports a candidate day range that intersects an already
// billed range of the same stay.
type OverlapError struct {
	CandidateFrom time.Time
	CandidateTo   time.Time
	ExistingFrom  time.Time
	ExistingTo    time.Time
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("days %s..%s are already billed by range %s..%s",
		e.CandidateFrom.Format(time.DateOnly), e.CandidateTo.Format(time.DateOnly),
		e.ExistingFrom.Format(time.DateOnly), e.ExistingTo.Format(time.DateOnly))
}
