package invoice

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrNoActiveRange: no usable numbering range is configured at all.
	// Operators must register a new fiscal authorization.
	ErrNoActiveRange = errors.New("no active invoice range configured")

	// ErrRangeExpired: the newest active range exists but its fiscal
	// authorization date has passed.
	ErrRangeExpired = errors.New("invoice range has expired")

	// ErrRangeExhausted: the newest active range has no correlatives left.
	// The range is marked exhausted even though the issuance fails.
	ErrRangeExhausted = errors.New("invoice range is exhausted")
)
