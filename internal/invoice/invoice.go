package invoice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes legal fiscal invoices from simple receipts.
type Kind string

const (
	KindLegal  Kind = "legal"
	KindSimple Kind = "simple"
)

// Invoice is an immutable fiscal document issued against exactly one charge.
type Invoice struct {
	ID         uuid.UUID
	ChargeID   uuid.UUID
	Kind       Kind
	Number     string
	RangeID    *uuid.UUID // legal invoices only
	CAI        *string    // authorization code of the range, legal only
	TaxpayerID *string
	Customer   string
	Issuer     string
	Subtotal   decimal.Decimal // pre-tax
	Discount   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	IssuedAt   time.Time
}

// RangeStatus is the state of a fiscal numbering range. Exhausted is
// terminal; a range never becomes active again.
type RangeStatus string

const (
	RangeActive    RangeStatus = "active"
	RangeExhausted RangeStatus = "exhausted"
)

// Range is a fiscal numbering authorization: a bounded, expiring span of
// correlatives shared by all legal invoice issuances.
type Range struct {
	ID            uuid.UUID
	CAI           string
	EmissionPoint string
	Start         int64
	End           int64
	Current       int64 // last issued correlative; never exceeds End
	ExpiresAt     time.Time
	Status        RangeStatus
	CreatedAt     time.Time
}

// LegalNumber formats a legal invoice document number.
func LegalNumber(emissionPoint string, correlative int64) string {
	return fmt.Sprintf("%s-01-%08d", emissionPoint, correlative)
}

// ReceiptNumber formats a simple receipt document number.
func ReceiptNumber(sequence int64) string {
	return fmt.Sprintf("REC-%06d", sequence)
}
