package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceKind identifies the kind of clinical act a charge bills.
type SourceKind string

const (
	SourceConsultation    SourceKind = "consultation"
	SourceSale            SourceKind = "sale"
	SourceHospitalization SourceKind = "hospitalization"
	SourceSurgery         SourceKind = "surgery"
)

func (k SourceKind) Valid() bool {
	switch k {
	case SourceConsultation, SourceSale, SourceHospitalization, SourceSurgery:
		return true
	}

	return false
}

// Source is the clinical act a charge belongs to, as a tagged pair. A charge
// always has exactly one source; the kind is never ambiguous.
type Source struct {
	Kind SourceKind
	ID   uuid.UUID
}

// Status represents the lifecycle state of a charge.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusVoid    Status = "void"
)

// DiscountKind selects how a discount value is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount holds the discount terms attached to a charge. Amount is the
// computed pre-tax discount; Value is the term it was computed from.
type Discount struct {
	Kind   DiscountKind
	Value  decimal.Decimal
	Amount decimal.Decimal
	Reason string
}

// LineItem is an immutable snapshot of one billed unit. Corrections create
// a new line item on a new charge; history is never edited.
type LineItem struct {
	ID            uuid.UUID
	ChargeID      uuid.UUID
	CatalogItemID *uuid.UUID // nil for free-text items
	Description   string
	Quantity      int
	UnitPrice     decimal.Decimal // tax-inclusive
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// DayRange is an inclusive span of billed calendar days of a hospital stay.
type DayRange struct {
	From time.Time
	To   time.Time
	Days int
}

// Charge is the aggregate amount owed for one clinical source. Total always
// equals the sum of its line items minus discount with tax reapplied; it is
// only ever set through the recompute path.
type Charge struct {
	ID        uuid.UUID
	Source    Source
	Total     decimal.Decimal // tax-inclusive
	Status    Status
	Discount  *Discount
	Stay      *DayRange // set when the charge bills stay days
	Items     []LineItem
	Splits    []PaymentSplit
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// PaymentSplit is one (method, amount) pair of a charge's payment. The
// splits of a charge always sum to its total within the rounding tolerance.
type PaymentSplit struct {
	ID        uuid.UUID
	ChargeID  uuid.UUID
	Method    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// PendingStay describes the not-yet-billed tail of a hospital stay.
type PendingStay struct {
	Start time.Time
	End   time.Time
	Days  int
}
