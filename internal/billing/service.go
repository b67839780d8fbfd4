package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/catalog"
	"github.com/hospitalsanjose/billing/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	CreateCharge(ctx context.Context, charge *Charge) error
	GetCharge(ctx context.Context, id uuid.UUID) (*Charge, error)
	ListCharges(ctx context.Context, filter ListFilter) ([]*Charge, error)
	VoidCharge(ctx context.Context, id uuid.UUID) error
	HasInvoice(ctx context.Context, chargeID uuid.UUID) (bool, error)
	ReplaceSplits(ctx context.Context, chargeID uuid.UUID, splits []PaymentSplit) error
	StayRanges(ctx context.Context, stayID uuid.UUID) ([]DayRange, error)

	// BeginStayBilling opens a transaction that serializes day-range billing
	// for one stay, so two concurrent requests cannot both pass the overlap
	// check against the same state.
	BeginStayBilling(ctx context.Context, stayID uuid.UUID) (StayTx, error)
}

type StayTx interface {
	Ranges(ctx context.Context) ([]DayRange, error)
	CreateCharge(ctx context.Context, charge *Charge) error
	Commit() error
	Rollback() error
}

// Catalog resolves unit prices for line items that reference catalog items.
type Catalog interface {
	Lookup(ctx context.Context, id uuid.UUID) (*catalog.Item, error)
}

type Service struct {
	repo           Repository
	catalog        Catalog
	calc           money.Calculator
	allowedMethods []string
}

func NewService(repo Repository, cat Catalog, calc money.Calculator, allowedMethods []string) *Service {
	return &Service{
		repo:           repo,
		catalog:        cat,
		calc:           calc,
		allowedMethods: allowedMethods,
	}
}

type LineParams struct {
	CatalogItemID *uuid.UUID
	Description   string
	Quantity      int
	UnitPrice     *decimal.Decimal // required for free-text items, overrides catalog otherwise
}

type DiscountParams struct {
	Kind   DiscountKind
	Value  decimal.Decimal
	Reason string
}

type CreateParams struct {
	Source   Source
	Lines    []LineParams
	Discount *DiscountParams
}

type ListFilter struct {
	SourceKind *SourceKind
	SourceID   *uuid.UUID
	Status     *Status
}

// Create assembles a pending charge from line items. Prices for catalog
// lines come from the catalog; line totals are quantity times the
// tax-inclusive unit price; an optional discount applies to the pre-tax
// subtotal with tax recomputed on the remainder.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Charge, error) {
	if !params.Source.Kind.Valid() {
		return nil, validationf("source", "unknown kind %q", params.Source.Kind)
	}

	if params.Source.ID == uuid.Nil {
		return nil, validationf("source", "id is required")
	}

	if len(params.Lines) == 0 {
		return nil, validationf("lines", "at least one line item is required")
	}

	items, gross, err := s.buildLineItems(ctx, params.Lines)
	if err != nil {
		return nil, err
	}

	charge := &Charge{
		Source: params.Source,
		Status: StatusPending,
		Items:  items,
	}

	charge.Total, charge.Discount, err = s.recompute(gross, params.Discount)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("creating charge: %w", err)
	}

	return charge, nil
}

func (s *Service) buildLineItems(ctx context.Context, lines []LineParams) ([]LineItem, decimal.Decimal, error) {
	items := make([]LineItem, 0, len(lines))
	gross := decimal.Zero

	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, decimal.Zero, validationf("lines", "line %d: quantity must be positive", i+1)
		}

		item := LineItem{
			CatalogItemID: line.CatalogItemID,
			Description:   line.Description,
			Quantity:      line.Quantity,
		}

		switch {
		case line.UnitPrice != nil:
			if !line.UnitPrice.IsPositive() {
				return nil, decimal.Zero, validationf("lines", "line %d: unit price must be positive", i+1)
			}

			item.UnitPrice = *line.UnitPrice

		case line.CatalogItemID != nil:
			catItem, err := s.catalog.Lookup(ctx, *line.CatalogItemID)
			if err != nil {
				return nil, decimal.Zero, fmt.Errorf("resolving catalog item for line %d: %w", i+1, err)
			}

			item.UnitPrice = catItem.UnitPrice
			if item.Description == "" {
				item.Description = catItem.Name
			}

		default:
			return nil, decimal.Zero, validationf("lines", "line %d: unit price is required for free-text items", i+1)
		}

		if item.Description == "" {
			return nil, decimal.Zero, validationf("lines", "line %d: description is required", i+1)
		}

		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		gross = gross.Add(item.Total)
		items = append(items, item)
	}

	return items, gross, nil
}

// recompute derives a charge total from the gross line-item sum and optional
// discount terms. The discount applies pre-tax, and tax is recomputed on the
// discounted subtotal. This is the only path that produces a charge total.
func (s *Service) recompute(gross decimal.Decimal, dp *DiscountParams) (decimal.Decimal, *Discount, error) {
	if dp == nil {
		return gross, nil, nil
	}

	subtotal := s.calc.ExtractTax(gross).Subtotal

	amount, err := ComputeDiscount(subtotal, dp.Value, dp.Kind)
	if err != nil {
		return decimal.Zero, nil, err
	}

	total := s.calc.AddTax(subtotal.Sub(amount)).Total

	return total, &Discount{
		Kind:   dp.Kind,
		Value:  dp.Value,
		Amount: amount,
		Reason: dp.Reason,
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Charge, error) {
	return s.repo.GetCharge(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Charge, error) {
	return s.repo.ListCharges(ctx, filter)
}

// Void cancels a charge. Only pending charges with no invoice attached can
// be voided; paid history is immutable.
func (s *Service) Void(ctx context.Context, id uuid.UUID) error {
	charge, err := s.repo.GetCharge(ctx, id)
	if err != nil {
		return err
	}

	if charge.Status != StatusPending {
		return validationf("charge", "cannot void a %s charge", charge.Status)
	}

	invoiced, err := s.repo.HasInvoice(ctx, id)
	if err != nil {
		return fmt.Errorf("checking for invoice: %w", err)
	}

	if invoiced {
		return validationf("charge", "cannot void a charge with an invoice")
	}

	return s.repo.VoidCharge(ctx, id)
}

// PendingStayDays reports the unbilled tail of a hospital stay.
func (s *Service) PendingStayDays(ctx context.Context, stayID uuid.UUID, admission, reference time.Time) (PendingStay, error) {
	ranges, err := s.repo.StayRanges(ctx, stayID)
	if err != nil {
		return PendingStay{}, fmt.Errorf("loading billed ranges: %w", err)
	}

	return PendingDays(ranges, admission, reference)
}

// BillStayDays charges a batch of stay days at a daily rate. The caller may
// bill fewer days than are pending; the range always starts at the given
// date and covers `days` consecutive days. The overlap check runs inside
// the stay-billing transaction.
func (s *Service) BillStayDays(ctx context.Context, stayID uuid.UUID, start time.Time, days int, dailyRate decimal.Decimal) (*Charge, error) {
	if days <= 0 {
		return nil, validationf("days", "must be positive, got %d", days)
	}

	if !dailyRate.IsPositive() {
		return nil, validationf("daily_rate", "must be positive, got %s", dailyRate)
	}

	from := day(start)
	to := from.AddDate(0, 0, days-1)

	tx, err := s.repo.BeginStayBilling(ctx, stayID)
	if err != nil {
		return nil, fmt.Errorf("beginning stay billing: %w", err)
	}
	defer tx.Rollback()

	billed, err := tx.Ranges(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading billed ranges: %w", err)
	}

	if conflict := Overlap(from, to, billed); conflict != nil {
		return nil, &OverlapError{
			CandidateFrom: from,
			CandidateTo:   to,
			ExistingFrom:  conflict.From,
			ExistingTo:    conflict.To,
		}
	}

	total := dailyRate.Mul(decimal.NewFromInt(int64(days))).Round(2)

	charge := &Charge{
		Source: Source{Kind: SourceHospitalization, ID: stayID},
		Status: StatusPending,
		Total:  total,
		Stay:   &DayRange{From: from, To: to, Days: days},
		Items: []LineItem{{
			Description: fmt.Sprintf("Hospital stay %s to %s (%d days)",
				from.Format(time.DateOnly), to.Format(time.DateOnly), days),
			Quantity:  days,
			UnitPrice: dailyRate,
			Total:     total,
		}},
	}

	if err := tx.CreateCharge(ctx, charge); err != nil {
		return nil, fmt.Errorf("creating stay charge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stay billing: %w", err)
	}

	return charge, nil
}

// ApplySplits validates the splits against the charge total and replaces
// any previously recorded splits, so retries are idempotent.
func (s *Service) ApplySplits(ctx context.Context, chargeID uuid.UUID, splits []PaymentSplit) error {
	charge, err := s.repo.GetCharge(ctx, chargeID)
	if err != nil {
		return err
	}

	if err := ValidateSplits(splits, charge.Total, s.allowedMethods); err != nil {
		return err
	}

	if err := s.repo.ReplaceSplits(ctx, chargeID, splits); err != nil {
		return fmt.Errorf("replacing splits: %w", err)
	}

	return nil
}
