package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/billing"
	"github.com/hospitalsanjose/billing/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	// BeginIssue opens the single transaction an issuance runs in. Every
	// write of the flow (invoice row, range cursor, splits, charge status)
	// commits or rolls back together.
	BeginIssue(ctx context.Context) (IssueTx, error)

	// MarkRangeExhausted records exhaustion outside the issuance
	// transaction, so the state change survives the failed request.
	MarkRangeExhausted(ctx context.Context, id uuid.UUID) error

	CreateRange(ctx context.Context, r *Range) error
	ActiveRange(ctx context.Context) (*Range, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
}

type IssueTx interface {
	// ChargeForUpdate loads the charge with its line items under a row lock.
	ChargeForUpdate(ctx context.Context, chargeID uuid.UUID) (*billing.Charge, error)
	HasInvoice(ctx context.Context, chargeID uuid.UUID) (bool, error)

	// LatestRangeForUpdate returns the most recently created active range
	// under a row lock, or nil when none exists.
	LatestRangeForUpdate(ctx context.Context) (*Range, error)

	CreateInvoice(ctx context.Context, inv *Invoice) error
	AdvanceRange(ctx context.Context, rangeID uuid.UUID, correlative int64) error
	NextReceiptNumber(ctx context.Context) (int64, error)
	ReplaceSplits(ctx context.Context, chargeID uuid.UUID, splits []billing.PaymentSplit) error
	MarkChargePaid(ctx context.Context, chargeID uuid.UUID) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo           Repository
	calc           money.Calculator
	issuer         string
	emissionPoint  string
	allowedMethods []string
}

func NewService(repo Repository, calc money.Calculator, issuer, emissionPoint string, allowedMethods []string) *Service {
	return &Service{
		repo:           repo,
		calc:           calc,
		issuer:         issuer,
		emissionPoint:  emissionPoint,
		allowedMethods: allowedMethods,
	}
}

type SplitParams struct {
	Method string
	Amount decimal.Decimal
}

type IssueParams struct {
	// TaxpayerID selects a legal invoice when present; a simple receipt
	// is issued otherwise.
	TaxpayerID   *string
	CustomerName string
	// Method is the payment method for the implicit full-total split when
	// no explicit splits are given.
	Method string
	Splits []SplitParams
}

type ListFilter struct {
	Kind     *Kind
	ChargeID *uuid.UUID
}

// Issue turns a pending charge into a paid, invoiced one. The whole flow —
// recomputing the total from line items, validating splits, drawing the
// document number, persisting the invoice, advancing the numbering state and
// marking the charge paid — runs in one transaction. On any failure the
// charge stays pending, no splits are recorded and no number is burned.
func (s *Service) Issue(ctx context.Context, chargeID uuid.UUID, params IssueParams) (*Invoice, error) {
	if params.CustomerName == "" {
		return nil, &billing.ValidationError{Field: "customer_name", Reason: "is required"}
	}

	tx, err := s.repo.BeginIssue(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning issuance: %w", err)
	}
	defer tx.Rollback()

	charge, err := tx.ChargeForUpdate(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	if charge.Status != billing.StatusPending {
		return nil, &billing.ValidationError{
			Field:  "charge",
			Reason: fmt.Sprintf("cannot invoice a %s charge", charge.Status),
		}
	}

	invoiced, err := tx.HasInvoice(ctx, chargeID)
	if err != nil {
		return nil, fmt.Errorf("checking for invoice: %w", err)
	}

	if invoiced {
		return nil, &billing.ValidationError{Field: "charge", Reason: "already has an invoice"}
	}

	subtotal, discount, tax, total, err := s.recompute(charge)
	if err != nil {
		return nil, err
	}

	splits := toSplits(params.Splits, chargeID)
	if len(splits) == 0 {
		splits = []billing.PaymentSplit{{ChargeID: chargeID, Method: params.Method, Amount: total}}
	}

	if err := billing.ValidateSplits(splits, total, s.allowedMethods); err != nil {
		return nil, err
	}

	inv := &Invoice{
		ChargeID:   chargeID,
		TaxpayerID: params.TaxpayerID,
		Customer:   params.CustomerName,
		Issuer:     s.issuer,
		Subtotal:   subtotal,
		Discount:   discount,
		Tax:        tax,
		Total:      total,
	}

	if params.TaxpayerID != nil && *params.TaxpayerID != "" {
		err = s.numberLegal(ctx, tx, inv)
	} else {
		inv.TaxpayerID = nil
		err = s.numberSimple(ctx, tx, inv)
	}

	if err != nil {
		return nil, err
	}

	if err := tx.ReplaceSplits(ctx, chargeID, splits); err != nil {
		return nil, fmt.Errorf("recording splits: %w", err)
	}

	if err := tx.MarkChargePaid(ctx, chargeID); err != nil {
		return nil, fmt.Errorf("marking charge paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing issuance: %w", err)
	}

	return inv, nil
}

// recompute rebuilds subtotal, discount, tax and total from the charge's
// line items and discount terms. Stored charge totals are never trusted at
// issuance time.
func (s *Service) recompute(charge *billing.Charge) (subtotal, discount, tax, total decimal.Decimal, err error) {
	gross := decimal.Zero
	for _, item := range charge.Items {
		gross = gross.Add(item.Total)
	}

	bd := s.calc.ExtractTax(gross)
	subtotal = bd.Subtotal
	discount = decimal.Zero

	if d := charge.Discount; d != nil {
		discount, err = billing.ComputeDiscount(subtotal, d.Value, d.Kind)
		if err != nil {
			return decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, err
		}

		bd = s.calc.AddTax(subtotal.Sub(discount))
	}

	return subtotal, discount, bd.Tax, bd.Total, nil
}

// numberLegal draws the next correlative from the newest active range and
// creates the invoice row. The cursor advance commits with the invoice, so a
// failed insert never burns a number. Exhaustion is the one durable side
// effect of a failed issuance: it is recorded in its own transaction after
// this one rolls back.
func (s *Service) numberLegal(ctx context.Context, tx IssueTx, inv *Invoice) error {
	rng, err := tx.LatestRangeForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("selecting invoice range: %w", err)
	}

	if rng == nil {
		return ErrNoActiveRange
	}

	now := time.Now()
	if !rng.ExpiresAt.After(now) {
		return fmt.Errorf("range %s expired on %s: %w",
			rng.CAI, rng.ExpiresAt.Format(time.DateOnly), ErrRangeExpired)
	}

	if rng.Current >= rng.End {
		tx.Rollback()

		if markErr := s.repo.MarkRangeExhausted(ctx, rng.ID); markErr != nil {
			return fmt.Errorf("marking range %s exhausted: %w", rng.CAI, markErr)
		}

		return fmt.Errorf("range %s ended at correlative %d: %w", rng.CAI, rng.End, ErrRangeExhausted)
	}

	next := rng.Current + 1

	inv.Kind = KindLegal
	inv.Number = LegalNumber(rng.EmissionPoint, next)
	inv.RangeID = &rng.ID
	inv.CAI = &rng.CAI
	inv.IssuedAt = now

	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	if err := tx.AdvanceRange(ctx, rng.ID, next); err != nil {
		return fmt.Errorf("advancing range: %w", err)
	}

	return nil
}

func (s *Service) numberSimple(ctx context.Context, tx IssueTx, inv *Invoice) error {
	seq, err := tx.NextReceiptNumber(ctx)
	if err != nil {
		return fmt.Errorf("advancing receipt sequence: %w", err)
	}

	inv.Kind = KindSimple
	inv.Number = ReceiptNumber(seq)
	inv.IssuedAt = time.Now()

	return tx.CreateInvoice(ctx, inv)
}

func toSplits(params []SplitParams, chargeID uuid.UUID) []billing.PaymentSplit {
	splits := make([]billing.PaymentSplit, len(params))
	for i, p := range params {
		splits[i] = billing.PaymentSplit{ChargeID: chargeID, Method: p.Method, Amount: p.Amount}
	}

	return splits
}

type RangeParams struct {
	CAI           string
	EmissionPoint string
	Start         int64
	End           int64
	ExpiresAt     time.Time
}

// CreateRange registers a new fiscal numbering authorization. The cursor
// starts at Start; the first issued correlative is Start+1 and the last
// is End.
func (s *Service) CreateRange(ctx context.Context, params RangeParams) (*Range, error) {
	if params.CAI == "" {
		return nil, &billing.ValidationError{Field: "cai", Reason: "is required"}
	}

	if params.Start <= 0 || params.End < params.Start {
		return nil, &billing.ValidationError{
			Field:  "range",
			Reason: fmt.Sprintf("bounds [%d, %d] are not a valid correlative span", params.Start, params.End),
		}
	}

	if !params.ExpiresAt.After(time.Now()) {
		return nil, &billing.ValidationError{Field: "expires_at", Reason: "must be in the future"}
	}

	rng := &Range{
		CAI:           params.CAI,
		EmissionPoint: params.EmissionPoint,
		Start:         params.Start,
		End:           params.End,
		Current:       params.Start,
		ExpiresAt:     params.ExpiresAt,
		Status:        RangeActive,
	}

	if rng.EmissionPoint == "" {
		rng.EmissionPoint = s.emissionPoint
	}

	if err := s.repo.CreateRange(ctx, rng); err != nil {
		return nil, fmt.Errorf("creating range: %w", err)
	}

	return rng, nil
}

// ActiveRange returns the newest active, unexpired range, if any.
func (s *Service) ActiveRange(ctx context.Context) (*Range, error) {
	return s.repo.ActiveRange(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}
