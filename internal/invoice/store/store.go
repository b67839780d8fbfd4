package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospitalsanjose/billing/internal/billing"
	billingstore "github.com/hospitalsanjose/billing/internal/billing/store"
	"github.com/hospitalsanjose/billing/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	id, charge_id, kind, number, range_id, cai, taxpayer_id,
	customer_name, issuer_name, subtotal, discount, tax, total, issued_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var (
		inv     invoice.Invoice
		kindStr string
	)

	if err := s.Scan(
		&inv.ID, &inv.ChargeID, &kindStr, &inv.Number, &inv.RangeID, &inv.CAI,
		&inv.TaxpayerID, &inv.Customer, &inv.Issuer,
		&inv.Subtotal, &inv.Discount, &inv.Tax, &inv.Total, &inv.IssuedAt,
	); err != nil {
		return nil, err
	}

	inv.Kind = invoice.Kind(kindStr)

	return &inv, nil
}

const selectRangeColumns = `
	id, cai, emission_point, range_start, range_end, current_correlative,
	expires_at, status, created_at
`

func scanRange(s scanner) (*invoice.Range, error) {
	var (
		rng       invoice.Range
		statusStr string
	)

	if err := s.Scan(
		&rng.ID, &rng.CAI, &rng.EmissionPoint, &rng.Start, &rng.End,
		&rng.Current, &rng.ExpiresAt, &statusStr, &rng.CreatedAt,
	); err != nil {
		return nil, err
	}

	rng.Status = invoice.RangeStatus(statusStr)

	return &rng, nil
}

type issueTx struct {
	tx *sql.Tx
}

func (s *Store) BeginIssue(ctx context.Context) (invoice.IssueTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning issue tx: %w", err)
	}

	return &issueTx{tx: tx}, nil
}

func (t *issueTx) Commit() error   { return t.tx.Commit() }
func (t *issueTx) Rollback() error { return t.tx.Rollback() }

// ChargeForUpdate locks the charge row for the duration of the issuance, so
// two concurrent issuances against the same charge serialize.
func (t *issueTx) ChargeForUpdate(ctx context.Context, chargeID uuid.UUID) (*billing.Charge, error) {
	query := `
		SELECT id, source_kind, source_id, total, status,
			discount_kind, discount_value, discount_amount, discount_reason,
			stay_from, stay_to, stay_days, created_at, updated_at
		FROM charges c
		WHERE id = $1
		FOR UPDATE
	`

	c, err := billingstore.ScanCharge(t.tx.QueryRowContext(ctx, query, chargeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrChargeNotFound
		}

		return nil, fmt.Errorf("locking charge: %w", err)
	}

	if c.Items, err = billingstore.LoadLineItems(ctx, t.tx, chargeID); err != nil {
		return nil, err
	}

	return c, nil
}

func (t *issueTx) HasInvoice(ctx context.Context, chargeID uuid.UUID) (bool, error) {
	var exists bool

	err := t.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE charge_id = $1)`, chargeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking invoice existence: %w", err)
	}

	return exists, nil
}

// LatestRangeForUpdate row-locks the newest active range. Two concurrent
// legal issuances therefore never observe the same correlative cursor.
func (t *issueTx) LatestRangeForUpdate(ctx context.Context) (*invoice.Range, error) {
	query := `SELECT ` + selectRangeColumns + `
		FROM invoice_ranges
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`

	rng, err := scanRange(t.tx.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("locking invoice range: %w", err)
	}

	return rng, nil
}

func (t *issueTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (charge_id, kind, number, range_id, cai, taxpayer_id,
			customer_name, issuer_name, subtotal, discount, tax, total, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		inv.ChargeID, inv.Kind, inv.Number, inv.RangeID, inv.CAI, inv.TaxpayerID,
		inv.Customer, inv.Issuer, inv.Subtotal, inv.Discount, inv.Tax, inv.Total,
		inv.IssuedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}

	return nil
}

func (t *issueTx) AdvanceRange(ctx context.Context, rangeID uuid.UUID, correlative int64) error {
	query := `
		UPDATE invoice_ranges
		SET current_correlative = $2
		WHERE id = $1 AND current_correlative < $2
	`

	res, err := t.tx.ExecContext(ctx, query, rangeID, correlative)
	if err != nil {
		return fmt.Errorf("advancing range cursor: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("range cursor already at or past %d", correlative)
	}

	return nil
}

// NextReceiptNumber atomically increments the receipt counter row. The
// formatted REC- number is derived from the returned value, never parsed
// back out of previously issued receipts.
func (t *issueTx) NextReceiptNumber(ctx context.Context) (int64, error) {
	var next int64

	err := t.tx.QueryRowContext(ctx, `
		UPDATE receipt_sequence
		SET last_value = last_value + 1
		WHERE id = 1
		RETURNING last_value
	`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("advancing receipt sequence: %w", err)
	}

	return next, nil
}

func (t *issueTx) ReplaceSplits(ctx context.Context, chargeID uuid.UUID, splits []billing.PaymentSplit) error {
	return billingstore.ReplaceSplitsIn(ctx, t.tx, chargeID, splits)
}

func (t *issueTx) MarkChargePaid(ctx context.Context, chargeID uuid.UUID) error {
	query := `
		UPDATE charges
		SET status = 'paid', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	res, err := t.tx.ExecContext(ctx, query, chargeID)
	if err != nil {
		return fmt.Errorf("marking charge paid: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return billing.ErrChargeNotFound
	}

	return nil
}

// MarkRangeExhausted runs on its own connection: exhaustion must stick even
// though the issuance that discovered it rolled back.
func (s *Store) MarkRangeExhausted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE invoice_ranges
		SET status = 'exhausted'
		WHERE id = $1 AND status = 'active'
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("marking range exhausted: %w", err)
	}

	return nil
}

func (s *Store) CreateRange(ctx context.Context, rng *invoice.Range) error {
	query := `
		INSERT INTO invoice_ranges (cai, emission_point, range_start, range_end,
			current_correlative, expires_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		rng.CAI, rng.EmissionPoint, rng.Start, rng.End,
		rng.Current, rng.ExpiresAt, rng.Status,
	).Scan(&rng.ID, &rng.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting range: %w", err)
	}

	return nil
}

func (s *Store) ActiveRange(ctx context.Context) (*invoice.Range, error) {
	query := `SELECT ` + selectRangeColumns + `
		FROM invoice_ranges
		WHERE status = 'active' AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	rng, err := scanRange(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNoActiveRange
		}

		return nil, fmt.Errorf("getting active range: %w", err)
	}

	return rng, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrInvoiceNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + ` FROM invoices WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.ChargeID != nil {
		query += fmt.Sprintf(" AND charge_id = $%d", argIdx)

		args = append(args, *filter.ChargeID)
		argIdx++
	}

	query += " ORDER BY issued_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}
