package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/billing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

const selectChargeColumns = `
	c.id, c.source_kind, c.source_id, c.total, c.status,
	c.discount_kind, c.discount_value, c.discount_amount, c.discount_reason,
	c.stay_from, c.stay_to, c.stay_days, c.created_at, c.updated_at
`

// ScanCharge reads one charge row. Expected column order matches
// selectChargeColumns.
func ScanCharge(s Scanner) (*billing.Charge, error) {
	var (
		c              billing.Charge
		kindStr        string
		statusStr      string
		discountKind   sql.NullString
		discountValue  decimal.NullDecimal
		discountAmount decimal.NullDecimal
		discountReason sql.NullString
		stay           billing.DayRange
		stayFrom       sql.NullTime
		stayTo         sql.NullTime
		stayDays       sql.NullInt64
	)

	if err := s.Scan(
		&c.ID, &kindStr, &c.Source.ID, &c.Total, &statusStr,
		&discountKind, &discountValue, &discountAmount, &discountReason,
		&stayFrom, &stayTo, &stayDays, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Source.Kind = billing.SourceKind(kindStr)
	c.Status = billing.Status(statusStr)

	if discountKind.Valid {
		c.Discount = &billing.Discount{
			Kind:   billing.DiscountKind(discountKind.String),
			Value:  discountValue.Decimal,
			Amount: discountAmount.Decimal,
			Reason: discountReason.String,
		}
	}

	if stayFrom.Valid {
		stay.From = stayFrom.Time
		stay.To = stayTo.Time
		stay.Days = int(stayDays.Int64)
		c.Stay = &stay
	}

	return &c, nil
}

func insertCharge(ctx context.Context, q Querier, c *billing.Charge) error {
	query := `
		INSERT INTO charges (source_kind, source_id, total, status,
			discount_kind, discount_value, discount_amount, discount_reason,
			stay_from, stay_to, stay_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at
	`

	var (
		discountKind, discountValue, discountAmount, discountReason any
		stayFrom, stayTo, stayDays                                  any
	)

	if d := c.Discount; d != nil {
		discountKind, discountValue, discountAmount, discountReason =
			d.Kind, d.Value, d.Amount, d.Reason
	}

	if s := c.Stay; s != nil {
		stayFrom, stayTo, stayDays = s.From, s.To, s.Days
	}

	err := q.QueryRowContext(ctx, query,
		c.Source.Kind, c.Source.ID, c.Total, c.Status,
		discountKind, discountValue, discountAmount, discountReason,
		stayFrom, stayTo, stayDays,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting charge: %w", err)
	}

	itemQuery := `
		INSERT INTO line_items (charge_id, catalog_item_id, description, quantity, unit_price, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	for i := range c.Items {
		item := &c.Items[i]
		item.ChargeID = c.ID

		err := q.QueryRowContext(ctx, itemQuery,
			item.ChargeID, item.CatalogItemID, item.Description,
			item.Quantity, item.UnitPrice, item.Total,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting line item: %w", err)
		}
	}

	return nil
}

func LoadLineItems(ctx context.Context, q Querier, chargeID uuid.UUID) ([]billing.LineItem, error) {
	query := `
		SELECT id, charge_id, catalog_item_id, description, quantity, unit_price, total, created_at
		FROM line_items
		WHERE charge_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.QueryContext(ctx, query, chargeID)
	if err != nil {
		return nil, fmt.Errorf("loading line items: %w", err)
	}
	defer rows.Close()

	var items []billing.LineItem

	for rows.Next() {
		var item billing.LineItem
		if err := rows.Scan(
			&item.ID, &item.ChargeID, &item.CatalogItemID, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Total, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Store) CreateCharge(ctx context.Context, c *billing.Charge) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertCharge(ctx, tx, c); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing charge: %w", err)
	}

	return nil
}

func (s *Store) GetCharge(ctx context.Context, id uuid.UUID) (*billing.Charge, error) {
	query := `SELECT ` + selectChargeColumns + ` FROM charges c WHERE c.id = $1`

	c, err := ScanCharge(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrChargeNotFound
		}

		return nil, fmt.Errorf("getting charge: %w", err)
	}

	if c.Items, err = LoadLineItems(ctx, s.db, id); err != nil {
		return nil, err
	}

	if c.Splits, err = s.loadSplits(ctx, id); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Store) ListCharges(ctx context.Context, filter billing.ListFilter) ([]*billing.Charge, error) {
	query := `SELECT ` + selectChargeColumns + ` FROM charges c WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.SourceKind != nil {
		query += fmt.Sprintf(" AND c.source_kind = $%d", argIdx)

		args = append(args, *filter.SourceKind)
		argIdx++
	}

	if filter.SourceID != nil {
		query += fmt.Sprintf(" AND c.source_id = $%d", argIdx)

		args = append(args, *filter.SourceID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND c.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY c.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}
	defer rows.Close()

	var charges []*billing.Charge

	for rows.Next() {
		c, err := ScanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning charge: %w", err)
		}

		charges = append(charges, c)
	}

	return charges, rows.Err()
}

func (s *Store) VoidCharge(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE charges
		SET status = 'void', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("voiding charge: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return billing.ErrChargeNotFound
	}

	return nil
}

func (s *Store) HasInvoice(ctx context.Context, chargeID uuid.UUID) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE charge_id = $1)`, chargeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking invoice existence: %w", err)
	}

	return exists, nil
}

func (s *Store) ReplaceSplits(ctx context.Context, chargeID uuid.UUID, splits []billing.PaymentSplit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ReplaceSplitsIn(ctx, tx, chargeID, splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing splits: %w", err)
	}

	return nil
}

// ReplaceSplitsIn swaps the full split set of a charge in one statement pair,
// which keeps retries of the same payment idempotent.
func ReplaceSplitsIn(ctx context.Context, q Querier, chargeID uuid.UUID, splits []billing.PaymentSplit) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM payment_splits WHERE charge_id = $1`, chargeID); err != nil {
		return fmt.Errorf("deleting existing splits: %w", err)
	}

	query := `
		INSERT INTO payment_splits (charge_id, method, amount, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	for i := range splits {
		sp := &splits[i]
		sp.ChargeID = chargeID

		if err := q.QueryRowContext(ctx, query, chargeID, sp.Method, sp.Amount).
			Scan(&sp.ID, &sp.CreatedAt); err != nil {
			return fmt.Errorf("inserting split: %w", err)
		}
	}

	return nil
}

func (s *Store) loadSplits(ctx context.Context, chargeID uuid.UUID) ([]billing.PaymentSplit, error) {
	query := `
		SELECT id, charge_id, method, amount, created_at
		FROM payment_splits
		WHERE charge_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, chargeID)
	if err != nil {
		return nil, fmt.Errorf("loading splits: %w", err)
	}
	defer rows.Close()

	var splits []billing.PaymentSplit

	for rows.Next() {
		var sp billing.PaymentSplit
		if err := rows.Scan(&sp.ID, &sp.ChargeID, &sp.Method, &sp.Amount, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning split: %w", err)
		}

		splits = append(splits, sp)
	}

	return splits, rows.Err()
}

const stayRangesQuery = `
	SELECT stay_from, stay_to, stay_days
	FROM charges
	WHERE source_kind = 'hospitalization'
	  AND source_id = $1
	  AND status <> 'void'
	  AND stay_from IS NOT NULL
	ORDER BY stay_from ASC
`

func stayRanges(ctx context.Context, q Querier, stayID uuid.UUID) ([]billing.DayRange, error) {
	rows, err := q.QueryContext(ctx, stayRangesQuery, stayID)
	if err != nil {
		return nil, fmt.Errorf("loading stay ranges: %w", err)
	}
	defer rows.Close()

	var ranges []billing.DayRange

	for rows.Next() {
		var r billing.DayRange
		if err := rows.Scan(&r.From, &r.To, &r.Days); err != nil {
			return nil, fmt.Errorf("scanning stay range: %w", err)
		}

		ranges = append(ranges, r)
	}

	return ranges, rows.Err()
}

func (s *Store) StayRanges(ctx context.Context, stayID uuid.UUID) ([]billing.DayRange, error) {
	return stayRanges(ctx, s.db, stayID)
}

func stayLockKey(stayID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(stayID.String()))

	return int64(h.Sum64())
}

type stayTx struct {
	tx     *sql.Tx
	stayID uuid.UUID
}

// BeginStayBilling opens a transaction holding a per-stay advisory lock, so
// the read-validate-insert sequence of day-range billing is serialized per
// stay. The storage-level exclusion constraint on charge day ranges backs
// this up.
func (s *Store) BeginStayBilling(ctx context.Context, stayID uuid.UUID) (billing.StayTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning stay billing tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", stayLockKey(stayID)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring stay lock: %w", err)
	}

	return &stayTx{tx: tx, stayID: stayID}, nil
}

func (t *stayTx) Commit() error   { return t.tx.Commit() }
func (t *stayTx) Rollback() error { return t.tx.Rollback() }

func (t *stayTx) Ranges(ctx context.Context) ([]billing.DayRange, error) {
	return stayRanges(ctx, t.tx, t.stayID)
}

func (t *stayTx) CreateCharge(ctx context.Context, c *billing.Charge) error {
	return insertCharge(ctx, t.tx, c)
}
