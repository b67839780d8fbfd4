package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospitalsanjose/billing/internal/catalog"
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

const selectItemColumns = `id, code, name, unit_price, active, created_at, updated_at`

func scanItem(s scanner) (*catalog.Item, error) {
	var item catalog.Item

	if err := s.Scan(
		&item.ID, &item.Code, &item.Name, &item.UnitPrice,
		&item.Active, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM catalog_items WHERE id = $1 AND active`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrItemNotFound
		}

		return nil, fmt.Errorf("getting catalog item: %w", err)
	}

	return item, nil
}

func (s *Store) SearchItems(ctx context.Context, query string) ([]*catalog.Item, error) {
	sqlQuery := `SELECT ` + selectItemColumns + `
		FROM catalog_items
		WHERE active AND (code ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')
		ORDER BY code ASC
		LIMIT 100
	`

	rows, err := s.db.QueryContext(ctx, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("searching catalog items: %w", err)
	}
	defer rows.Close()

	var items []*catalog.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning catalog item: %w", err)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Store) UpsertItem(ctx context.Context, params catalog.UpsertParams) (*catalog.Item, error) {
	query := `
		INSERT INTO catalog_items (code, name, unit_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (code) DO UPDATE
			SET name = EXCLUDED.name, unit_price = EXCLUDED.unit_price, updated_at = NOW()
		RETURNING ` + selectItemColumns

	item, err := scanItem(s.db.QueryRowContext(ctx, query, params.Code, params.Name, params.UnitPrice))
	if err != nil {
		return nil, fmt.Errorf("upserting catalog item: %w", err)
	}

	return item, nil
}
