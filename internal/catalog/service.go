package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	SearchItems(ctx context.Context, query string) ([]*Item, error)
	UpsertItem(ctx context.Context, params UpsertParams) (*Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type UpsertParams struct {
	Code      string
	Name      string
	UnitPrice decimal.Decimal
}

// Lookup resolves the price of a catalog item by id.
func (s *Service) Lookup(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

// Search finds active items whose code or name matches the query.
func (s *Service) Search(ctx context.Context, query string) ([]*Item, error) {
	return s.repo.SearchItems(ctx, query)
}

// Upsert creates the item or updates its name and price, keyed by code.
func (s *Service) Upsert(ctx context.Context, params UpsertParams) (*Item, error) {
	if params.Code == "" {
		return nil, &ValidationError{Reason: "item code is required"}
	}

	if !params.UnitPrice.IsPositive() {
		return nil, &ValidationError{Reason: "unit price must be positive"}
	}

	return s.repo.UpsertItem(ctx, params)
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
