package pricelist

import (
	"context"
	"fmt"
	"io"

	"github.com/hospitalsanjose/billing/internal/catalog"
)

type Service struct {
	parser  *Parser
	catalog *catalog.Service
}

func NewService(cat *catalog.Service) *Service {
	return &Service{
		parser:  NewParser(),
		catalog: cat,
	}
}

// Import parses a price-list CSV and upserts every row into the catalog,
// keyed by item code. Returns the number of items written.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	params, err := s.parser.Parse(r)
	if err != nil {
		return 0, err
	}

	for i, p := range params {
		if _, err := s.catalog.Upsert(ctx, p); err != nil {
			return i, fmt.Errorf("upserting item %q: %w", p.Code, err)
		}
	}

	return len(params), nil
}
