package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrItemNotFound = errors.New("catalog item not found")

// Item is one billable service or product in the price catalog. Unit prices
// are tax-inclusive, matching what patients are quoted.
type Item struct {
	ID        uuid.UUID
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
