package billing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeDiscount computes the discount amount for a pre-tax subtotal.
// Percentage values must be in (0, 100]; fixed values must be positive and
// must not exceed the subtotal. Out-of-bounds values fail, they are never
// clamped. Discounts apply to the pre-tax subtotal only; callers recompute
// tax on the discounted subtotal afterwards.
func ComputeDiscount(subtotal, value decimal.Decimal, kind DiscountKind) (decimal.Decimal, error) {
	if !value.IsPositive() {
		return decimal.Zero, validationf("discount", "value must be greater than zero, got %s", value)
	}

	switch kind {
	case DiscountPercentage:
		if value.GreaterThan(hundred) {
			return decimal.Zero, validationf("discount", "percentage must not exceed 100, got %s", value)
		}

		return subtotal.Mul(value).Div(hundred).Round(2), nil

	case DiscountFixed:
		if value.GreaterThan(subtotal) {
			return decimal.Zero, validationf("discount", "fixed amount %s exceeds subtotal %s", value, subtotal)
		}

		return value.Round(2), nil

	default:
		return decimal.Zero, validationf("discount", "unknown kind %q", kind)
	}
}
