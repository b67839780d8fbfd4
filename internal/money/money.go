package money

import (
	"github.com/shopspring/decimal"
)

// Tolerance is the monetary rounding tolerance: two amounts within 0.01
// of each other are considered equal.
var Tolerance = decimal.New(1, -2)

// Breakdown splits a tax-inclusive amount into its parts.
type Breakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculator derives tax from tax-inclusive amounts at a fixed rate.
// All catalog prices in the system are tax-inclusive, so the subtotal is
// always re-derived from the total, never the other way around.
type Calculator struct {
	rate decimal.Decimal // fraction, e.g. 0.15 for 15%
}

// NewCalculator builds a Calculator from a tax percentage (15 means 15%).
func NewCalculator(ratePercent decimal.Decimal) Calculator {
	return Calculator{rate: ratePercent.Div(decimal.NewFromInt(100))}
}

// AddTax computes tax on top of a pre-tax subtotal.
func (c Calculator) AddTax(subtotal decimal.Decimal) Breakdown {
	tax := subtotal.Mul(c.rate).Round(2)

	return Breakdown{
		Subtotal: subtotal.Round(2),
		Tax:      tax,
		Total:    subtotal.Round(2).Add(tax),
	}
}

// ExtractTax re-derives the pre-tax subtotal and tax component from a
// tax-inclusive total. Subtotal + tax always equals the input total exactly;
// rounding error lands on the tax component.
func (c Calculator) ExtractTax(total decimal.Decimal) Breakdown {
	subtotal := total.Div(decimal.NewFromInt(1).Add(c.rate)).Round(2)

	return Breakdown{
		Subtotal: subtotal,
		Tax:      total.Sub(subtotal),
		Total:    total,
	}
}

// Equal reports whether two amounts are the same within Tolerance.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
