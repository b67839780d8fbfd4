package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalsanjose/billing/internal/money"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculator_ExtractTax(t *testing.T) {
	calc := money.NewCalculator(dec("15"))

	type testCase struct {
		name         string
		total        string
		wantSubtotal string
		wantTax      string
	}

	tests := []testCase{
		{name: "RoundDown", total: "250.00", wantSubtotal: "217.39", wantTax: "32.61"},
		{name: "Exact", total: "115.00", wantSubtotal: "100.00", wantTax: "15.00"},
		{name: "Zero", total: "0.00", wantSubtotal: "0.00", wantTax: "0.00"},
		{name: "SmallAmount", total: "0.01", wantSubtotal: "0.01", wantTax: "0.00"},
		{name: "StayTotal", total: "1500.00", wantSubtotal: "1304.35", wantTax: "195.65"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := calc.ExtractTax(dec(tt.total))

			assert.True(t, bd.Subtotal.Equal(dec(tt.wantSubtotal)),
				"subtotal: got %s, want %s", bd.Subtotal, tt.wantSubtotal)
			assert.True(t, bd.Tax.Equal(dec(tt.wantTax)),
				"tax: got %s, want %s", bd.Tax, tt.wantTax)
			assert.True(t, bd.Subtotal.Add(bd.Tax).Equal(dec(tt.total)),
				"subtotal + tax must equal total exactly")
		})
	}
}

func TestCalculator_AddTax(t *testing.T) {
	calc := money.NewCalculator(dec("15"))

	bd := calc.AddTax(dec("100.00"))

	assert.True(t, bd.Tax.Equal(dec("15.00")), "tax: got %s", bd.Tax)
	assert.True(t, bd.Total.Equal(dec("115.00")), "total: got %s", bd.Total)
}

// Extracting tax from a total always splits it into parts that sum back to
// the total, for every cent value in the sampled range.
func TestCalculator_ExtractTax_PartsSumToTotal(t *testing.T) {
	calc := money.NewCalculator(dec("15"))

	for cents := int64(0); cents <= 100_000; cents += 7 {
		total := decimal.New(cents, -2)
		bd := calc.ExtractTax(total)

		require.True(t, bd.Subtotal.Add(bd.Tax).Equal(total),
			"total %s: subtotal %s + tax %s != total", total, bd.Subtotal, bd.Tax)
	}
}

// Round trip: extractTax(addTax(x).total).subtotal reproduces x within 0.01.
func TestCalculator_RoundTrip(t *testing.T) {
	calc := money.NewCalculator(dec("15"))

	for cents := int64(1); cents <= 100_000; cents += 13 {
		subtotal := decimal.New(cents, -2)
		back := calc.ExtractTax(calc.AddTax(subtotal).Total)

		require.True(t, money.Equal(back.Subtotal, subtotal),
			"subtotal %s came back as %s", subtotal, back.Subtotal)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, money.Equal(dec("10.00"), dec("10.01")))
	assert.True(t, money.Equal(dec("10.00"), dec("9.99")))
	assert.False(t, money.Equal(dec("10.00"), dec("10.02")))
}
