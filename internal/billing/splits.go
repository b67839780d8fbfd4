package billing

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/money"
)

// ValidateSplits checks a set of payment-method splits against the total
// they are supposed to cover. Every method must be in the allowed set, every
// amount must be positive, and the amounts must sum to the expected total
// within the monetary tolerance.
func ValidateSplits(splits []PaymentSplit, expectedTotal decimal.Decimal, allowedMethods []string) error {
	if len(splits) == 0 {
		return validationf("splits", "at least one payment split is required")
	}

	sum := decimal.Zero

	for _, sp := range splits {
		if !slices.Contains(allowedMethods, sp.Method) {
			return validationf("splits", "unknown payment method %q", sp.Method)
		}

		if !sp.Amount.IsPositive() {
			return validationf("splits", "amount for method %q must be positive, got %s", sp.Method, sp.Amount)
		}

		sum = sum.Add(sp.Amount)
	}

	if !money.Equal(sum, expectedTotal) {
		return validationf("splits", "amounts sum to %s, charge total is %s", sum, expectedTotal)
	}

	return nil
}
