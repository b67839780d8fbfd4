package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hospitalsanjose/billing/internal/billing"
)

func TestValidateSplits(t *testing.T) {
	allowed := []string{"cash", "card", "transfer"}
	total := decimal.RequireFromString("250.00")

	split := func(method, amount string) billing.PaymentSplit {
		return billing.PaymentSplit{Method: method, Amount: decimal.RequireFromString(amount)}
	}

	tests := []struct {
		name    string
		splits  []billing.PaymentSplit
		wantErr bool
	}{
		{
			name:   "SingleExact",
			splits: []billing.PaymentSplit{split("cash", "250.00")},
		},
		{
			name: "TwoMethods",
			splits: []billing.PaymentSplit{
				split("cash", "100.00"),
				split("card", "150.00"),
			},
		},
		{
			name: "WithinTolerance",
			splits: []billing.PaymentSplit{
				split("cash", "124.99"),
				split("transfer", "125.00"),
			},
		},
		{
			name: "SumTooLow",
			splits: []billing.PaymentSplit{
				split("cash", "100.00"),
				split("card", "149.00"),
			},
			wantErr: true,
		},
		{
			name: "SumTooHigh",
			splits: []billing.PaymentSplit{
				split("cash", "251.00"),
			},
			wantErr: true,
		},
		{
			name: "UnknownMethod",
			splits: []billing.PaymentSplit{
				split("crypto", "250.00"),
			},
			wantErr: true,
		},
		{
			name: "NonPositiveAmount",
			splits: []billing.PaymentSplit{
				split("cash", "250.00"),
				split("card", "0"),
			},
			wantErr: true,
		},
		{
			name:    "Empty",
			splits:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := billing.ValidateSplits(tt.splits, total, allowed)

			if tt.wantErr {
				var validationErr *billing.ValidationError
				assert.ErrorAs(t, err, &validationErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
