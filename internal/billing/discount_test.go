package billing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalsanjose/billing/internal/billing"
)

func TestComputeDiscount(t *testing.T) {
	type args struct {
		subtotal string
		value    string
		kind     billing.DiscountKind
	}

	type testCase struct {
		name    string
		args    args
		want    string
		wantErr bool
	}

	tests := []testCase{
		{
			name: "PercentageOnRoundSubtotal",
			args: args{subtotal: "100.00", value: "10", kind: billing.DiscountPercentage},
			want: "10.00",
		},
		{
			name: "PercentageRounds",
			args: args{subtotal: "217.39", value: "15", kind: billing.DiscountPercentage},
			want: "32.61",
		},
		{
			name: "FullPercentage",
			args: args{subtotal: "80.00", value: "100", kind: billing.DiscountPercentage},
			want: "80.00",
		},
		{
			name:    "PercentageOverHundred",
			args:    args{subtotal: "100.00", value: "100.01", kind: billing.DiscountPercentage},
			wantErr: true,
		},
		{
			name: "Fixed",
			args: args{subtotal: "100.00", value: "25", kind: billing.DiscountFixed},
			want: "25.00",
		},
		{
			name: "FixedEqualToSubtotal",
			args: args{subtotal: "100.00", value: "100.00", kind: billing.DiscountFixed},
			want: "100.00",
		},
		{
			name:    "FixedExceedsSubtotal",
			args:    args{subtotal: "100.00", value: "100.01", kind: billing.DiscountFixed},
			wantErr: true,
		},
		{
			name:    "ZeroValue",
			args:    args{subtotal: "100.00", value: "0", kind: billing.DiscountPercentage},
			wantErr: true,
		},
		{
			name:    "NegativeValue",
			args:    args{subtotal: "100.00", value: "-5", kind: billing.DiscountFixed},
			wantErr: true,
		},
		{
			name:    "UnknownKind",
			args:    args{subtotal: "100.00", value: "10", kind: billing.DiscountKind("coupon")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := billing.ComputeDiscount(
				decimal.RequireFromString(tt.args.subtotal),
				decimal.RequireFromString(tt.args.value),
				tt.args.kind,
			)

			if tt.wantErr {
				require.Error(t, err)

				var validationErr *billing.ValidationError
				assert.True(t, errors.As(err, &validationErr))

				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"want %s, got %s", tt.want, got)
		})
	}
}
