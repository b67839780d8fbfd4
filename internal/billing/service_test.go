package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hospitalsanjose/billing/internal/billing"
	"github.com/hospitalsanjose/billing/internal/catalog"
	"github.com/hospitalsanjose/billing/internal/money"
)

var (
	testCalc    = money.NewCalculator(decimal.NewFromInt(15))
	testMethods = []string{"cash", "card", "transfer"}
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Create(t *testing.T) {
	itemID := uuid.New()
	sourceID := uuid.New()
	price := amount("115.00")

	type testCase struct {
		name       string
		params     billing.CreateParams
		setupMocks func(repo *billing.MockRepository, cat *billing.MockCatalog)
		wantTotal  string
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "CatalogLine",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceConsultation, ID: sourceID},
				Lines: []billing.LineParams{
					{CatalogItemID: &itemID, Quantity: 2},
				},
			},
			setupMocks: func(repo *billing.MockRepository, cat *billing.MockCatalog) {
				cat.EXPECT().
					Lookup(gomock.Any(), itemID).
					Return(&catalog.Item{ID: itemID, Name: "General consultation", UnitPrice: price}, nil)
				repo.EXPECT().
					CreateCharge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *billing.Charge) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
			wantTotal: "230.00",
		},
		{
			name: "FreeTextLineWithDiscount",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceSale, ID: sourceID},
				Lines: []billing.LineParams{
					{Description: "Crutches", Quantity: 1, UnitPrice: &price},
				},
				Discount: &billing.DiscountParams{
					Kind:   billing.DiscountPercentage,
					Value:  amount("10"),
					Reason: "staff family",
				},
			},
			setupMocks: func(repo *billing.MockRepository, _ *billing.MockCatalog) {
				repo.EXPECT().
					CreateCharge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *billing.Charge) error {
						c.ID = uuid.New()
						return nil
					})
			},
			// 115.00 gross -> 100.00 pre-tax, minus 10.00, plus 15% tax.
			wantTotal: "103.50",
		},
		{
			name: "UnknownSourceKind",
			params: billing.CreateParams{
				Source: billing.Source{Kind: "membership", ID: sourceID},
				Lines:  []billing.LineParams{{Description: "x", Quantity: 1, UnitPrice: &price}},
			},
			wantErr: true,
		},
		{
			name: "MissingSourceID",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceSale},
				Lines:  []billing.LineParams{{Description: "x", Quantity: 1, UnitPrice: &price}},
			},
			wantErr: true,
		},
		{
			name: "NoLines",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceSale, ID: sourceID},
			},
			wantErr: true,
		},
		{
			name: "ZeroQuantity",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceSale, ID: sourceID},
				Lines:  []billing.LineParams{{Description: "x", Quantity: 0, UnitPrice: &price}},
			},
			wantErr: true,
		},
		{
			name: "FreeTextWithoutPrice",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceSale, ID: sourceID},
				Lines:  []billing.LineParams{{Description: "x", Quantity: 1}},
			},
			wantErr: true,
		},
		{
			name: "DiscountExceedsSubtotal",
			params: billing.CreateParams{
				Source: billing.Source{Kind: billing.SourceSale, ID: sourceID},
				Lines:  []billing.LineParams{{Description: "x", Quantity: 1, UnitPrice: &price}},
				Discount: &billing.DiscountParams{
					Kind:  billing.DiscountFixed,
					Value: amount("100.01"),
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := billing.NewMockRepository(ctrl)
			cat := billing.NewMockCatalog(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(repo, cat)
			}

			svc := billing.NewService(repo, cat, testCalc, testMethods)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, billing.StatusPending, got.Status)
			assert.True(t, amount(tt.wantTotal).Equal(got.Total),
				"want total %s, got %s", tt.wantTotal, got.Total)
		})
	}
}

func TestService_Create_UsesCatalogNameAndPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	cat := billing.NewMockCatalog(ctrl)
	svc := billing.NewService(repo, cat, testCalc, testMethods)

	itemID := uuid.New()
	cat.EXPECT().
		Lookup(gomock.Any(), itemID).
		Return(&catalog.Item{ID: itemID, Name: "Blood panel", UnitPrice: amount("46.00")}, nil)
	repo.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), billing.CreateParams{
		Source: billing.Source{Kind: billing.SourceConsultation, ID: uuid.New()},
		Lines:  []billing.LineParams{{CatalogItemID: &itemID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Blood panel", got.Items[0].Description)
	assert.True(t, amount("138.00").Equal(got.Items[0].Total))
}

func TestService_Void(t *testing.T) {
	chargeID := uuid.New()

	type testCase struct {
		name       string
		setupMocks func(repo *billing.MockRepository)
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMocks: func(repo *billing.MockRepository) {
				repo.EXPECT().
					GetCharge(gomock.Any(), chargeID).
					Return(&billing.Charge{ID: chargeID, Status: billing.StatusPending}, nil)
				repo.EXPECT().HasInvoice(gomock.Any(), chargeID).Return(false, nil)
				repo.EXPECT().VoidCharge(gomock.Any(), chargeID).Return(nil)
			},
		},
		{
			name: "PaidChargeRejected",
			setupMocks: func(repo *billing.MockRepository) {
				repo.EXPECT().
					GetCharge(gomock.Any(), chargeID).
					Return(&billing.Charge{ID: chargeID, Status: billing.StatusPaid}, nil)
			},
			wantErr: true,
		},
		{
			name: "InvoicedChargeRejected",
			setupMocks: func(repo *billing.MockRepository) {
				repo.EXPECT().
					GetCharge(gomock.Any(), chargeID).
					Return(&billing.Charge{ID: chargeID, Status: billing.StatusPending}, nil)
				repo.EXPECT().HasInvoice(gomock.Any(), chargeID).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "NotFound",
			setupMocks: func(repo *billing.MockRepository) {
				repo.EXPECT().
					GetCharge(gomock.Any(), chargeID).
					Return(nil, billing.ErrChargeNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := billing.NewMockRepository(ctrl)
			tt.setupMocks(repo)

			svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)
			err := svc.Void(context.Background(), chargeID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_BillStayDays(t *testing.T) {
	stayID := uuid.New()
	start := date(2024, 1, 1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	tx := billing.NewMockStayTx(ctrl)
	svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)

	repo.EXPECT().BeginStayBilling(gomock.Any(), stayID).Return(tx, nil)
	tx.EXPECT().Ranges(gomock.Any()).Return(nil, nil)
	tx.EXPECT().
		CreateCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *billing.Charge) error {
			c.ID = uuid.New()
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.BillStayDays(context.Background(), stayID, start, 3, amount("500.00"))
	require.NoError(t, err)

	assert.Equal(t, billing.Source{Kind: billing.SourceHospitalization, ID: stayID}, got.Source)
	assert.True(t, amount("1500.00").Equal(got.Total), "got total %s", got.Total)

	require.NotNil(t, got.Stay)
	assert.Equal(t, date(2024, 1, 1), got.Stay.From)
	assert.Equal(t, date(2024, 1, 3), got.Stay.To)
	assert.Equal(t, 3, got.Stay.Days)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.True(t, amount("500.00").Equal(got.Items[0].UnitPrice))
}

func TestService_BillStayDays_Overlap(t *testing.T) {
	stayID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	tx := billing.NewMockStayTx(ctrl)
	svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)

	repo.EXPECT().BeginStayBilling(gomock.Any(), stayID).Return(tx, nil)
	tx.EXPECT().Ranges(gomock.Any()).Return([]billing.DayRange{
		{From: date(2024, 1, 2), To: date(2024, 1, 4), Days: 3},
	}, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.BillStayDays(context.Background(), stayID, date(2024, 1, 1), 3, amount("500.00"))

	var overlapErr *billing.OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, date(2024, 1, 2), overlapErr.ExistingFrom)
}

func TestService_BillStayDays_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := billing.NewService(
		billing.NewMockRepository(ctrl), billing.NewMockCatalog(ctrl), testCalc, testMethods)

	_, err := svc.BillStayDays(context.Background(), uuid.New(), date(2024, 1, 1), 0, amount("500.00"))
	assert.Error(t, err)

	_, err = svc.BillStayDays(context.Background(), uuid.New(), date(2024, 1, 1), 2, amount("-1"))
	assert.Error(t, err)
}

func TestService_PendingStayDays(t *testing.T) {
	stayID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	repo.EXPECT().StayRanges(gomock.Any(), stayID).Return([]billing.DayRange{
		{From: date(2024, 1, 1), To: date(2024, 1, 2), Days: 2},
	}, nil)

	svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)

	pending, err := svc.PendingStayDays(context.Background(), stayID, date(2024, 1, 1), date(2024, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 3), pending.Start)
	assert.Equal(t, 2, pending.Days)
}

func TestService_ApplySplits(t *testing.T) {
	chargeID := uuid.New()
	charge := &billing.Charge{ID: chargeID, Status: billing.StatusPending, Total: amount("250.00")}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		splits := []billing.PaymentSplit{
			{ChargeID: chargeID, Method: "cash", Amount: amount("100.00")},
			{ChargeID: chargeID, Method: "card", Amount: amount("150.00")},
		}

		repo := billing.NewMockRepository(ctrl)
		repo.EXPECT().GetCharge(gomock.Any(), chargeID).Return(charge, nil)
		repo.EXPECT().ReplaceSplits(gomock.Any(), chargeID, splits).Return(nil)

		svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)
		assert.NoError(t, svc.ApplySplits(context.Background(), chargeID, splits))
	})

	t.Run("SumMismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := billing.NewMockRepository(ctrl)
		repo.EXPECT().GetCharge(gomock.Any(), chargeID).Return(charge, nil)

		svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)
		err := svc.ApplySplits(context.Background(), chargeID, []billing.PaymentSplit{
			{ChargeID: chargeID, Method: "cash", Amount: amount("249.00")},
		})

		var validationErr *billing.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := billing.NewMockRepository(ctrl)
		repo.EXPECT().GetCharge(gomock.Any(), chargeID).Return(nil, errors.New("db error"))

		svc := billing.NewService(repo, billing.NewMockCatalog(ctrl), testCalc, testMethods)
		assert.Error(t, svc.ApplySplits(context.Background(), chargeID, nil))
	})
}
