package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalsanjose/billing/internal/billing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayLengthDays(t *testing.T) {
	tests := []struct {
		name      string
		admission time.Time
		discharge time.Time
		want      int
	}{
		{
			name:      "ThreeNights",
			admission: date(2024, 1, 1),
			discharge: date(2024, 1, 4),
			want:      3,
		},
		{
			name:      "SameDay",
			admission: date(2024, 1, 1),
			discharge: date(2024, 1, 1),
			want:      0,
		},
		{
			name:      "IgnoresTimeOfDay",
			admission: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
			discharge: time.Date(2024, 1, 2, 0, 15, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "AcrossMonthBoundary",
			admission: date(2024, 1, 30),
			discharge: date(2024, 2, 2),
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.StayLengthDays(tt.admission, tt.discharge))
		})
	}
}

func TestPendingDays(t *testing.T) {
	type testCase struct {
		name      string
		billed    []billing.DayRange
		admission time.Time
		reference time.Time
		want      billing.PendingStay
		wantErr   error
	}

	tests := []testCase{
		{
			name:      "NothingBilledYet",
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 3),
			want: billing.PendingStay{
				Start: date(2024, 1, 1),
				End:   date(2024, 1, 3),
				Days:  3,
			},
		},
		{
			name:      "SameDayAdmission",
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 1),
			want: billing.PendingStay{
				Start: date(2024, 1, 1),
				End:   date(2024, 1, 1),
				Days:  1,
			},
		},
		{
			name: "ResumesAfterBilledRange",
			billed: []billing.DayRange{
				{From: date(2024, 1, 1), To: date(2024, 1, 2), Days: 2},
			},
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 5),
			want: billing.PendingStay{
				Start: date(2024, 1, 3),
				End:   date(2024, 1, 5),
				Days:  3,
			},
		},
		{
			name: "WalksContiguousRangesInAnyOrder",
			billed: []billing.DayRange{
				{From: date(2024, 1, 3), To: date(2024, 1, 4), Days: 2},
				{From: date(2024, 1, 1), To: date(2024, 1, 2), Days: 2},
			},
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 6),
			want: billing.PendingStay{
				Start: date(2024, 1, 5),
				End:   date(2024, 1, 6),
				Days:  2,
			},
		},
		{
			name: "RangeBeyondAdmissionDoesNotHideGap",
			billed: []billing.DayRange{
				{From: date(2024, 1, 3), To: date(2024, 1, 4), Days: 2},
			},
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 5),
			want: billing.PendingStay{
				Start: date(2024, 1, 1),
				End:   date(2024, 1, 5),
				Days:  5,
			},
		},
		{
			name: "FullyBilled",
			billed: []billing.DayRange{
				{From: date(2024, 1, 1), To: date(2024, 1, 3), Days: 3},
			},
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 3),
			wantErr:   billing.ErrNothingToBill,
		},
		{
			name: "BilledPastReference",
			billed: []billing.DayRange{
				{From: date(2024, 1, 1), To: date(2024, 1, 10), Days: 10},
			},
			admission: date(2024, 1, 1),
			reference: date(2024, 1, 5),
			wantErr:   billing.ErrNothingToBill,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := billing.PendingDays(tt.billed, tt.admission, tt.reference)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPendingDays_CoversEveryDayOnce(t *testing.T) {
	admission := date(2024, 3, 1)

	var billed []billing.DayRange

	// Bill the stay in uneven batches; the pending span must always pick up
	// exactly where the previous batch stopped.
	totalDays := 0
	for _, batch := range []int{1, 3, 2, 5} {
		reference := admission.AddDate(0, 0, totalDays+batch-1)

		pending, err := billing.PendingDays(billed, admission, reference)
		require.NoError(t, err)

		assert.Equal(t, admission.AddDate(0, 0, totalDays), pending.Start)
		assert.Equal(t, batch, pending.Days)

		billed = append(billed, billing.DayRange{
			From: pending.Start,
			To:   pending.End,
			Days: pending.Days,
		})
		totalDays += batch
	}

	_, err := billing.PendingDays(billed, admission, admission.AddDate(0, 0, totalDays-1))
	assert.ErrorIs(t, err, billing.ErrNothingToBill)
}

func TestOverlap(t *testing.T) {
	billed := []billing.DayRange{
		{From: date(2024, 1, 1), To: date(2024, 1, 3), Days: 3},
		{From: date(2024, 1, 10), To: date(2024, 1, 10), Days: 1},
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want *billing.DayRange
	}{
		{
			name: "DisjointBetweenRanges",
			from: date(2024, 1, 4),
			to:   date(2024, 1, 9),
			want: nil,
		},
		{
			name: "SharesFirstDay",
			from: date(2024, 1, 3),
			to:   date(2024, 1, 5),
			want: &billed[0],
		},
		{
			name: "SharesLastDay",
			from: date(2024, 1, 8),
			to:   date(2024, 1, 10),
			want: &billed[1],
		},
		{
			name: "ContainsBilledRange",
			from: date(2023, 12, 30),
			to:   date(2024, 1, 5),
			want: &billed[0],
		},
		{
			name: "ContainedInBilledRange",
			from: date(2024, 1, 2),
			to:   date(2024, 1, 2),
			want: &billed[0],
		},
		{
			name: "AfterEverything",
			from: date(2024, 1, 11),
			to:   date(2024, 1, 12),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Overlap(tt.from, tt.to, billed))
		})
	}
}
