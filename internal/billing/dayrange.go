package billing

import (
	"sort"
	"time"
)

// day truncates a timestamp to its calendar day in UTC. All stay billing is
// day-granular; times of day never matter.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(day(to).Sub(day(from)).Hours() / 24)
}

// StayLengthDays is the number of stay days between admission and discharge,
// counting nights: admitted 2024-01-01 and discharged 2024-01-04 is 3 days.
func StayLengthDays(admission, discharge time.Time) int {
	return daysBetween(admission, discharge)
}

// PendingDays computes which days of a stay remain unbilled. It walks
// forward from the admission date past the billed ranges; the first
// uncovered day starts the pending span, which runs through the reference
// date inclusive. Returns ErrNothingToBill when every day up to the
// reference date is already covered.
func PendingDays(billed []DayRange, admission, reference time.Time) (PendingStay, error) {
	start := day(admission)
	reference = day(reference)

	ranges := make([]DayRange, len(billed))
	copy(ranges, billed)
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].From.Before(ranges[j].From) })

	for _, r := range ranges {
		if day(r.From).After(start) {
			break
		}

		if !day(r.To).Before(start) {
			start = day(r.To).AddDate(0, 0, 1)
		}
	}

	if start.After(reference) {
		return PendingStay{}, ErrNothingToBill
	}

	days := daysBetween(start, reference) + 1
	if days < 1 {
		days = 1
	}

	return PendingStay{Start: start, End: reference, Days: days}, nil
}

// Overlap returns the first billed range that intersects the candidate span,
// bounds inclusive on both sides. It must be re-checked inside the
// transaction that commits a new day-range charge; checking it earlier only
// improves error messages, not correctness.
func Overlap(candidateFrom, candidateTo time.Time, billed []DayRange) *DayRange {
	candidateFrom, candidateTo = day(candidateFrom), day(candidateTo)

	for i := range billed {
		r := &billed[i]
		if candidateTo.Before(day(r.From)) || candidateFrom.After(day(r.To)) {
			continue
		}

		return r
	}

	return nil
}
