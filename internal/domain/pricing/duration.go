package pricing

import (
	"math"
	"time"

	"rentora/internal/pkg/clock"
)

const (
	DaysPerWeek = 7

	// MonthlyTermDays is a fixed billing month. It is intentionally not
	// calendar-aware: a booking spanning February bills identically to one
	// spanning August. Known approximation, confirmed business rule.
	MonthlyTermDays = 30
)

// DaysBetween counts calendar days from one instant to another in the given
// zone. Both instants are truncated to their local calendar date first, so
// time-of-day never shifts the count. Rounding absorbs DST-shortened or
// -lengthened days.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	f := clock.Truncate(from.In(loc))
	t := clock.Truncate(to.In(loc))
	return int(math.Round(t.Sub(f).Hours() / 24))
}

// RentalDays converts a pickup/return pair into the billable day count.
// A zero or negative span is a validation failure, never coerced to one day.
func RentalDays(pickup, returnDate time.Time, loc *time.Location) (int, error) {
	days := DaysBetween(pickup, returnDate, loc)
	if days <= 0 {
		return 0, ErrInvalidDateRange
	}
	return days, nil
}

// Breakdown is the tier decomposition of a day count. Monthly methods fill
// FullMonths/MonthlyOverflowDays and split the overflow into
// RemainingWeeks/ExtraDays for billing; weekly methods fill
// FullWeeks/OverflowDays. Semester leaves everything zero.
type Breakdown struct {
	Method     PricingMethod
	RentalDays int

	FullMonths          int
	MonthlyOverflowDays int
	RemainingWeeks      int
	ExtraDays           int

	FullWeeks    int
	OverflowDays int
}

func Decompose(method PricingMethod, rentalDays int) Breakdown {
	b := Breakdown{Method: method, RentalDays: rentalDays}

	switch method {
	case MethodMonthly:
		b.FullMonths = rentalDays / MonthlyTermDays
		b.MonthlyOverflowDays = rentalDays % MonthlyTermDays
		if b.MonthlyOverflowDays > 0 {
			b.RemainingWeeks = b.MonthlyOverflowDays / DaysPerWeek
			b.ExtraDays = b.MonthlyOverflowDays % DaysPerWeek
		}
	case MethodWeekly:
		b.FullWeeks = rentalDays / DaysPerWeek
		b.OverflowDays = rentalDays % DaysPerWeek
	case MethodSemester:
		// Flat rate; the day count is informational only.
	}

	return b
}
