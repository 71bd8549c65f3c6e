//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"rentora/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadNY(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestDaysBetween(t *testing.T) {
	ny := mustLoadNY(t)

	t.Run("counts calendar days regardless of time of day", func(t *testing.T) {
		from := time.Date(2025, 6, 1, 23, 30, 0, 0, ny)
		to := time.Date(2025, 6, 4, 0, 15, 0, 0, ny)
		assert.Equal(t, 3, pricing.DaysBetween(from, to, ny))
	})

	t.Run("spring forward DST day still counts as one day", func(t *testing.T) {
		// 2025-03-09 is the US spring-forward date; the span is 47 hours
		from := time.Date(2025, 3, 8, 10, 0, 0, 0, ny)
		to := time.Date(2025, 3, 10, 10, 0, 0, 0, ny)
		assert.Equal(t, 2, pricing.DaysBetween(from, to, ny))
	})

	t.Run("fall back DST day still counts as one day", func(t *testing.T) {
		// 2025-11-02 is the US fall-back date; the span is 49 hours
		from := time.Date(2025, 11, 1, 10, 0, 0, 0, ny)
		to := time.Date(2025, 11, 3, 10, 0, 0, 0, ny)
		assert.Equal(t, 2, pricing.DaysBetween(from, to, ny))
	})

	t.Run("instants are converted into the business zone first", func(t *testing.T) {
		// 2025-06-02 01:00 UTC is still 2025-06-01 in New York
		from := time.Date(2025, 6, 1, 12, 0, 0, 0, ny)
		to := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, pricing.DaysBetween(from, to, ny))
	})

	t.Run("negative span yields negative days", func(t *testing.T) {
		from := time.Date(2025, 6, 5, 0, 0, 0, 0, ny)
		to := time.Date(2025, 6, 1, 0, 0, 0, 0, ny)
		assert.Equal(t, -4, pricing.DaysBetween(from, to, ny))
	})
}

func TestRentalDays(t *testing.T) {
	ny := mustLoadNY(t)
	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, ny)

	t.Run("valid range", func(t *testing.T) {
		days, err := pricing.RentalDays(pickup, pickup.AddDate(0, 0, 23), ny)
		require.NoError(t, err)
		assert.Equal(t, 23, days)
	})

	t.Run("same day is rejected", func(t *testing.T) {
		_, err := pricing.RentalDays(pickup, pickup.Add(6*time.Hour), ny)
		assert.ErrorIs(t, err, pricing.ErrInvalidDateRange)
	})

	t.Run("return before pickup is rejected", func(t *testing.T) {
		_, err := pricing.RentalDays(pickup, pickup.AddDate(0, 0, -3), ny)
		assert.ErrorIs(t, err, pricing.ErrInvalidDateRange)
	})
}

func TestDecompose(t *testing.T) {
	t.Run("weekly", func(t *testing.T) {
		cases := []struct {
			name      string
			days      int
			fullWeeks int
			overflow  int
		}{
			{"23 days splits into 3 weeks and 2 days", 23, 3, 2},
			{"exact weeks leave no overflow", 21, 3, 0},
			{"under one week is all overflow", 5, 0, 5},
			{"single day", 1, 0, 1},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := pricing.Decompose(pricing.MethodWeekly, tc.days)
				assert.Equal(t, tc.fullWeeks, b.FullWeeks)
				assert.Equal(t, tc.overflow, b.OverflowDays)
				assert.Equal(t, tc.days, b.RentalDays)
				assert.Zero(t, b.FullMonths)
			})
		}
	})

	t.Run("monthly", func(t *testing.T) {
		cases := []struct {
			name           string
			days           int
			fullMonths     int
			overflowDays   int
			remainingWeeks int
			extraDays      int
		}{
			{"95 days splits into 3 months and 5 extra days", 95, 3, 5, 0, 5},
			{"overflow larger than a week splits into weeks", 100, 3, 10, 1, 3},
			{"exact months leave no overflow", 90, 3, 0, 0, 0},
			{"thirty one days is one month plus a day", 31, 1, 1, 0, 1},
			{"under one month", 20, 0, 20, 2, 6},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := pricing.Decompose(pricing.MethodMonthly, tc.days)
				assert.Equal(t, tc.fullMonths, b.FullMonths)
				assert.Equal(t, tc.overflowDays, b.MonthlyOverflowDays)
				assert.Equal(t, tc.remainingWeeks, b.RemainingWeeks)
				assert.Equal(t, tc.extraDays, b.ExtraDays)
			})
		}
	})

	t.Run("semester never decomposes", func(t *testing.T) {
		b := pricing.Decompose(pricing.MethodSemester, 120)
		assert.Equal(t, 120, b.RentalDays)
		assert.Zero(t, b.FullMonths)
		assert.Zero(t, b.FullWeeks)
		assert.Zero(t, b.OverflowDays)
	})

	t.Run("weeks and days always reassemble the day count", func(t *testing.T) {
		for days := 1; days <= 200; days++ {
			wb := pricing.Decompose(pricing.MethodWeekly, days)
			assert.Equal(t, days, wb.FullWeeks*pricing.DaysPerWeek+wb.OverflowDays)

			mb := pricing.Decompose(pricing.MethodMonthly, days)
			assert.Equal(t, days, mb.FullMonths*pricing.MonthlyTermDays+mb.MonthlyOverflowDays)
			assert.Equal(t, mb.MonthlyOverflowDays, mb.RemainingWeeks*pricing.DaysPerWeek+mb.ExtraDays)
		}
	})
}
