//go:build unit

package extension_test

import (
	"testing"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/extension"
	"rentora/internal/domain/pricing"
	"rentora/internal/pkg/clock"
	"rentora/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator(t *testing.T, now time.Time) *extension.Evaluator {
	t.Helper()
	return extension.NewEvaluator(clock.NewMockClock(now), extension.DefaultPolicy(), nil, nil)
}

// default builder booking: monthly, active, pickup 2025-03-01, return 2025-04-30 NY.
func testNow(t *testing.T, day int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2025, 4, day, 9, 0, 0, 0, loc)
}

func TestCheckEligibility(t *testing.T) {
	t.Run("eligible monthly booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		result := e.CheckEligibility(b)

		assert.True(t, result.CanExtend)
		assert.Empty(t, result.Reason)
		assert.Equal(t, 10, result.DaysRemaining)
		assert.Equal(t, 90, result.MaxExtensionDays)
	})

	t.Run("weekly rentals can never be extended", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRentalType(pricing.RentalTypeWeekly).
			WithStatus(booking.StatusActive).
			BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		result := e.CheckEligibility(b)

		assert.False(t, result.CanExtend)
		assert.Contains(t, result.Reason, "cannot be extended")
	})

	t.Run("weekly rule wins even with extensions exhausted", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRentalType(pricing.RentalTypeWeekly).
			WithExtensionCount(5).
			BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		result := e.CheckEligibility(b)

		assert.False(t, result.CanExtend)
		assert.Contains(t, result.Reason, "cannot be extended")
	})

	t.Run("semester rentals have fixed dates", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithRentalType(pricing.RentalTypeSemester).
			BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		result := e.CheckEligibility(b)

		assert.False(t, result.CanExtend)
		assert.Contains(t, result.Reason, "fixed dates")
	})

	t.Run("only confirmed and active bookings qualify", func(t *testing.T) {
		for _, status := range []booking.Status{
			booking.StatusPending,
			booking.StatusInspection,
			booking.StatusCompleted,
			booking.StatusCancelled,
		} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			e := newTestEvaluator(t, testNow(t, 20))

			result := e.CheckEligibility(b)

			assert.False(t, result.CanExtend, "status %s should be ineligible", status)
			assert.Contains(t, result.Reason, string(status))
		}

		for _, status := range []booking.Status{booking.StatusConfirmed, booking.StatusActive} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			e := newTestEvaluator(t, testNow(t, 20))

			assert.True(t, e.CheckEligibility(b).CanExtend, "status %s should be eligible", status)
		}
	})

	t.Run("max extensions rule is checked before days remaining", func(t *testing.T) {
		// daysRemaining is 10 here, which would pass; extensionCount must trip first
		b := builder.NewBookingBuilder().
			WithStatus(booking.StatusActive).
			WithExtensionCount(5).
			BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		result := e.CheckEligibility(b)

		assert.False(t, result.CanExtend)
		assert.Contains(t, result.Reason, "maximum of 5 extensions")
	})

	t.Run("too close to the return date", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		e := newTestEvaluator(t, testNow(t, 27)) // 3 days remaining

		result := e.CheckEligibility(b)

		assert.False(t, result.CanExtend)
		assert.Contains(t, result.Reason, "at least 5 days")
		assert.Equal(t, 3, result.DaysRemaining)
	})

	t.Run("days remaining never reported negative", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		e := newTestEvaluator(t, time.Date(2025, 5, 15, 9, 0, 0, 0, loc))

		result := e.CheckEligibility(b)

		assert.False(t, result.CanExtend)
		assert.Equal(t, 0, result.DaysRemaining)
	})
}

func TestCalculateExtensionPricing(t *testing.T) {
	frozen := pricing.RateSnapshot{Daily: 15, Weekly: 100, Monthly: 350, Semester: 1500}

	t.Run("prices the incremental period with the same decomposition rules", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithRates(frozen).BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		newReturn := b.ReturnDate().AddDate(0, 0, 37) // 1 month + 1 week
		result, err := e.CalculateExtensionPricing(b, newReturn)
		require.NoError(t, err)

		assert.Equal(t, 37, result.AdditionalDays)
		assert.Equal(t, pricing.MethodMonthly, result.Method)
		assert.Equal(t, float64(450), result.ExtensionAmount) // 350 + 100
		assert.Equal(t, 97, result.NewTotalDays)
		assert.Equal(t, newReturn, result.NewReturnDate)
	})

	t.Run("uses frozen rates, never a current rate card", func(t *testing.T) {
		repriced := pricing.RateSnapshot{Daily: 999, Weekly: 9999, Monthly: 99999}

		cheap := builder.NewBookingBuilder().WithRates(frozen).BuildDomain()
		expensive := builder.NewBookingBuilder().WithRates(repriced).BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		newReturn := cheap.ReturnDate().AddDate(0, 0, 30)

		cheapResult, err := e.CalculateExtensionPricing(cheap, newReturn)
		require.NoError(t, err)
		expensiveResult, err := e.CalculateExtensionPricing(expensive, newReturn)
		require.NoError(t, err)

		assert.Equal(t, float64(350), cheapResult.ExtensionAmount)
		assert.Equal(t, float64(99999), expensiveResult.ExtensionAmount)
	})

	t.Run("extension shorter than the minimum is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		_, err := e.CalculateExtensionPricing(b, b.ReturnDate().AddDate(0, 0, 6))
		assert.ErrorIs(t, err, extension.ErrOutOfRange)
	})

	t.Run("extension longer than the maximum is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		_, err := e.CalculateExtensionPricing(b, b.ReturnDate().AddDate(0, 0, 91))
		assert.ErrorIs(t, err, extension.ErrOutOfRange)
	})

	t.Run("boundary lengths are accepted", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		e := newTestEvaluator(t, testNow(t, 20))

		minResult, err := e.CalculateExtensionPricing(b, b.ReturnDate().AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Equal(t, 7, minResult.AdditionalDays)

		maxResult, err := e.CalculateExtensionPricing(b, b.ReturnDate().AddDate(0, 0, 90))
		require.NoError(t, err)
		assert.Equal(t, 90, maxResult.AdditionalDays)
	})
}

func TestGetExtensionDateLimits(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain()
	e := newTestEvaluator(t, testNow(t, 20))

	limits := e.GetExtensionDateLimits(b)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 7, 0, 0, 0, 0, loc), limits.MinDate)
	assert.Equal(t, time.Date(2025, 7, 29, 0, 0, 0, 0, loc), limits.MaxDate)
}
