//go:build unit

package extension_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentora/internal/domain/extension"
	"rentora/internal/pkg/clock"
	"rentora/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOverlapStore struct {
	conflicts []extension.Conflict
	err       error

	gotVehicleID uuid.UUID
	gotExcludeID uuid.UUID
	gotStart     time.Time
	gotEnd       time.Time
}

func (s *stubOverlapStore) FindOverlapping(_ context.Context, vehicleID, excludeBookingID uuid.UUID, windowStart, windowEnd time.Time) ([]extension.Conflict, error) {
	s.gotVehicleID = vehicleID
	s.gotExcludeID = excludeBookingID
	s.gotStart = windowStart
	s.gotEnd = windowEnd
	return s.conflicts, s.err
}

type stubCalendarStore struct {
	blocked []extension.BlockedDate
	err     error

	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubCalendarStore) BlockedDates(_ context.Context, from, to time.Time) ([]extension.BlockedDate, error) {
	s.gotFrom = from
	s.gotTo = to
	return s.blocked, s.err
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2025, 4, 20, 9, 0, 0, 0, loc)

	newEval := func(bookings extension.OverlapStore, calendar extension.CalendarStore) *extension.Evaluator {
		return extension.NewEvaluator(clock.NewMockClock(now), extension.DefaultPolicy(), bookings, calendar)
	}

	t.Run("clear window is available", func(t *testing.T) {
		bookings := &stubOverlapStore{}
		calendar := &stubCalendarStore{}
		b := builder.NewBookingBuilder().BuildDomain()
		newReturn := b.ReturnDate().AddDate(0, 0, 14)

		result, err := newEval(bookings, calendar).CheckAvailability(ctx, b, newReturn)
		require.NoError(t, err)

		assert.True(t, result.Available)
		assert.Empty(t, result.Conflicts)
		assert.Nil(t, result.BlockedDate)
	})

	t.Run("only the incremental window is queried", func(t *testing.T) {
		bookings := &stubOverlapStore{}
		calendar := &stubCalendarStore{}
		b := builder.NewBookingBuilder().BuildDomain()
		newReturn := b.ReturnDate().AddDate(0, 0, 14)

		_, err := newEval(bookings, calendar).CheckAvailability(ctx, b, newReturn)
		require.NoError(t, err)

		assert.Equal(t, b.VehicleID(), bookings.gotVehicleID)
		assert.Equal(t, b.ID(), bookings.gotExcludeID)
		assert.Equal(t, clock.Truncate(b.ReturnDate()), bookings.gotStart)
		assert.Equal(t, clock.Truncate(newReturn), bookings.gotEnd)

		// the calendar is asked about the new return date only
		assert.Equal(t, clock.Truncate(newReturn), calendar.gotFrom)
		assert.Equal(t, clock.Truncate(newReturn), calendar.gotTo)
	})

	t.Run("conflicting booking blocks the extension", func(t *testing.T) {
		conflict := extension.Conflict{
			BookingID:  uuid.New(),
			PickupDate: time.Date(2025, 5, 5, 0, 0, 0, 0, loc),
			ReturnDate: time.Date(2025, 5, 20, 0, 0, 0, 0, loc),
		}
		bookings := &stubOverlapStore{conflicts: []extension.Conflict{conflict}}
		calendar := &stubCalendarStore{}
		b := builder.NewBookingBuilder().BuildDomain()

		result, err := newEval(bookings, calendar).CheckAvailability(ctx, b, b.ReturnDate().AddDate(0, 0, 14))
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Equal(t, []extension.Conflict{conflict}, result.Conflicts)
	})

	t.Run("overlap store failure aborts the check", func(t *testing.T) {
		bookings := &stubOverlapStore{err: errors.New("connection reset")}
		calendar := &stubCalendarStore{}
		b := builder.NewBookingBuilder().BuildDomain()

		_, err := newEval(bookings, calendar).CheckAvailability(ctx, b, b.ReturnDate().AddDate(0, 0, 14))
		assert.Error(t, err)
	})

	t.Run("calendar failure degrades to available", func(t *testing.T) {
		bookings := &stubOverlapStore{}
		calendar := &stubCalendarStore{err: errors.New("connection reset")}
		b := builder.NewBookingBuilder().BuildDomain()

		result, err := newEval(bookings, calendar).CheckAvailability(ctx, b, b.ReturnDate().AddDate(0, 0, 14))
		require.NoError(t, err)

		assert.True(t, result.Available)
	})

	t.Run("holiday on the new return date blocks the extension", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		newReturn := b.ReturnDate().AddDate(0, 0, 14)
		holiday := extension.BlockedDate{
			Date:   clock.Truncate(newReturn),
			Kind:   extension.BlockedHoliday,
			Reason: "Memorial Day",
		}
		bookings := &stubOverlapStore{}
		calendar := &stubCalendarStore{blocked: []extension.BlockedDate{holiday}}

		result, err := newEval(bookings, calendar).CheckAvailability(ctx, b, newReturn)
		require.NoError(t, err)

		assert.False(t, result.Available)
		require.NotNil(t, result.BlockedDate)
		assert.Equal(t, holiday, *result.BlockedDate)
	})

	t.Run("holiday inside the window but not on the return date is ignored", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		newReturn := b.ReturnDate().AddDate(0, 0, 14)
		holiday := extension.BlockedDate{
			Date: clock.Truncate(newReturn.AddDate(0, 0, -2)),
			Kind: extension.BlockedHoliday,
		}
		bookings := &stubOverlapStore{}
		calendar := &stubCalendarStore{blocked: []extension.BlockedDate{holiday}}

		result, err := newEval(bookings, calendar).CheckAvailability(ctx, b, newReturn)
		require.NoError(t, err)

		assert.True(t, result.Available)
		assert.Nil(t, result.BlockedDate)
	})

	t.Run("conflicts win over calendar blocks", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		newReturn := b.ReturnDate().AddDate(0, 0, 14)
		bookings := &stubOverlapStore{conflicts: []extension.Conflict{{BookingID: uuid.New()}}}
		calendar := &stubCalendarStore{blocked: []extension.BlockedDate{{
			Date: clock.Truncate(newReturn),
			Kind: extension.BlockedClosed,
		}}}

		result, err := newEval(bookings, calendar).CheckAvailability(ctx, b, newReturn)
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Len(t, result.Conflicts, 1)
		assert.Nil(t, result.BlockedDate)
	})
}
