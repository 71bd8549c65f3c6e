package extension

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/pkg/clock"
	"rentora/internal/pkg/errs"

	"github.com/google/uuid"
)

// Conflict is another booking occupying part of the requested extension
// window.
type Conflict struct {
	BookingID  uuid.UUID
	PickupDate time.Time
	ReturnDate time.Time
}

type BlockedKind string

const (
	BlockedHoliday          BlockedKind = "holiday"
	BlockedClosed           BlockedKind = "closed"
	BlockedMaintenance      BlockedKind = "maintenance"
	BlockedDeliveryBlackout BlockedKind = "delivery_blackout"
)

type BlockedDate struct {
	Date   time.Time
	Kind   BlockedKind
	Reason string
}

// OverlapStore queries other bookings for the vehicle that intersect a date
// window, excluding cancelled bookings and the booking being extended. This
// is the primary availability source: its failure aborts the check.
type OverlapStore interface {
	FindOverlapping(ctx context.Context, vehicleID, excludeBookingID uuid.UUID, windowStart, windowEnd time.Time) ([]Conflict, error)
}

// CalendarStore queries blocked business dates in a range. Secondary source:
// its failure degrades to "no conflict" rather than blocking the flow.
type CalendarStore interface {
	BlockedDates(ctx context.Context, from, to time.Time) ([]BlockedDate, error)
}

type Availability struct {
	Available   bool
	Conflicts   []Conflict
	BlockedDate *BlockedDate
}

// CheckAvailability tests the requested extension window against other
// bookings and the business calendar. Only the window between the current
// return date and the new return date matters; the original booking span is
// not re-checked. For the calendar, only the new return date itself can
// block: a holiday mid-window is irrelevant because the vehicle stays with
// the customer.
//
// The two lookups are independent and run concurrently. The overlap query is
// strict; the calendar lookup fails open.
func (e *Evaluator) CheckAvailability(ctx context.Context, b *booking.Booking, newReturnDate time.Time) (Availability, error) {
	loc := e.clock.Location()
	windowStart := clock.Truncate(b.ReturnDate().In(loc))
	windowEnd := clock.Truncate(newReturnDate.In(loc))

	var (
		wg         sync.WaitGroup
		conflicts  []Conflict
		overlapErr error
		blocked    []BlockedDate
		blockedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		conflicts, overlapErr = e.bookings.FindOverlapping(ctx, b.VehicleID(), b.ID(), windowStart, windowEnd)
	}()
	go func() {
		defer wg.Done()
		blocked, blockedErr = e.calendar.BlockedDates(ctx, windowEnd, windowEnd)
	}()
	wg.Wait()

	if overlapErr != nil {
		return Availability{}, errs.Wrap(overlapErr, "booking overlap check failed")
	}
	if len(conflicts) > 0 {
		return Availability{Available: false, Conflicts: conflicts}, nil
	}

	if blockedErr != nil {
		slog.Warn("calendar lookup failed, treating return date as unblocked",
			"vehicle_id", b.VehicleID(), "return_date", windowEnd, "error", blockedErr)
		return Availability{Available: true}, nil
	}
	// Blocked dates are zone-less calendar days; compare components, never
	// instants, or a UTC-scanned date lands on the previous business day.
	for i := range blocked {
		if sameDate(blocked[i].Date, windowEnd) {
			return Availability{Available: false, BlockedDate: &blocked[i]}, nil
		}
	}

	return Availability{Available: true}, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
