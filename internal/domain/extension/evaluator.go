package extension

import (
	"errors"
	"fmt"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/pricing"
	"rentora/internal/pkg/clock"
)

var ErrOutOfRange = errors.New("new return date outside the allowed extension window")

// Policy holds the extension business constants. Defaults match the store's
// published terms; config can override per environment.
type Policy struct {
	MaxExtensions            int
	MinDaysRemainingToExtend int
	MinExtensionDays         int
	MaxExtensionDays         int
}

func DefaultPolicy() Policy {
	return Policy{
		MaxExtensions:            5,
		MinDaysRemainingToExtend: 5,
		MinExtensionDays:         7,
		MaxExtensionDays:         90,
	}
}

// Eligibility is a normal decision value: an ineligible booking is not an
// error condition.
type Eligibility struct {
	CanExtend        bool
	Reason           string
	DaysRemaining    int
	MaxExtensionDays int
}

// Pricing is the incremental quote for an extension, computed over the
// parent booking's frozen rates.
type Pricing struct {
	AdditionalDays  int
	Method          pricing.PricingMethod
	Breakdown       pricing.Breakdown
	ExtensionAmount float64
	NewReturnDate   time.Time
	NewTotalDays    int
}

// DateLimits bounds the return-date picker for an extension request.
type DateLimits struct {
	MinDate time.Time
	MaxDate time.Time
}

// Eligibility rules are an ordered table; the first rule that applies wins,
// which keeps the precedence explicit and independently testable.
type eligibilityRule struct {
	applies func(b *booking.Booking, daysRemaining int, p Policy) bool
	reason  func(b *booking.Booking, p Policy) string
}

var eligibilityRules = []eligibilityRule{
	{
		applies: func(b *booking.Booking, _ int, _ Policy) bool {
			return b.RentalType() == pricing.RentalTypeWeekly
		},
		reason: func(*booking.Booking, Policy) string {
			return "weekly rentals cannot be extended"
		},
	},
	{
		applies: func(b *booking.Booking, _ int, _ Policy) bool {
			return b.RentalType() == pricing.RentalTypeSemester
		},
		reason: func(*booking.Booking, Policy) string {
			return "semester rentals have fixed dates"
		},
	},
	{
		applies: func(b *booking.Booking, _ int, _ Policy) bool {
			return b.Status() != booking.StatusConfirmed && b.Status() != booking.StatusActive
		},
		reason: func(b *booking.Booking, _ Policy) string {
			return fmt.Sprintf("a booking with status %q cannot be extended", b.Status())
		},
	},
	{
		applies: func(b *booking.Booking, _ int, p Policy) bool {
			return b.ExtensionCount() >= p.MaxExtensions
		},
		reason: func(_ *booking.Booking, p Policy) string {
			return fmt.Sprintf("the maximum of %d extensions has been reached", p.MaxExtensions)
		},
	},
	{
		applies: func(_ *booking.Booking, daysRemaining int, p Policy) bool {
			return daysRemaining < p.MinDaysRemainingToExtend
		},
		reason: func(_ *booking.Booking, p Policy) string {
			return fmt.Sprintf("extensions must be requested at least %d days before the return date", p.MinDaysRemainingToExtend)
		},
	},
}

// Evaluator decides whether and how a booking may be extended. Eligibility
// and pricing are pure over their inputs plus the business clock; only the
// availability check reaches external collaborators.
type Evaluator struct {
	clock    clock.Clock
	policy   Policy
	bookings OverlapStore
	calendar CalendarStore
}

func NewEvaluator(clk clock.Clock, policy Policy, bookings OverlapStore, calendar CalendarStore) *Evaluator {
	return &Evaluator{
		clock:    clk,
		policy:   policy,
		bookings: bookings,
		calendar: calendar,
	}
}

func (e *Evaluator) Policy() Policy {
	return e.policy
}

// CheckEligibility runs the rule table in order; the first failing rule wins.
func (e *Evaluator) CheckEligibility(b *booking.Booking) Eligibility {
	daysRemaining := pricing.DaysBetween(e.clock.Now(), b.ReturnDate(), e.clock.Location())
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	for _, rule := range eligibilityRules {
		if rule.applies(b, daysRemaining, e.policy) {
			return Eligibility{
				CanExtend:     false,
				Reason:        rule.reason(b, e.policy),
				DaysRemaining: daysRemaining,
			}
		}
	}

	return Eligibility{
		CanExtend:        true,
		DaysRemaining:    daysRemaining,
		MaxExtensionDays: e.policy.MaxExtensionDays,
	}
}

// CalculateExtensionPricing prices the incremental period using the same
// decomposition rules as the original quote, over the booking's FROZEN rates.
// Current vehicle rates are never consulted here.
func (e *Evaluator) CalculateExtensionPricing(b *booking.Booking, newReturnDate time.Time) (Pricing, error) {
	additionalDays := pricing.DaysBetween(b.ReturnDate(), newReturnDate, e.clock.Location())
	if additionalDays < e.policy.MinExtensionDays || additionalDays > e.policy.MaxExtensionDays {
		return Pricing{}, ErrOutOfRange
	}

	method := b.RentalType().Method()
	bd := pricing.Decompose(method, additionalDays)
	amount := pricing.AmountFor(b.Rates(), bd)

	return Pricing{
		AdditionalDays:  additionalDays,
		Method:          method,
		Breakdown:       bd,
		ExtensionAmount: amount,
		NewReturnDate:   newReturnDate,
		NewTotalDays:    b.RentalDays() + additionalDays,
	}, nil
}

// GetExtensionDateLimits returns the selectable return-date window, in the
// business time zone.
func (e *Evaluator) GetExtensionDateLimits(b *booking.Booking) DateLimits {
	current := clock.Truncate(b.ReturnDate().In(e.clock.Location()))
	return DateLimits{
		MinDate: current.AddDate(0, 0, e.policy.MinExtensionDays),
		MaxDate: current.AddDate(0, 0, e.policy.MaxExtensionDays),
	}
}
