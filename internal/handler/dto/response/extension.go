package response

import (
	"time"

	"rentora/internal/domain/extension"
	"rentora/internal/usecase/commands"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExtensionOptionsResponse struct {
	CanExtend        bool      `json:"can_extend"`
	Reason           string    `json:"reason,omitempty"`
	DaysRemaining    int       `json:"days_remaining"`
	MaxExtensionDays int       `json:"max_extension_days,omitempty"`
	MinReturnDate    time.Time `json:"min_return_date"`
	MaxReturnDate    time.Time `json:"max_return_date"`
}

func FromExtensionOptions(o *commands.ExtensionOptions) *ExtensionOptionsResponse {
	return &ExtensionOptionsResponse{
		CanExtend:        o.Eligibility.CanExtend,
		Reason:           o.Eligibility.Reason,
		DaysRemaining:    o.Eligibility.DaysRemaining,
		MaxExtensionDays: o.Eligibility.MaxExtensionDays,
		MinReturnDate:    o.DateLimits.MinDate,
		MaxReturnDate:    o.DateLimits.MaxDate,
	}
}

type ConflictResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
}

type BlockedDateResponse struct {
	Date   time.Time `json:"date"`
	Kind   string    `json:"kind"`
	Reason string    `json:"reason,omitempty"`
}

type ExtensionPricingResponse struct {
	AdditionalDays  int               `json:"additional_days"`
	Method          string            `json:"method"`
	Breakdown       BreakdownResponse `json:"breakdown"`
	ExtensionAmount float64           `json:"extension_amount"`
	NewReturnDate   time.Time         `json:"new_return_date"`
	NewTotalDays    int               `json:"new_total_days"`
}

type ExtensionDecisionResponse struct {
	CanExtend   bool                      `json:"can_extend"`
	Reason      string                    `json:"reason,omitempty"`
	Conflicts   []ConflictResponse        `json:"conflicts,omitempty"`
	BlockedDate *BlockedDateResponse      `json:"blocked_date,omitempty"`
	Pricing     *ExtensionPricingResponse `json:"pricing,omitempty"`
	Booking     *queries.BookingView      `json:"booking,omitempty"`
}

func FromExtensionDecision(d *commands.ExtensionDecision) *ExtensionDecisionResponse {
	resp := &ExtensionDecisionResponse{
		CanExtend: d.CanExtend,
		Reason:    d.Reason,
		Booking:   d.Booking,
	}
	if d.Availability != nil {
		resp.Conflicts = fromConflicts(d.Availability.Conflicts)
		resp.BlockedDate = fromBlockedDate(d.Availability.BlockedDate)
	}
	if d.Pricing != nil {
		resp.Pricing = &ExtensionPricingResponse{
			AdditionalDays:  d.Pricing.AdditionalDays,
			Method:          string(d.Pricing.Method),
			Breakdown:       fromBreakdown(d.Pricing.Breakdown),
			ExtensionAmount: d.Pricing.ExtensionAmount,
			NewReturnDate:   d.Pricing.NewReturnDate,
			NewTotalDays:    d.Pricing.NewTotalDays,
		}
	}
	return resp
}

func fromConflicts(conflicts []extension.Conflict) []ConflictResponse {
	if len(conflicts) == 0 {
		return nil
	}
	out := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		out[i] = ConflictResponse{
			BookingID:  c.BookingID,
			PickupDate: c.PickupDate,
			ReturnDate: c.ReturnDate,
		}
	}
	return out
}

func fromBlockedDate(bd *extension.BlockedDate) *BlockedDateResponse {
	if bd == nil {
		return nil
	}
	return &BlockedDateResponse{
		Date:   bd.Date,
		Kind:   string(bd.Kind),
		Reason: bd.Reason,
	}
}
