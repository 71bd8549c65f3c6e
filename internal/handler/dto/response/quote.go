package response

import (
	"time"

	"rentora/internal/domain/pricing"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatesResponse struct {
	Daily    float64 `json:"daily"`
	Weekly   float64 `json:"weekly"`
	Monthly  float64 `json:"monthly"`
	Semester float64 `json:"semester"`
}

type BreakdownResponse struct {
	Method              string `json:"method"`
	RentalDays          int    `json:"rental_days"`
	FullMonths          int    `json:"full_months,omitempty"`
	MonthlyOverflowDays int    `json:"monthly_overflow_days,omitempty"`
	RemainingWeeks      int    `json:"remaining_weeks,omitempty"`
	ExtraDays           int    `json:"extra_days,omitempty"`
	FullWeeks           int    `json:"full_weeks,omitempty"`
	OverflowDays        int    `json:"overflow_days,omitempty"`
}

type QuoteResponse struct {
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	PickupDate  time.Time `json:"pickup_date"`
	ReturnDate  time.Time `json:"return_date"`

	RentalDays int               `json:"rental_days"`
	RentalType string            `json:"rental_type"`
	Rates      RatesResponse     `json:"rates"`
	Breakdown  BreakdownResponse `json:"breakdown"`

	RentalAmount        float64 `json:"rental_amount"`
	SecurityDeposit     float64 `json:"security_deposit"`
	DeliveryFee         float64 `json:"delivery_fee"`
	AdditionalDriverFee float64 `json:"additional_driver_fee"`
	Subtotal            float64 `json:"subtotal"`
	TotalDueNow         float64 `json:"total_due_now"`
}

func fromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Method:              string(b.Method),
		RentalDays:          b.RentalDays,
		FullMonths:          b.FullMonths,
		MonthlyOverflowDays: b.MonthlyOverflowDays,
		RemainingWeeks:      b.RemainingWeeks,
		ExtraDays:           b.ExtraDays,
		FullWeeks:           b.FullWeeks,
		OverflowDays:        b.OverflowDays,
	}
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	q := v.Quote
	return &QuoteResponse{
		VehicleID:   v.VehicleID,
		VehicleName: v.VehicleName,
		PickupDate:  v.PickupDate,
		ReturnDate:  v.ReturnDate,

		RentalDays: q.RentalDays,
		RentalType: q.RentalType.String(),
		Rates: RatesResponse{
			Daily:    q.Rates.Daily,
			Weekly:   q.Rates.Weekly,
			Monthly:  q.Rates.Monthly,
			Semester: q.Rates.Semester,
		},
		Breakdown: fromBreakdown(q.Breakdown),

		RentalAmount:        q.RentalAmount,
		SecurityDeposit:     q.SecurityDeposit,
		DeliveryFee:         q.DeliveryFee,
		AdditionalDriverFee: q.AdditionalDriverFee,
		Subtotal:            q.Subtotal,
		TotalDueNow:         q.TotalDueNow,
	}
}
