package request

import (
	"time"

	"rentora/internal/domain/pricing"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	VehicleID          uuid.UUID  `json:"vehicle_id" binding:"required"`
	PickupDate         time.Time  `json:"pickup_date" binding:"required"`
	ReturnDate         time.Time  `json:"return_date" binding:"required"`
	RentalType         string     `json:"rental_type" binding:"required,oneof=weekly monthly semester"`
	PickupType         string     `json:"pickup_type" binding:"required,oneof=store delivery"`
	DeliveryLocationID *uuid.UUID `json:"delivery_location_id,omitempty"`
	AdditionalDrivers  int        `json:"additional_drivers" binding:"gte=0"`
	StudentPricing     bool       `json:"student_pricing"`
}

func (r *QuoteRequest) ToDomain() pricing.RentalRequest {
	return pricing.RentalRequest{
		VehicleID:          r.VehicleID,
		PickupDate:         r.PickupDate,
		ReturnDate:         r.ReturnDate,
		RentalType:         pricing.RentalType(r.RentalType),
		PickupType:         pricing.PickupType(r.PickupType),
		DeliveryLocationID: r.DeliveryLocationID,
		AdditionalDrivers:  r.AdditionalDrivers,
		StudentPricing:     r.StudentPricing,
	}
}
