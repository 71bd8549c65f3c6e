//go:build unit || e2e

package builder

import (
	"time"

	"rentora/internal/domain/pricing"

	"github.com/google/uuid"
)

// RentalRequestBuilder assembles quote inputs. Defaults describe a 23-day
// weekly store-pickup rental.
type RentalRequestBuilder struct {
	VehicleID          uuid.UUID
	PickupDate         time.Time
	ReturnDate         time.Time
	RentalType         string
	PickupType         string
	DeliveryLocationID *uuid.UUID
	AdditionalDrivers  int
	StudentPricing     bool
}

func NewRentalRequestBuilder() *RentalRequestBuilder {
	loc, _ := time.LoadLocation("America/New_York")
	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, loc)

	return &RentalRequestBuilder{
		VehicleID:  uuid.New(),
		PickupDate: pickup,
		ReturnDate: pickup.AddDate(0, 0, 23),
		RentalType: "weekly",
		PickupType: "store",
	}
}

func (r *RentalRequestBuilder) With(mutate func(*RentalRequestBuilder)) *RentalRequestBuilder {
	mutate(r)
	return r
}

func (r *RentalRequestBuilder) BuildDomain() pricing.RentalRequest {
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

// BuildDTO returns the request body as a mutable map for handler tests.
func (r *RentalRequestBuilder) BuildDTO() map[string]any {
	dto := map[string]any{
		"vehicle_id":         r.VehicleID.String(),
		"pickup_date":        r.PickupDate.Format(time.RFC3339),
		"return_date":        r.ReturnDate.Format(time.RFC3339),
		"rental_type":        r.RentalType,
		"pickup_type":        r.PickupType,
		"additional_drivers": r.AdditionalDrivers,
		"student_pricing":    r.StudentPricing,
	}
	if r.DeliveryLocationID != nil {
		dto["delivery_location_id"] = r.DeliveryLocationID.String()
	}
	return dto
}
