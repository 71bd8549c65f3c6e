//go:build unit || e2e

package builder

import (
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/pricing"

	"github.com/google/uuid"
)

// BookingBuilder reconstructs a persisted-looking booking for tests. Defaults
// describe a monthly rental that is active, two months in, with typical frozen
// rates.
type BookingBuilder struct {
	ID                 uuid.UUID
	VehicleID          uuid.UUID
	UserID             uuid.UUID
	PickupDate         time.Time
	ReturnDate         time.Time
	RentalDays         int
	RentalType         pricing.RentalType
	PickupType         pricing.PickupType
	DeliveryLocationID *uuid.UUID
	Status             booking.Status
	Rates              pricing.RateSnapshot

	RentalAmount        float64
	SecurityDeposit     float64
	DeliveryFee         float64
	AdditionalDriverFee float64
	Subtotal            float64
	TotalDueNow         float64

	ExtensionCount  int
	ParentBookingID *uuid.UUID
	ExtensionNumber int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	loc, _ := time.LoadLocation("America/New_York")
	pickup := time.Date(2025, 3, 1, 10, 0, 0, 0, loc)
	created := pickup.Add(-48 * time.Hour)

	return &BookingBuilder{
		ID:         uuid.New(),
		VehicleID:  uuid.New(),
		UserID:     uuid.New(),
		PickupDate: pickup,
		ReturnDate: pickup.AddDate(0, 0, 60),
		RentalDays: 60,
		RentalType: pricing.RentalTypeMonthly,
		PickupType: pricing.PickupStore,
		Status:     booking.StatusActive,
		Rates: pricing.RateSnapshot{
			Daily:    15,
			Weekly:   100,
			Monthly:  350,
			Semester: 1500,
		},
		RentalAmount:    700,
		SecurityDeposit: 350,
		Subtotal:        700,
		TotalDueNow:     1050,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRentalType(t pricing.RentalType) *BookingBuilder {
	b.RentalType = t
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithExtensionCount(n int) *BookingBuilder {
	b.ExtensionCount = n
	return b
}

func (b *BookingBuilder) WithReturnDate(t time.Time) *BookingBuilder {
	b.ReturnDate = t
	return b
}

func (b *BookingBuilder) WithRates(r pricing.RateSnapshot) *BookingBuilder {
	b.Rates = r
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID, b.VehicleID, b.UserID,
		b.PickupDate, b.ReturnDate, b.RentalDays,
		b.RentalType, b.PickupType, b.DeliveryLocationID,
		b.Status, b.Rates,
		b.RentalAmount, b.SecurityDeposit, b.DeliveryFee, b.AdditionalDriverFee, b.Subtotal, b.TotalDueNow,
		b.ExtensionCount, b.ParentBookingID, b.ExtensionNumber,
		b.CreatedAt, b.UpdatedAt,
	)
}
