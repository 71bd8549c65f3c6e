package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange   = errors.New("return date must be after pickup date")
	ErrInvalidRentalType  = errors.New("invalid rental type")
	ErrInvalidPickupType  = errors.New("invalid pickup type")
	ErrMissingDeliveryLoc = errors.New("delivery location required for delivery pickup")
	ErrNegativeDrivers    = errors.New("additional driver count cannot be negative")
)

type RentalType string

const (
	RentalTypeWeekly   RentalType = "weekly"
	RentalTypeMonthly  RentalType = "monthly"
	RentalTypeSemester RentalType = "semester"
)

func (t RentalType) String() string {
	return string(t)
}

func (t RentalType) IsValid() bool {
	switch t {
	case RentalTypeWeekly, RentalTypeMonthly, RentalTypeSemester:
		return true
	default:
		return false
	}
}

// PricingMethod is the tier-decomposition strategy applied to a day count.
// It mirrors the rental type; semester bookings bill the flat semester rate
// no matter how many days the date range yields.
type PricingMethod string

const (
	MethodWeekly   PricingMethod = "weekly"
	MethodMonthly  PricingMethod = "monthly"
	MethodSemester PricingMethod = "semester"
)

func (t RentalType) Method() PricingMethod {
	switch t {
	case RentalTypeMonthly:
		return MethodMonthly
	case RentalTypeSemester:
		return MethodSemester
	default:
		return MethodWeekly
	}
}

type PickupType string

const (
	PickupStore    PickupType = "store"
	PickupDelivery PickupType = "delivery"
)

func (p PickupType) IsValid() bool {
	return p == PickupStore || p == PickupDelivery
}

// RentalRequest is the ephemeral input to a quote. It is built per request
// and discarded after the Quote is produced.
type RentalRequest struct {
	VehicleID          uuid.UUID
	PickupDate         time.Time
	ReturnDate         time.Time
	RentalType         RentalType
	PickupType         PickupType
	DeliveryLocationID *uuid.UUID
	AdditionalDrivers  int
	StudentPricing     bool
}

func (r RentalRequest) Validate() error {
	if !r.RentalType.IsValid() {
		return ErrInvalidRentalType
	}
	if !r.PickupType.IsValid() {
		return ErrInvalidPickupType
	}
	if r.PickupType == PickupDelivery && r.DeliveryLocationID == nil {
		return ErrMissingDeliveryLoc
	}
	if r.AdditionalDrivers < 0 {
		return ErrNegativeDrivers
	}
	if !r.ReturnDate.After(r.PickupDate) {
		return ErrInvalidDateRange
	}
	return nil
}
