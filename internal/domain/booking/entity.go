package booking

import (
	"errors"
	"time"

	"rentora/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidRentalDays = errors.New("rental days must be at least 1")
	ErrNotAnExtension    = errors.New("booking is not an extension")
)

// Booking is the persisted rental record. Rates are frozen at creation via
// pricing.RateSnapshot so that later rate-card changes never retroactively
// alter an existing booking's economics.
type Booking struct {
	id                 uuid.UUID
	vehicleID          uuid.UUID
	userID             uuid.UUID
	pickupDate         time.Time
	returnDate         time.Time
	rentalDays         int
	rentalType         pricing.RentalType
	pickupType         pricing.PickupType
	deliveryLocationID *uuid.UUID
	status             Status
	rates              pricing.RateSnapshot

	rentalAmount        float64
	securityDeposit     float64
	deliveryFee         float64
	additionalDriverFee float64
	subtotal            float64
	totalDueNow         float64

	extensionCount  int
	parentBookingID *uuid.UUID
	extensionNumber int

	createdAt time.Time
	updatedAt time.Time
}

// NewBooking snapshots a quote into a fresh pending booking.
func NewBooking(userID uuid.UUID, req pricing.RentalRequest, quote pricing.Quote) (*Booking, error) {
	if quote.RentalDays < 1 {
		return nil, ErrInvalidRentalDays
	}

	return &Booking{
		id:                  uuid.New(),
		vehicleID:           req.VehicleID,
		userID:              userID,
		pickupDate:          req.PickupDate,
		returnDate:          req.ReturnDate,
		rentalDays:          quote.RentalDays,
		rentalType:          quote.RentalType,
		pickupType:          req.PickupType,
		deliveryLocationID:  req.DeliveryLocationID,
		status:              StatusPending,
		rates:               quote.Rates,
		rentalAmount:        quote.RentalAmount,
		securityDeposit:     quote.SecurityDeposit,
		deliveryFee:         quote.DeliveryFee,
		additionalDriverFee: quote.AdditionalDriverFee,
		subtotal:            quote.Subtotal,
		totalDueNow:         quote.TotalDueNow,
	}, nil
}

// NewExtensionBooking creates the child record for a committed extension. It
// reuses the parent's frozen rates and links back via parentBookingID and a
// one-based extension number.
func NewExtensionBooking(parent *Booking, newReturnDate time.Time, additionalDays int, extensionAmount float64) (*Booking, error) {
	if additionalDays < 1 {
		return nil, ErrInvalidRentalDays
	}

	parentID := parent.id
	return &Booking{
		id:              uuid.New(),
		vehicleID:       parent.vehicleID,
		userID:          parent.userID,
		pickupDate:      parent.returnDate,
		returnDate:      newReturnDate,
		rentalDays:      additionalDays,
		rentalType:      parent.rentalType,
		pickupType:      parent.pickupType,
		status:          StatusPending,
		rates:           parent.rates,
		rentalAmount:    extensionAmount,
		subtotal:        extensionAmount,
		totalDueNow:     extensionAmount,
		parentBookingID: &parentID,
		extensionNumber: parent.extensionCount + 1,
	}, nil
}

func Reconstruct(
	id, vehicleID, userID uuid.UUID,
	pickupDate, returnDate time.Time,
	rentalDays int,
	rentalType pricing.RentalType,
	pickupType pricing.PickupType,
	deliveryLocationID *uuid.UUID,
	status Status,
	rates pricing.RateSnapshot,
	rentalAmount, securityDeposit, deliveryFee, additionalDriverFee, subtotal, totalDueNow float64,
	extensionCount int,
	parentBookingID *uuid.UUID,
	extensionNumber int,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                  id,
		vehicleID:           vehicleID,
		userID:              userID,
		pickupDate:          pickupDate,
		returnDate:          returnDate,
		rentalDays:          rentalDays,
		rentalType:          rentalType,
		pickupType:          pickupType,
		deliveryLocationID:  deliveryLocationID,
		status:              status,
		rates:               rates,
		rentalAmount:        rentalAmount,
		securityDeposit:     securityDeposit,
		deliveryFee:         deliveryFee,
		additionalDriverFee: additionalDriverFee,
		subtotal:            subtotal,
		totalDueNow:         totalDueNow,
		extensionCount:      extensionCount,
		parentBookingID:     parentBookingID,
		extensionNumber:     extensionNumber,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (b *Booking) IsExtension() bool {
	return b.parentBookingID != nil
}

func (b *Booking) ID() uuid.UUID                     { return b.id }
func (b *Booking) VehicleID() uuid.UUID              { return b.vehicleID }
func (b *Booking) UserID() uuid.UUID                 { return b.userID }
func (b *Booking) PickupDate() time.Time             { return b.pickupDate }
func (b *Booking) ReturnDate() time.Time             { return b.returnDate }
func (b *Booking) RentalDays() int                   { return b.rentalDays }
func (b *Booking) RentalType() pricing.RentalType    { return b.rentalType }
func (b *Booking) PickupType() pricing.PickupType    { return b.pickupType }
func (b *Booking) DeliveryLocationID() *uuid.UUID    { return b.deliveryLocationID }
func (b *Booking) Status() Status                    { return b.status }
func (b *Booking) Rates() pricing.RateSnapshot       { return b.rates }
func (b *Booking) RentalAmount() float64             { return b.rentalAmount }
func (b *Booking) SecurityDeposit() float64          { return b.securityDeposit }
func (b *Booking) DeliveryFee() float64              { return b.deliveryFee }
func (b *Booking) AdditionalDriverFee() float64      { return b.additionalDriverFee }
func (b *Booking) Subtotal() float64                 { return b.subtotal }
func (b *Booking) TotalDueNow() float64              { return b.totalDueNow }
func (b *Booking) ExtensionCount() int               { return b.extensionCount }
func (b *Booking) ParentBookingID() *uuid.UUID       { return b.parentBookingID }
func (b *Booking) ExtensionNumber() int              { return b.extensionNumber }
func (b *Booking) CreatedAt() time.Time              { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time              { return b.updatedAt }
