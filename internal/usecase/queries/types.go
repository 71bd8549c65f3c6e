package queries

import (
	"time"

	"rentora/internal/domain/pricing"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VehicleView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int32     `json:"year"`
	DailyRate    float64   `json:"daily_rate"`
	WeeklyRate   float64   `json:"weekly_rate"`
	MonthlyRate  float64   `json:"monthly_rate"`
	SemesterRate float64   `json:"semester_rate"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type QuoteView struct {
	VehicleID   uuid.UUID     `json:"vehicle_id"`
	VehicleName string        `json:"vehicle_name"`
	PickupDate  time.Time     `json:"pickup_date"`
	ReturnDate  time.Time     `json:"return_date"`
	Quote       pricing.Quote `json:"quote"`
}

type BookingView struct {
	ID                  uuid.UUID  `json:"id"`
	VehicleID           uuid.UUID  `json:"vehicle_id"`
	VehicleName         string     `json:"vehicle_name"`
	UserID              uuid.UUID  `json:"user_id"`
	PickupDate          time.Time  `json:"pickup_date"`
	ReturnDate          time.Time  `json:"return_date"`
	RentalDays          int32      `json:"rental_days"`
	RentalType          string     `json:"rental_type"`
	PickupType          string     `json:"pickup_type"`
	Status              string     `json:"status"`
	DailyRate           float64    `json:"daily_rate"`
	WeeklyRate          float64    `json:"weekly_rate"`
	MonthlyRate         float64    `json:"monthly_rate"`
	SemesterRate        float64    `json:"semester_rate"`
	RentalAmount        float64    `json:"rental_amount"`
	SecurityDeposit     float64    `json:"security_deposit"`
	DeliveryFee         float64    `json:"delivery_fee"`
	AdditionalDriverFee float64    `json:"additional_driver_fee"`
	Subtotal            float64    `json:"subtotal"`
	TotalDueNow         float64    `json:"total_due_now"`
	ExtensionCount      int32      `json:"extension_count"`
	ParentBookingID     *uuid.UUID `json:"parent_booking_id,omitempty"`
	ExtensionNumber     int32      `json:"extension_number"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	PickupDate  time.Time `json:"pickup_date"`
	ReturnDate  time.Time `json:"return_date"`
	RentalType  string    `json:"rental_type"`
	Status      string    `json:"status"`
	TotalDueNow float64   `json:"total_due_now"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	FullName      string    `json:"full_name"`
	LicenseNumber *string   `json:"license_number,omitempty"`
	IsActive      bool      `json:"is_active"`
}
