package repository

import (
	"context"
	"errors"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/pricing"
	"rentora/internal/infra"
	"rentora/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, vehicle_id, user_id, pickup_date, return_date, rental_days,
	rental_type, pickup_type, delivery_location_id, status,
	daily_rate, weekly_rate, monthly_rate, semester_rate,
	rental_amount, security_deposit, delivery_fee, additional_driver_fee,
	subtotal, total_due_now, extension_count, parent_booking_id, extension_number
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
)`

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	rates := b.Rates()
	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.VehicleID(), b.UserID(), b.PickupDate(), b.ReturnDate(), b.RentalDays(),
		b.RentalType().String(), string(b.PickupType()), pgconv.UUIDPtrToPgtype(b.DeliveryLocationID()), b.Status().String(),
		rates.Daily, rates.Weekly, rates.Monthly, rates.Semester,
		b.RentalAmount(), b.SecurityDeposit(), b.DeliveryFee(), b.AdditionalDriverFee(),
		b.Subtotal(), b.TotalDueNow(), b.ExtensionCount(), pgconv.UUIDPtrToPgtype(b.ParentBookingID()), b.ExtensionNumber(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23P01": // exclusion constraint: overlapping booking window
				return infra.WrapRepoErr("booking window conflicts with an existing booking", err, infra.KindConflict)
			case "23505":
				return infra.WrapRepoErr("duplicate booking", err, infra.KindDuplicateKey)
			case "23503":
				return infra.WrapRepoErr("booking references a missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const selectBookingSQL = `
SELECT id, vehicle_id, user_id, pickup_date, return_date, rental_days,
	rental_type, pickup_type, delivery_location_id, status,
	daily_rate, weekly_rate, monthly_rate, semester_rate,
	rental_amount, security_deposit, delivery_fee, additional_driver_fee,
	subtotal, total_due_now, extension_count, parent_booking_id, extension_number,
	created_at, updated_at
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, vehicleID, userID           uuid.UUID
		pickupDate, returnDate                 time.Time
		rentalDays                             int
		rentalType, pickupType, status         string
		deliveryLocationID, parentBookingID    pgtype.UUID
		daily, weekly, monthly, semester       float64
		rentalAmount, securityDeposit          float64
		deliveryFee, additionalDriverFee       float64
		subtotal, totalDueNow                  float64
		extensionCount, extensionNumber        int
		createdAt, updatedAt                   time.Time
	)

	err := r.db.QueryRow(ctx, selectBookingSQL, id).Scan(
		&bookingID, &vehicleID, &userID, &pickupDate, &returnDate, &rentalDays,
		&rentalType, &pickupType, &deliveryLocationID, &status,
		&daily, &weekly, &monthly, &semester,
		&rentalAmount, &securityDeposit, &deliveryFee, &additionalDriverFee,
		&subtotal, &totalDueNow, &extensionCount, &parentBookingID, &extensionNumber,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.Reconstruct(
		bookingID, vehicleID, userID,
		pickupDate, returnDate, rentalDays,
		pricing.RentalType(rentalType), pricing.PickupType(pickupType),
		pgconv.UUIDPtrFromPgtype(deliveryLocationID),
		booking.Status(status),
		pricing.RateSnapshot{Daily: daily, Weekly: weekly, Monthly: monthly, Semester: semester},
		rentalAmount, securityDeposit, deliveryFee, additionalDriverFee, subtotal, totalDueNow,
		extensionCount,
		pgconv.UUIDPtrFromPgtype(parentBookingID),
		extensionNumber,
		createdAt, updatedAt,
	), nil
}

const extendReturnSQL = `
UPDATE bookings
SET return_date = $2,
	rental_days = $3,
	extension_count = extension_count + 1,
	updated_at = now()
WHERE id = $1`

func (r *BookingRepository) ExtendReturn(ctx context.Context, tx pgx.Tx, id uuid.UUID, newReturnDate time.Time, newTotalDays int) error {
	tag, err := tx.Exec(ctx, extendReturnSQL, id, newReturnDate, newTotalDays)
	if err != nil {
		return infra.WrapRepoErr("failed to extend booking return date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
