package readstore

import (
	"context"
	"time"

	"rentora/internal/domain/extension"
	"rentora/internal/infra"
	"rentora/internal/pkg/pgconv"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const selectBookingViewSQL = `
SELECT b.id, b.vehicle_id, v.name, b.user_id, b.pickup_date, b.return_date, b.rental_days,
	b.rental_type, b.pickup_type, b.status,
	b.daily_rate, b.weekly_rate, b.monthly_rate, b.semester_rate,
	b.rental_amount, b.security_deposit, b.delivery_fee, b.additional_driver_fee,
	b.subtotal, b.total_due_now, b.extension_count, b.parent_booking_id, b.extension_number,
	b.created_at, b.updated_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view            queries.BookingView
		parentBookingID pgtype.UUID
	)

	err := s.db.QueryRow(ctx, selectBookingViewSQL, id).Scan(
		&view.ID, &view.VehicleID, &view.VehicleName, &view.UserID, &view.PickupDate, &view.ReturnDate, &view.RentalDays,
		&view.RentalType, &view.PickupType, &view.Status,
		&view.DailyRate, &view.WeeklyRate, &view.MonthlyRate, &view.SemesterRate,
		&view.RentalAmount, &view.SecurityDeposit, &view.DeliveryFee, &view.AdditionalDriverFee,
		&view.Subtotal, &view.TotalDueNow, &view.ExtensionCount, &parentBookingID, &view.ExtensionNumber,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	view.ParentBookingID = pgconv.UUIDPtrFromPgtype(parentBookingID)
	return &view, nil
}

const selectBookingsByUserSQL = `
SELECT b.id, b.vehicle_id, v.name, b.pickup_date, b.return_date,
	b.rental_type, b.status, b.total_due_now, b.created_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC
LIMIT $2`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, selectBookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleName, &item.PickupDate, &item.ReturnDate,
			&item.RentalType, &item.Status, &item.TotalDueNow, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

// Half-open interval test: an existing booking conflicts when it starts before
// the window ends and ends after the window starts. Back-to-back bookings
// sharing a boundary date do not conflict.
const selectOverlappingSQL = `
SELECT id, pickup_date, return_date
FROM bookings
WHERE vehicle_id = $1
  AND id <> $2
  AND status <> 'cancelled'
  AND pickup_date < $4
  AND return_date > $3
ORDER BY pickup_date`

func (s *BookingReadStore) FindOverlapping(ctx context.Context, vehicleID, excludeBookingID uuid.UUID, windowStart, windowEnd time.Time) ([]extension.Conflict, error) {
	rows, err := s.db.Query(ctx, selectOverlappingSQL, vehicleID, excludeBookingID, windowStart, windowEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	var conflicts []extension.Conflict
	for rows.Next() {
		var c extension.Conflict
		if err := rows.Scan(&c.BookingID, &c.PickupDate, &c.ReturnDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflict row", err)
		}
		conflicts = append(conflicts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conflict rows", err)
	}
	return conflicts, nil
}
