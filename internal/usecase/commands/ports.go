package commands

import (
	"context"
	"time"

	"rentora/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side ports. Repositories take an explicit pgx.Tx so command
// implementations own transaction boundaries.
type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ExtendReturn moves the parent booking's return date forward and bumps
	// its extension counter as one statement.
	ExtendReturn(ctx context.Context, tx pgx.Tx, id uuid.UUID, newReturnDate time.Time, newTotalDays int) error
}
