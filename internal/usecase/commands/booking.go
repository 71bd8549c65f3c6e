package commands

import (
	"context"
	"log/slog"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/pricing"
	"rentora/internal/infra"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req pricing.RentalRequest, userID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	quoteQueries   queries.QuoteQueries
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	quoteQueries queries.QuoteQueries,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		quoteQueries:   quoteQueries,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

// CreateBooking quotes the request afresh and snapshots the result into a
// pending booking. The quote is never taken from the client; rates are
// frozen from whatever the card holds at this instant.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req pricing.RentalRequest, userID uuid.UUID) (*queries.BookingView, error) {
	view, err := c.quoteQueries.GetQuote(ctx, req)
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(userID, req, view.Quote)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr.Error() != "tx is closed" {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrBookingConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetByIDSystem(ctx, entity.ID())
}
