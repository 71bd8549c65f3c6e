package commands

import (
	"context"
	"log/slog"
	"time"

	"rentora/internal/domain/booking"
	"rentora/internal/domain/extension"
	"rentora/internal/infra"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExtensionOptions is the read-only answer to "can I extend, and to when".
type ExtensionOptions struct {
	Eligibility extension.Eligibility
	DateLimits  extension.DateLimits
}

// ExtensionDecision is the outcome of an extension request. Business
// ineligibility and date conflicts land here as normal negative results;
// only infrastructure faults surface as errors.
type ExtensionDecision struct {
	CanExtend    bool
	Reason       string
	Availability *extension.Availability
	Pricing      *extension.Pricing
	Booking      *queries.BookingView
}

type ExtensionCommands interface {
	GetExtensionOptions(ctx context.Context, actor, bookingID uuid.UUID) (*ExtensionOptions, error)
	RequestExtension(ctx context.Context, actor, bookingID uuid.UUID, newReturnDate time.Time) (*ExtensionDecision, error)
}

type extensionCommandsImpl struct {
	bookingRepo    BookingRepository
	evaluator      *extension.Evaluator
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
}

func NewExtensionCommands(
	bookingRepo BookingRepository,
	evaluator *extension.Evaluator,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
) ExtensionCommands {
	return &extensionCommandsImpl{
		bookingRepo:    bookingRepo,
		evaluator:      evaluator,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

func (c *extensionCommandsImpl) GetExtensionOptions(ctx context.Context, actor, bookingID uuid.UUID) (*ExtensionOptions, error) {
	b, err := c.loadOwnedBooking(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	return &ExtensionOptions{
		Eligibility: c.evaluator.CheckEligibility(b),
		DateLimits:  c.evaluator.GetExtensionDateLimits(b),
	}, nil
}

// RequestExtension runs the full evaluation pipeline and, when everything
// passes, commits the extension: a child booking priced over the parent's
// frozen rates, plus the parent's return date and counter moved forward.
func (c *extensionCommandsImpl) RequestExtension(ctx context.Context, actor, bookingID uuid.UUID, newReturnDate time.Time) (*ExtensionDecision, error) {
	parent, err := c.loadOwnedBooking(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}

	eligibility := c.evaluator.CheckEligibility(parent)
	if !eligibility.CanExtend {
		return &ExtensionDecision{CanExtend: false, Reason: eligibility.Reason}, nil
	}

	pricingResult, err := c.evaluator.CalculateExtensionPricing(parent, newReturnDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrExtensionOutOfRange)
	}

	availability, err := c.evaluator.CheckAvailability(ctx, parent, newReturnDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAvailabilityCheckFault)
	}
	if !availability.Available {
		return &ExtensionDecision{
			CanExtend:    false,
			Reason:       "the requested dates are not available",
			Availability: &availability,
		}, nil
	}

	child, err := booking.NewExtensionBooking(parent, newReturnDate, pricingResult.AdditionalDays, pricingResult.ExtensionAmount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.commitExtension(ctx, parent, child, pricingResult); err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, child.ID())
	if err != nil {
		return nil, err
	}

	return &ExtensionDecision{
		CanExtend:    true,
		Availability: &availability,
		Pricing:      &pricingResult,
		Booking:      view,
	}, nil
}

func (c *extensionCommandsImpl) commitExtension(ctx context.Context, parent, child *booking.Booking, pricingResult extension.Pricing) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr.Error() != "tx is closed" {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.bookingRepo.Create(ctx, tx, child); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.bookingRepo.ExtendReturn(ctx, tx, parent.ID(), pricingResult.NewReturnDate, pricingResult.NewTotalDays); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *extensionCommandsImpl) loadOwnedBooking(ctx context.Context, actor, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.UserID() != actor {
		// Hide other users' bookings rather than acknowledging them.
		return nil, errs.ErrBookingNotFound
	}
	return b, nil
}
