package queries

import (
	"context"
	"log/slog"

	"rentora/internal/domain/pricing"
	"rentora/internal/infra"
	"rentora/internal/pkg/clock"
	"rentora/internal/pkg/config"
	"rentora/internal/pkg/errs"

	"github.com/google/uuid"
)

// VehicleRates is the rate-lookup result: the vehicle's current card, still
// live. Freezing happens in the pricing engine via ResolveRates.
type VehicleRates struct {
	VehicleID uuid.UUID
	Name      string
	Card      pricing.RateCard
}

type VehicleRateReader interface {
	FindRates(ctx context.Context, vehicleID uuid.UUID) (*VehicleRates, error)
}

type DeliveryFeeReader interface {
	FindFee(ctx context.Context, locationID uuid.UUID) (float64, error)
}

type QuoteQueries interface {
	GetQuote(ctx context.Context, req pricing.RentalRequest) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	vehicles  VehicleRateReader
	locations DeliveryFeeReader
	clock     clock.Clock
	business  config.BusinessConfig
}

func NewQuoteQueries(vehicles VehicleRateReader, locations DeliveryFeeReader, clk clock.Clock, business config.BusinessConfig) QuoteQueries {
	return &quoteQueriesImpl{
		vehicles:  vehicles,
		locations: locations,
		clock:     clk,
		business:  business,
	}
}

// GetQuote runs the full Rate Resolver -> Duration Calculator -> Price
// Composer pipeline for a rental request. Pure except for the two lookups;
// identical inputs yield identical quotes.
func (q *quoteQueriesImpl) GetQuote(ctx context.Context, req pricing.RentalRequest) (*QuoteView, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	vr, err := q.vehicles.FindRates(ctx, req.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rates, err := pricing.ResolveRates(vr.Card, req.RentalType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMissingRate)
	}

	days, err := pricing.RentalDays(req.PickupDate, req.ReturnDate, q.clock.Location())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	quote := pricing.ComposeQuote(
		req.RentalType,
		rates,
		pricing.Decompose(req.RentalType.Method(), days),
		pricing.Fees{
			DeliveryFee:       q.resolveDeliveryFee(ctx, req),
			AdditionalDrivers: req.AdditionalDrivers,
			PerDriverFee:      q.business.AdditionalDriverFee,
			WeeklyDeposit:     q.business.WeeklyDeposit,
		},
	)

	return &QuoteView{
		VehicleID:   vr.VehicleID,
		VehicleName: vr.Name,
		PickupDate:  req.PickupDate,
		ReturnDate:  req.ReturnDate,
		Quote:       quote,
	}, nil
}

// resolveDeliveryFee fails open to zero: a delivery-fee lookup outage must
// never block the booking flow.
func (q *quoteQueriesImpl) resolveDeliveryFee(ctx context.Context, req pricing.RentalRequest) float64 {
	if req.PickupType != pricing.PickupDelivery || req.DeliveryLocationID == nil {
		return 0
	}

	fee, err := q.locations.FindFee(ctx, *req.DeliveryLocationID)
	if err != nil {
		slog.Warn("delivery fee lookup failed, defaulting to zero",
			"location_id", *req.DeliveryLocationID, "error", err)
		return 0
	}
	return fee
}
