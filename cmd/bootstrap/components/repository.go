package components

import (
	"rentora/internal/domain/extension"
	"rentora/internal/infra/readstore"
	"rentora/internal/infra/repository"
	"rentora/internal/usecase"
	"rentora/internal/usecase/commands"
	"rentora/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(extension.OverlapStore)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleViewRepo)),
			fx.As(new(queries.VehicleRateReader)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(extension.CalendarStore)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.DeliveryFeeReader)),
		),
	),
)
