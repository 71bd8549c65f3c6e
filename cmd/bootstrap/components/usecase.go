package components

import (
	"rentora/internal/domain/extension"
	"rentora/internal/pkg/clock"
	"rentora/internal/pkg/config"
	"rentora/internal/usecase"
	"rentora/internal/usecase/commands"
	"rentora/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(business config.BusinessConfig) (clock.Clock, error) {
		loc, err := business.LoadLocation()
		if err != nil {
			return nil, err
		}
		return clock.NewRealClock(loc), nil
	},
	func(business config.BusinessConfig) extension.Policy {
		return extension.Policy{
			MaxExtensions:            business.MaxExtensions,
			MinDaysRemainingToExtend: business.MinDaysRemainingToExtend,
			MinExtensionDays:         business.MinExtensionDays,
			MaxExtensionDays:         business.MaxExtensionDays,
		}
	},
	extension.NewEvaluator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewVehicleQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewExtensionCommands,
		usecase.NewAuthUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
