package components

import (
	"rentora/internal/handler"
	"rentora/internal/handler/api"
	"rentora/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVehicleHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewExtensionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
