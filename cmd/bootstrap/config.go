package bootstrap

import (
	"rentora/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BusinessConfig {
			return cfg.Business
		},
	),
)
