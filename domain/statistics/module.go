package statistics

import (
	"go.uber.org/fx"
)

var Module = fx.Module("statistics",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
