package subfunds

import (
	"go.uber.org/fx"
)

var Module = fx.Module("subfunds",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
