package management

import (
	"go.uber.org/fx"
)

var Module = fx.Module("management",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
