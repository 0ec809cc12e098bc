package funds

import (
	"go.uber.org/fx"
)

var Module = fx.Module("funds",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
