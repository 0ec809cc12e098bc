package shareclasses

import (
	"go.uber.org/fx"
)

var Module = fx.Module("shareclasses",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
