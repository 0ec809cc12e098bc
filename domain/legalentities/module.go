package legalentities

import (
	"go.uber.org/fx"
)

var Module = fx.Module("legalentities",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
