package restaurant

import "go.uber.org/fx"

// Module exposes the restaurant directory via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
