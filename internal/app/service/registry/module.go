package registry

import "go.uber.org/fx"

// Module exposes the module registry via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
