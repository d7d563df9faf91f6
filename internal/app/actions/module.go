package actions

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the actions package
var Module = fx.Options(
	fx.Provide(NewActions),
)
