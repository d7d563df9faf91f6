package report

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the report package
var Module = fx.Options(
	fx.Provide(NewReporter),
)
