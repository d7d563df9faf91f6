package explorer

import (
	"go.uber.org/fx"

	"logex/internal/app/actions"
	"logex/internal/app/monitor"
	"logex/internal/app/report"
)

// Module provides the collaborators the explorer needs besides the backend
var Module = fx.Options(
	actions.Module,
	monitor.Module,
	report.Module,
)
