package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"logex/internal/app/actions"
	"logex/internal/app/monitor"
	"logex/internal/app/report"
	"logex/internal/app/search"
	"logex/internal/app/ui/explorer"
	"logex/internal/config"
	"logex/internal/config/logger"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context, backend search.Backend) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	explorer.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config   *config.Config
	Actions  actions.Actions
	Monitor  monitor.Monitor
	Reporter report.Reporter
	Logger   logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, backend search.Backend) (*tea.Program, error) {
		model := explorer.NewModel(
			ctx,
			params.Config,
			backend,
			params.Actions,
			params.Monitor,
			params.Reporter,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
