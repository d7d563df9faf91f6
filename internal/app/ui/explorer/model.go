package explorer

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"logex/internal/app/actions"
	"logex/internal/app/monitor"
	"logex/internal/app/report"
	"logex/internal/app/search"
	"logex/internal/app/ui/components"
	"logex/internal/config"
	"logex/internal/config/logger"
)

// Model is the Bubble Tea model of the log explorer
type Model struct {
	ctx      context.Context
	cfg      *config.Config
	backend  search.Backend
	actions  actions.Actions
	monitor  monitor.Monitor
	reporter report.Reporter
	loader   *Loader
	state    *State

	ui struct {
		height    int
		width     int
		ready     bool
		keys      KeyMap
		help      help.Model
		blink     *components.Blink
		tipOffset int
		stats     monitor.Stats
	}

	log logger.Logger
}

// NewModel creates the explorer model; facets are loaded by Init
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	backend search.Backend,
	act actions.Actions,
	mon monitor.Monitor,
	reporter report.Reporter,
	log logger.Logger,
) Model {
	log = log.WithComponent("EXPLORER")

	m := Model{
		ctx:      ctx,
		cfg:      cfg,
		backend:  backend,
		actions:  act,
		monitor:  mon,
		reporter: reporter,
		loader:   NewLoader(),
		state:    NewState(cfg.Defaults, log),
		log:      log,
	}

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.blink = components.NewBlink()
	m.ui.tipOffset = rand.Intn(len(components.Tips)) //nolint:gosec // not security-critical

	m.loader.Start(opFacets, "Loading filters…")

	return m
}

// State exposes the focus model, mainly for tests
func (m Model) State() *State {
	return m.state
}

// Init loads the facets and starts the background tickers
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loader.Tick,
		loadFacetsCmd(m.ctx, m.backend, m.cfg.Backend.Timeout),
		tickCmd(),
		statsCmd(m.ctx, m.monitor),
	)
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd samples logex's own resource usage after the stats interval
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(components.StatsInterval, func(time.Time) tea.Msg {
		stats, err := mon.Self(ctx)
		if err != nil {
			return statsMsg{}
		}

		return statsMsg{stats: stats}
	})
}
