package explorer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"logex/internal/app/actions"
	"logex/internal/app/monitor"
	"logex/internal/app/search"
	"logex/internal/app/ui/components"
)

const tickInterval = components.UITickInterval

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// statsMsg carries a resource usage sample
type statsMsg struct {
	stats monitor.Stats
}

// keyHandler handles a key press for one pane
type keyHandler func(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd)

// paneHandlers is the transition table: one key handler per pane kind
var paneHandlers = map[Pane]keyHandler{
	Logs:       Model.handleLogsKey,
	Search:     Model.handleSearchKey,
	LogContext: Model.handleContextKey,
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.ready = true

		return m, nil

	case spinner.TickMsg:
		return m, m.loader.Update(msg)

	case tickMsg:
		m.ui.blink.Update()

		return m, tickCmd()

	case statsMsg:
		m.ui.stats = msg.stats
		return m, statsCmd(m.ctx, m.monitor)

	case facetsMsg:
		return m.handleFacets(msg)

	case fetchResultMsg:
		return m.handleFetchResult(msg)

	case actions.EditorClosedMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Msg("Editor failed")
		}

		m.state.SetStatus(msg.Status)

		return m, nil
	}

	return m, nil
}

// handleKeyPress routes a key to the focused pane's handler
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		return m.quit()
	}

	if m.state.Fetching() {
		return m, nil
	}

	focused := m.state.Focused()
	if handler, ok := paneHandlers[focused]; ok {
		return handler(m, msg)
	}

	return m.handleFilterKey(msg)
}

// quit abandons any in-flight fetch and exits
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.log.Debug().Msg("Quit requested")
	m.state.CancelFetch()
	m.loader.StopAll()

	return m, tea.Quit
}

// focusHotkey switches to the pane bound to msg; false when msg is not a hotkey
func (m Model) focusHotkey(msg tea.KeyMsg) (Model, bool) {
	for _, hk := range m.ui.keys.hotkeys() {
		if !key.Matches(msg, hk.binding) {
			continue
		}

		m.focus(hk.pane)

		return m, true
	}

	return m, false
}

// focus moves focus, logging a refused transition
func (m Model) focus(p Pane) {
	if err := m.state.Focus(m.ctx, p); err != nil {
		m.log.Warn().Err(err).Msgf("Cannot focus %s from %s", p, m.state.Focused())
	}
}

// handleLogsKey handles the base pane: record navigation, paging and the context menu
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, ok := m.focusHotkey(msg); ok {
		return next, nil
	}

	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()

	case key.Matches(msg, keys.Up):
		m.state.MoveLog(-1)

	case key.Matches(msg, keys.Down):
		m.state.MoveLog(1)

	case key.Matches(msg, keys.PrevPage):
		if m.state.HasPrevPage() {
			return m, m.fetchPage(m.state.Page() - 1)
		}

	case key.Matches(msg, keys.NextPage):
		if m.state.HasNextPage() {
			return m, m.fetchPage(m.state.Page() + 1)
		}

	case key.Matches(msg, keys.Refresh):
		return m, m.fetchPage(m.state.Page())

	case key.Matches(msg, keys.EditPage):
		if len(m.state.Logs()) == 0 {
			m.state.SetStatus("Nothing to edit")
			return m, nil
		}

		return m, m.actions.Edit(search.FormatPage(m.state.Logs()), actions.PageFile)

	case key.Matches(msg, keys.Confirm):
		if len(m.state.Logs()) > 0 {
			m.focus(LogContext)
		}
	}

	return m, nil
}

// handleFilterKey handles a focused filter pane: hotkeys win over typing
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focused := m.state.Focused()

	field, err := m.state.ActiveField()
	if err != nil {
		m.log.Error().Err(err).Msg("Filter key without a field")
		return m, nil
	}

	if next, ok := m.focusHotkey(msg); ok {
		return next, nil
	}

	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.Cancel):
		m.focus(Logs)

	case key.Matches(msg, keys.Confirm):
		field.Confirm()

		if focused.AffectsQuery() {
			return m, m.startFetch(1)
		}

		m.focus(Logs)

	case key.Matches(msg, keys.ListDown):
		field.Next()

	case key.Matches(msg, keys.ListUp):
		field.Previous()

	case key.Matches(msg, keys.Backspace):
		field.Backspace()

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			field.TypeChar(r)
		}
	}

	return m, nil
}

// handleSearchKey handles free text entry; every printable key types
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.Cancel):
		m.focus(Logs)

	case key.Matches(msg, keys.Confirm):
		return m, m.startFetch(1)

	case key.Matches(msg, keys.Backspace):
		m.state.BackspaceSearch()

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			m.state.TypeSearch(r)
		}
	}

	return m, nil
}

// handleContextKey handles the action menu over the highlighted record
func (m Model) handleContextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.Cancel):
		m.focus(Logs)

	case key.Matches(msg, keys.Up):
		m.state.MoveContext(-1)

	case key.Matches(msg, keys.Down):
		m.state.MoveContext(1)

	case key.Matches(msg, keys.Confirm):
		cmd := m.runContextAction()
		m.focus(Logs)

		return m, cmd
	}

	return m, nil
}

// runContextAction performs the highlighted menu entry against the selected record
func (m Model) runContextAction() tea.Cmd {
	record, ok := m.state.SelectedRecord()
	if !ok {
		return nil
	}

	switch m.state.ContextCursor() {
	case ContextCopy:
		if err := m.actions.Copy(record.Text()); err != nil {
			m.state.SetStatus(fmt.Sprintf("Clipboard error: %v", err))
			return nil
		}

		m.state.SetStatus("Copied to clipboard")

		return nil

	case ContextEdit:
		return m.actions.Edit(record.Text(), actions.EntryFile)
	}

	return nil
}
