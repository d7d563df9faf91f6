package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"logex/internal/app/search"
	"logex/internal/app/ui/components"
	"logex/internal/config"
)

const searchCursor = "▏"

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	width := m.ui.width - components.PanelBorderWidth
	bodyHeight := m.ui.height - components.FilterBarHeight - components.FooterHeight
	bodyHeight = max(bodyHeight, components.MinContentHeight+components.PanelBorderWidth)

	sections := []string{m.renderFilterBar(width)}

	switch focused := m.state.Focused(); {
	case focused.IsFilter():
		dropdownHeight := min(bodyHeight, components.DropdownMaxHeight)
		sections = append(sections,
			m.renderDropdown(focused, width, dropdownHeight),
			m.renderLogs(width, bodyHeight-dropdownHeight),
		)
	case focused == LogContext:
		menuHeight := len(ContextMenu) + components.PanelBorderWidth
		sections = append(sections,
			m.renderLogs(width, bodyHeight-menuHeight),
			m.renderContextMenu(width, menuHeight),
		)
	default:
		sections = append(sections, m.renderLogs(width, bodyHeight))
	}

	sections = append(sections, m.renderStatus(width), m.renderHelp())

	return components.AppContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderFilterBar renders every committed filter value plus the search box
func (m Model) renderFilterBar(width int) string {
	keys := m.ui.keys
	hotkeys := map[Pane]string{}

	for _, hk := range keys.hotkeys() {
		hotkeys[hk.pane] = hk.binding.Help().Key
	}

	parts := make([]string, 0, len(FilterPanes)+1)
	for _, p := range FilterPanes {
		value, ok := m.state.fields[p].SelectedValue()
		if !ok {
			value = "-"
		}

		parts = append(parts, m.renderFilterItem(p, hotkeys[p], value))
	}

	parts = append(parts, m.renderFilterItem(Search, hotkeys[Search], m.renderSearchText()))

	return components.RenderPanel(components.PanelOptions{
		Title:   components.TitleStyle.Render(config.AppName),
		Info:    m.loader.View(),
		Content: strings.Join(parts, "  "),
		Focused: m.state.Focused().IsFilter() || m.state.Focused() == Search,
		Height:  components.FilterBarHeight,
		Width:   width,
	})
}

func (m Model) renderFilterItem(p Pane, hotkey, value string) string {
	label := components.HotkeyStyle.Render(hotkey) + " " + components.LabelStyle.Render(p.Label()+":")

	if m.state.Focused() == p {
		return label + " " + components.MenuSelectedStyle.Render(value)
	}

	return label + " " + components.ValueStyle.Render(value)
}

func (m Model) renderSearchText() string {
	text := m.state.SearchText()

	if m.state.Focused() == Search {
		return text + searchCursor
	}

	if text == "" {
		return "-"
	}

	return text
}

// renderDropdown renders the candidates of the focused filter
func (m Model) renderDropdown(p Pane, width, height int) string {
	field := m.state.fields[p]
	items := field.FilteredItems()
	visible := max(height-components.PanelBorderWidth, 1)
	start := scrollStart(field.Cursor(), visible)
	selected, _ := field.SelectedValue()

	lines := make([]string, 0, visible)

	if len(items) == 0 {
		lines = append(lines, components.EmptyStateStyle.Render("No matches"))
	}

	for i := start; i < len(items) && i < start+visible; i++ {
		indicator := components.IndicatorEmpty
		if items[i] == selected {
			indicator = components.IndicatorSelected
		}

		line := components.Truncate(indicator+items[i], width-components.PanelBorderWidth)
		if i == field.Cursor() {
			line = components.SelectedRowStyle.Render(components.PadRight(line, width-components.PanelBorderWidth))
		}

		lines = append(lines, line)
	}

	info := "type to filter"
	if text := field.FilterText(); text != "" {
		info = "filter: " + text
	}

	return components.RenderPanel(components.PanelOptions{
		Title:   p.Label(),
		Info:    info,
		Content: strings.Join(lines, "\n"),
		Footer:  fmt.Sprintf("%d/%d", len(items), field.Len()),
		Focused: true,
		Height:  height,
		Width:   width,
	})
}

// renderLogs renders the current page, keeping the selected record visible
func (m Model) renderLogs(width, height int) string {
	logs := m.state.Logs()
	visible := max(height-components.PanelBorderWidth, 1)
	rowWidth := width - components.PanelBorderWidth

	var content string

	if len(logs) == 0 {
		tip := components.Tips[m.ui.tipOffset%len(components.Tips)]
		content = components.EmptyStateStyle.Render("No log records") + "\n\n" + tip
	} else {
		start := scrollStart(m.state.LogIndex(), visible)
		lines := make([]string, 0, visible)

		for i := start; i < len(logs) && i < start+visible; i++ {
			lines = append(lines, renderRecord(logs[i], rowWidth, i == m.state.LogIndex()))
		}

		content = strings.Join(lines, "\n")
	}

	return components.RenderPanel(components.PanelOptions{
		Title:   "Logs",
		Info:    fmt.Sprintf("page %d/%d", m.state.Page(), m.state.TotalPages()),
		Content: content,
		Footer:  fmt.Sprintf("%d hits", m.state.TotalHits()),
		Version: "v" + config.Version,
		Focused: m.state.Focused() == Logs,
		Height:  height,
		Width:   width,
	})
}

// renderRecord renders one record as a single row
func renderRecord(r search.Record, width int, selected bool) string {
	ts := components.TruncateAndPad(r.Timestamp, components.TimestampWidth)
	sev := components.TruncateAndPad(strings.ToUpper(r.Severity), components.SeverityWidth)
	rest := width - components.TimestampWidth - components.SeverityWidth - 2

	text := components.FirstLine(r.Message)
	if r.Logger != "" {
		text = "[" + r.Logger + "] " + text
	}

	text = components.Truncate(text, rest)

	if selected {
		return components.SelectedRowStyle.Render(components.PadRight(ts+" "+sev+" "+text, width))
	}

	return components.TimestampStyle.Render(ts) + " " + components.SeverityStyle(r.Severity).Render(sev) + " " + text
}

// renderContextMenu renders the actions for the selected record
func (m Model) renderContextMenu(width, height int) string {
	lines := make([]string, len(ContextMenu))

	for i, item := range ContextMenu {
		if i == m.state.ContextCursor() {
			lines[i] = components.MenuSelectedStyle.Render(components.IndicatorSelected + item)
			continue
		}

		lines[i] = components.MenuItemStyle.Render(item)
	}

	return components.RenderPanel(components.PanelOptions{
		Title:   LogContext.Label(),
		Content: strings.Join(lines, "\n"),
		Focused: true,
		Height:  height,
		Width:   width,
	})
}

// renderStatus renders the last operation message, pulsing after a page lands, and own resource usage
func (m Model) renderStatus(width int) string {
	status := m.state.Status()

	style := components.StatusStyle
	if strings.HasPrefix(status, "Error") || strings.HasPrefix(status, "Clipboard error") {
		style = components.StatusErrorStyle
	}

	left := style.Render(status)
	if m.ui.blink.IsActive() {
		left = m.ui.blink.Render(components.StatusPulseStyle) + " " + left
	}

	right := components.StatusStyle.Render(m.ui.stats.String())
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return components.HelpStyle.Render(m.ui.help.View(m.ui.keys))
}

// scrollStart returns the first visible row keeping cursor on screen
func scrollStart(cursor, visible int) int {
	if cursor < visible {
		return 0
	}

	return cursor - visible + 1
}
