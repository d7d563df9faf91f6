package explorer

import (
	"github.com/charmbracelet/bubbles/key"

	"logex/internal/app/ui/components"
)

// KeyMap defines the key bindings for the explorer
type KeyMap struct {
	components.KeyMap

	// ListUp and ListDown move inside a filter dropdown, where letters are typed
	ListUp   key.Binding
	ListDown key.Binding

	Backspace key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Refresh   key.Binding
	EditPage  key.Binding

	Environment  key.Binding
	Application  key.Binding
	Severity     key.Binding
	TimeRange    key.Binding
	PageSize     key.Binding
	SearchMode   key.Binding
	SearchFields key.Binding
	Search       key.Binding
	Logs         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Confirm.SetHelp("enter", "apply/actions")
	base.Cancel.SetHelp("esc", "back to logs")

	return KeyMap{
		KeyMap: base,
		ListUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		ListDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		EditPage: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit page"),
		),
		Environment:  paneBinding("P", "environment"),
		Application:  paneBinding("A", "application"),
		Severity:     paneBinding("S", "severity"),
		TimeRange:    paneBinding("T", "time"),
		PageSize:     paneBinding("N", "limit"),
		SearchMode:   paneBinding("M", "mode"),
		SearchFields: paneBinding("F", "fields"),
		Search:       paneBinding("/", "search"),
		Logs:         paneBinding("L", "logs"),
	}
}

func paneBinding(k, help string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
}

// hotkeys maps the focus hotkeys to their pane
func (k KeyMap) hotkeys() []struct {
	binding key.Binding
	pane    Pane
} {
	return []struct {
		binding key.Binding
		pane    Pane
	}{
		{k.Environment, Environment},
		{k.Application, Application},
		{k.Severity, Severity},
		{k.TimeRange, TimeRange},
		{k.PageSize, PageSize},
		{k.SearchMode, SearchMode},
		{k.SearchFields, SearchFields},
		{k.Search, Search},
		{k.Logs, Logs},
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Environment, k.Application, k.Severity, k.TimeRange, k.Search, k.PrevPage, k.NextPage, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Environment, k.Application, k.Severity, k.TimeRange, k.PageSize, k.SearchMode, k.SearchFields},
		{k.Search, k.Logs, k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Confirm, k.Cancel, k.Refresh, k.EditPage, k.Quit, k.ForceQuit},
	}
}
