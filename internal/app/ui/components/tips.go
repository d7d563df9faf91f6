package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains hints shown in the empty logs pane
var Tips = []string{
	tipDesc("Press ") + tipKey("P") + tipDesc(" to pick an environment"),
	tipDesc("Type to narrow a list, ") + tipKey("enter") + tipDesc(" to apply it"),
	tipDesc("Press ") + tipKey("/") + tipDesc(" to search messages"),
	tipDesc("Press ") + tipKey("M") + tipDesc(" to switch between word and exact search"),
	tipDesc("Press ") + tipKey("E") + tipDesc(" to open the whole page in your editor"),
	tipDesc("Print a page without the UI using ") + tipKey("logex query --env prod"),
}
