package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	BgSelection = lipgloss.Color("235") // Dark gray - selected row

	FgSuccess = lipgloss.Color("10") // Green
	FgWarning = lipgloss.Color("11") // Yellow
	FgError   = lipgloss.Color("9")  // Red
)

// SeverityColors maps upper-case severity names to their colors
var SeverityColors = map[string]lipgloss.AdaptiveColor{
	"TRACE": {Light: "#737373", Dark: "#a3a3a3"},
	"DEBUG": {Light: "#0891b2", Dark: "#22d3ee"},
	"INFO":  {Light: "#059669", Dark: "#34d399"},
	"WARN":  {Light: "#d97706", Dark: "#fbbf24"},
	"ERROR": {Light: "#dc2626", Dark: "#f87171"},
	"FATAL": {Light: "#be185d", Dark: "#f472b6"},
}
