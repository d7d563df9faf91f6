package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Common styles shared across views
var (
	AppContainerStyle = lipgloss.NewStyle().Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().Foreground(FgBorder)

	FocusedBorderStyle = lipgloss.NewStyle().Foreground(FgPrimary)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(FgPrimary)

	LabelStyle = lipgloss.NewStyle().Foreground(FgMuted)

	ValueStyle = lipgloss.NewStyle().Bold(true)

	HotkeyStyle = lipgloss.NewStyle().Foreground(FgPrimary).Underline(true)

	HelpStyle = lipgloss.NewStyle().Foreground(FgBorder)

	TimestampStyle = lipgloss.NewStyle().Foreground(FgMuted)

	LoggerStyle = lipgloss.NewStyle().Foreground(FgBorder)

	SelectedRowStyle = lipgloss.NewStyle().Background(BgSelection).Bold(true)

	EmptyStateStyle = lipgloss.NewStyle().Foreground(FgMuted).Italic(true)

	StatusStyle = lipgloss.NewStyle().Foreground(FgMuted)

	StatusErrorStyle = lipgloss.NewStyle().Foreground(FgError)

	StatusPulseStyle = lipgloss.NewStyle().Foreground(FgSuccess)

	SpinnerStyle = lipgloss.NewStyle().Foreground(FgPrimary)

	LoaderSpacerStyle = lipgloss.NewStyle().PaddingLeft(1)

	MenuItemStyle = lipgloss.NewStyle().PaddingLeft(2)

	MenuSelectedStyle = lipgloss.NewStyle().Foreground(FgPrimary).Bold(true)
)

// SeverityStyle returns the style used for a severity label
func SeverityStyle(severity string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)

	if color, ok := SeverityColors[strings.ToUpper(severity)]; ok {
		return style.Foreground(color)
	}

	return style
}
