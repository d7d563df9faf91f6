package cli

import (
	"github.com/charmbracelet/lipgloss"

	"logex/internal/app/ui/components"
	"logex/internal/config"
)

var (
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary)
	appVersionStyle = lipgloss.NewStyle().Foreground(components.FgMuted)
	descStyle       = lipgloss.NewStyle().Foreground(components.FgMuted).Italic(true)

	errorPrefix   = lipgloss.NewStyle().Bold(true).Foreground(components.FgError)
	successPrefix = lipgloss.NewStyle().Bold(true).Foreground(components.FgSuccess)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version)

	return lipgloss.JoinVertical(lipgloss.Left, title, descStyle.Render(config.AppDescription))
}
