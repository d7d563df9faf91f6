package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelOptions describes a bordered panel
type PanelOptions struct {
	Title   string
	Info    string
	Content string
	Footer  string
	Version string
	Focused bool
	Height  int
	Width   int
}

// RenderPanel renders content inside a rounded border with the title on the
// top edge and footer information on the bottom edge
func RenderPanel(opts PanelOptions) string {
	width := max(opts.Width, MinPanelWidth)
	innerWidth := width - PanelBorderWidth
	innerHeight := max(opts.Height-PanelBorderWidth, 1)

	style := BorderStyle
	if opts.Focused {
		style = FocusedBorderStyle
	}

	border := func(s string) string { return style.Render(s) }

	lines := make([]string, 0, innerHeight+PanelBorderWidth)
	lines = append(lines, BuildTopBorder(border, opts.Title, opts.Info, width))
	lines = AppendContentLines(lines, splitAndPadContent(opts.Content, innerHeight), innerWidth, border)
	lines = append(lines, BuildBottomBorder(border, opts.Footer, opts.Version, width))

	return strings.Join(lines, "\n")
}

// BuildTopBorder renders ╭─ title ───── right ─╮
func BuildTopBorder(border func(string) string, title, right string, width int) string {
	left := ""
	if title != "" {
		left = " " + title + " "
	}

	rightPart := ""
	if right != "" {
		rightPart = " " + right + " "
	}

	fill := width - lipgloss.Width(left) - lipgloss.Width(rightPart) - 4
	if fill < 1 {
		fill = 1
	}

	return border(BorderTopLeft+BorderHorizontal) + left +
		border(strings.Repeat(BorderHorizontal, fill)) + rightPart +
		border(BorderHorizontal+BorderTopRight)
}

// BuildBottomBorder renders ╰─ info ───── version ─╯
func BuildBottomBorder(border func(string) string, info, version string, width int) string {
	left := ""
	if info != "" {
		left = " " + info + " "
	}

	right := ""
	if version != "" {
		right = " " + version + " "
	}

	fill := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if fill < 1 {
		fill = 1
	}

	return border(BorderBottomLeft+BorderHorizontal) + left +
		border(strings.Repeat(BorderHorizontal, fill)) + right +
		border(BorderHorizontal+BorderBottomRight)
}

// AppendContentLines wraps each content line in vertical borders padded to innerWidth
func AppendContentLines(lines, contentLines []string, innerWidth int, border func(string) string) []string {
	for _, line := range contentLines {
		padding := innerWidth - lipgloss.Width(line)
		if padding < 0 {
			padding = 0
		}

		lines = append(lines, border(BorderVertical)+line+strings.Repeat(" ", padding)+border(BorderVertical))
	}

	return lines
}

// splitAndPadContent splits content into exactly height lines
func splitAndPadContent(content string, height int) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	return lines
}

// PadRight pads s with spaces up to the display width
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}

// Truncate shortens s to maxWidth display cells, ending with an ellipsis when cut
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return Ellipsis
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + Ellipsis
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return Ellipsis
}

// TruncateAndPad fits s into exactly width display cells
func TruncateAndPad(s string, width int) string {
	if width <= 0 {
		return Ellipsis
	}

	return PadRight(Truncate(s, width), width)
}

// FirstLine returns s up to its first line break
func FirstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}

	return s
}
