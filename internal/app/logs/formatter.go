package logs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"logex/internal/app/search"
	"logex/internal/app/ui/components"
	"logex/internal/config"
	"logex/internal/config/logger"
)

const (
	defaultWidth = 80
	minWidth     = 40
	indent       = "    "
)

// Page is one page of results as printed by `logex query`
type Page struct {
	Number     int
	TotalPages int
	TotalHits  int64
	Records    []search.Record
}

// Formatter prints query results and facets without the UI
type Formatter struct {
	out    io.Writer
	format string
	width  int
}

// NewFormatter creates a formatter writing console or json output to out
func NewFormatter(out io.Writer, format string) *Formatter {
	if format != logger.JSONFormat {
		format = logger.ConsoleFormat
	}

	return &Formatter{
		out:    out,
		format: format,
		width:  terminalWidth(out),
	}
}

// terminalWidth returns the width of out when it is a terminal, 0 otherwise
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil || width < minWidth {
		return defaultWidth
	}

	return width
}

// WritePage prints a page of records, one json object per line in json mode
func (f *Formatter) WritePage(page Page) error {
	if f.format == logger.JSONFormat {
		enc := json.NewEncoder(f.out)
		for _, r := range page.Records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}

		return nil
	}

	var b strings.Builder

	for _, r := range page.Records {
		b.WriteString(f.formatRecord(r))
	}

	summary := fmt.Sprintf("page %d/%d • %d hits", page.Number, page.TotalPages, page.TotalHits)
	b.WriteString(components.HelpStyle.Render(summary))
	b.WriteByte('\n')

	_, err := io.WriteString(f.out, b.String())

	return err
}

// formatRecord renders a record with its stack trace indented underneath
func (f *Formatter) formatRecord(r search.Record) string {
	var b strings.Builder

	b.WriteString(components.TimestampStyle.Render(r.Timestamp))
	b.WriteByte(' ')
	b.WriteString(components.SeverityStyle(r.Severity).Render(fmt.Sprintf("%-*s", components.SeverityWidth, strings.ToUpper(r.Severity))))
	b.WriteByte(' ')

	if r.Logger != "" {
		b.WriteString(components.LoggerStyle.Render("[" + r.Logger + "]"))
		b.WriteByte(' ')
	}

	message := r.Message
	if r.TraceID != "" {
		message += " trace=" + r.TraceID
	}

	b.WriteString(message)
	b.WriteByte('\n')

	if r.Stacktrace != "" {
		for _, line := range strings.Split(strings.TrimRight(r.Stacktrace, "\n"), "\n") {
			b.WriteString(indent + f.truncate(line, len(indent)))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (f *Formatter) truncate(s string, used int) string {
	if f.width == 0 {
		return s
	}

	return components.Truncate(s, f.width-used)
}

// WriteFacets prints the filter candidates offered by the backend
func (f *Formatter) WriteFacets(facets search.Facets) error {
	if f.format == logger.JSONFormat {
		return json.NewEncoder(f.out).Encode(map[string][]string{
			"environments": facets.Environments,
			"applications": facets.Applications,
			"severities":   facets.Severities,
		})
	}

	width := f.width
	if width == 0 {
		width = defaultWidth
	}

	border := func(s string) string { return components.BorderStyle.Render(s) }
	innerWidth := width - components.PanelBorderWidth

	section := func(label string, values []string) string {
		if len(values) == 0 {
			values = []string{"-"}
		}

		value := components.Truncate(strings.Join(values, ", "), innerWidth-lipgloss.Width(label)-2)

		return " " + components.LabelStyle.Render(label) + " " + components.ValueStyle.Render(value)
	}

	contentLines := []string{
		section("environments:", facets.Environments),
		section("applications:", facets.Applications),
		section("severities:", facets.Severities),
	}

	lines := []string{components.BuildTopBorder(border, components.TitleStyle.Render("facets"), "", width)}
	lines = components.AppendContentLines(lines, contentLines, innerWidth, border)
	lines = append(lines, components.BuildBottomBorder(border, "", "v"+config.Version, width))

	_, err := io.WriteString(f.out, strings.Join(lines, "\n")+"\n")

	return err
}
