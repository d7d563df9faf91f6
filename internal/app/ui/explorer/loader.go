package explorer

import (
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"logex/internal/app/ui/components"
)

// Loader operations
const (
	opFacets = "facets"
	opSearch = "search"
)

// LoaderItem is one in-flight backend call
type LoaderItem struct {
	Operation string
	Message   string
}

// Loader queues in-flight backend calls and drives the title spinner while any is queued
type Loader struct {
	Model  spinner.Model
	Active bool
	queue  []LoaderItem
}

// NewLoader creates an idle loader
func NewLoader() *Loader {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Loader{Model: s}
}

// Start queues op, or replaces the message of an already queued op
func (l *Loader) Start(op, msg string) {
	if i := l.index(op); i >= 0 {
		l.queue[i].Message = msg
		return
	}

	l.queue = append(l.queue, LoaderItem{Operation: op, Message: msg})
	l.Active = true
}

// Stop removes op from the queue
func (l *Loader) Stop(op string) {
	if i := l.index(op); i >= 0 {
		l.queue = slices.Delete(l.queue, i, i+1)
	}

	l.Active = len(l.queue) > 0
}

// StopAll clears the queue
func (l *Loader) StopAll() {
	l.queue = nil
	l.Active = false
}

// Message returns the message of the oldest queued op
func (l *Loader) Message() string {
	if len(l.queue) == 0 {
		return ""
	}

	return l.queue[0].Message
}

// has reports whether op is queued
func (l *Loader) has(op string) bool {
	return l.index(op) >= 0
}

// Tick starts the spinner animation
func (l *Loader) Tick() tea.Msg {
	return l.Model.Tick()
}

// Update advances the spinner; an idle loader lets the tick chain die
func (l *Loader) Update(msg spinner.TickMsg) tea.Cmd {
	if !l.Active {
		return nil
	}

	var cmd tea.Cmd

	l.Model, cmd = l.Model.Update(msg)

	return cmd
}

// View renders the spinner and the current message, or nothing when idle
func (l *Loader) View() string {
	if !l.Active {
		return ""
	}

	return l.Model.View() + components.LoaderSpacerStyle.Render(l.Message())
}

func (l *Loader) index(op string) int {
	return slices.IndexFunc(l.queue, func(item LoaderItem) bool {
		return item.Operation == op
	})
}
