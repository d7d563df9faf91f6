package explorer

import (
	"context"

	"github.com/looplab/fsm"

	"logex/internal/app/errors"
	"logex/internal/config/logger"
)

// Pane identifies the region receiving keystrokes
type Pane string

// Panes, also the FSM states
const (
	Logs         Pane = "logs"
	Environment  Pane = "environment"
	Application  Pane = "application"
	Severity     Pane = "severity"
	TimeRange    Pane = "time_range"
	PageSize     Pane = "page_size"
	SearchMode   Pane = "search_mode"
	SearchFields Pane = "search_fields"
	Search       Pane = "search"
	LogContext   Pane = "log_context"
)

// FSM callbacks
const (
	OnEnterState      = "enter_state"
	OnEnterLogContext = "enter_" + string(LogContext)
	OnAfterEvent      = "after_event"
)

// FilterPanes lists the panes owning a filter field, in filter bar order
var FilterPanes = []Pane{Environment, Application, Severity, TimeRange, PageSize, SearchMode, SearchFields}

// queryPanes are the filter panes whose value changes the result set
var queryPanes = map[Pane]bool{
	Environment: true,
	Application: true,
	Severity:    true,
	TimeRange:   true,
	PageSize:    true,
}

// Label returns the filter bar caption of a pane
func (p Pane) Label() string {
	switch p {
	case Environment:
		return "Environment"
	case Application:
		return "Application"
	case Severity:
		return "Severity"
	case TimeRange:
		return "Time"
	case PageSize:
		return "Limit"
	case SearchMode:
		return "Mode"
	case SearchFields:
		return "Fields"
	case Search:
		return "Search"
	case LogContext:
		return "Actions"
	default:
		return "Logs"
	}
}

// IsFilter reports whether the pane owns a filter field
func (p Pane) IsFilter() bool {
	for _, f := range FilterPanes {
		if f == p {
			return true
		}
	}

	return false
}

// AffectsQuery reports whether committing the pane's field requires a new fetch
func (p Pane) AffectsQuery() bool {
	return queryPanes[p]
}

// IsModal reports whether the pane captures every printable key
func (p Pane) IsModal() bool {
	return p == Search || p == LogContext
}

// focusEvent is the FSM event moving focus to p
func focusEvent(p Pane) string {
	return "focus_" + string(p)
}

func states(panes ...Pane) []string {
	result := make([]string, len(panes))
	for i, p := range panes {
		result[i] = string(p)
	}

	return result
}

// newPaneFSM creates the focus state machine. Filter panes and Search can be
// reached from any non-modal pane; LogContext only from Logs; every pane returns to Logs.
func newPaneFSM(s *State, log logger.Logger) *fsm.FSM {
	nonModal := states(append([]Pane{Logs}, FilterPanes...)...)
	all := states(append(append([]Pane{Logs}, FilterPanes...), Search, LogContext)...)

	events := fsm.Events{
		{Name: focusEvent(Logs), Src: all, Dst: string(Logs)},
		{Name: focusEvent(Search), Src: nonModal, Dst: string(Search)},
		{Name: focusEvent(LogContext), Src: []string{string(Logs)}, Dst: string(LogContext)},
	}

	for _, p := range FilterPanes {
		events = append(events, fsm.EventDesc{Name: focusEvent(p), Src: nonModal, Dst: string(p)})
	}

	return fsm.NewFSM(
		string(Logs),
		events,
		fsm.Callbacks{
			OnAfterEvent: func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("FOCUS %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnEnterState: func(ctx context.Context, e *fsm.Event) {
				if field, ok := s.fields[Pane(e.Dst)]; ok {
					field.Open()
				}
			},
			OnEnterLogContext: func(ctx context.Context, e *fsm.Event) {
				s.contextCursor = 0
			},
		},
	)
}

// focus moves focus to p. Re-focusing the current filter pane reopens its field.
func (s *State) focus(ctx context.Context, p Pane) error {
	err := s.fsm.Event(ctx, focusEvent(p))
	if err == nil {
		return nil
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		if field, ok := s.fields[p]; ok {
			field.Open()
		}

		return nil
	}

	return err
}
