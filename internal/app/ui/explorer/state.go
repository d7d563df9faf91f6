package explorer

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"logex/internal/app/errors"
	"logex/internal/app/query"
	"logex/internal/app/search"
	"logex/internal/app/ui/filter"
	"logex/internal/config"
	"logex/internal/config/logger"
)

// ContextMenu lists the actions offered for the highlighted record
var ContextMenu = []string{"Copy message", "Open in editor"}

// Context menu entries
const (
	ContextCopy = iota
	ContextEdit
)

// State is the focus model: one filter field per dimension, the free text
// search, the current page of records and pagination counters
type State struct {
	fsm    *fsm.FSM
	fields map[Pane]*filter.Field

	searchText    string
	logs          []search.Record
	logIndex      int
	totalHits     int64
	page          int
	pageSize      int
	contextCursor int
	status        string
	fetching      bool
	cancel        context.CancelFunc
}

// NewState creates the initial state with the static filter candidates
func NewState(defaults config.Defaults, log logger.Logger) *State {
	s := &State{
		fields: make(map[Pane]*filter.Field, len(FilterPanes)),
		page:   1,
		status: "Loading filters…",
	}

	for _, p := range FilterPanes {
		s.fields[p] = filter.New()
	}

	s.fields[TimeRange].SetItems(query.TimeRanges)
	s.fields[PageSize].SetItems(query.PageSizes)
	s.fields[SearchMode].SetItems(query.SearchModes)
	s.fields[SearchFields].SetItems(query.FieldSets)

	s.fields[TimeRange].SelectValue(defaults.TimeRange)
	s.fields[PageSize].SelectValue(defaults.PageSize)
	s.fields[SearchMode].SelectValue(defaults.SearchMode)
	s.pageSize = s.committedPageSize()

	s.fsm = newPaneFSM(s, log)

	return s
}

// Focused returns the pane receiving keystrokes
func (s *State) Focused() Pane {
	return Pane(s.fsm.Current())
}

// Field returns the filter field of a pane
func (s *State) Field(p Pane) (*filter.Field, bool) {
	field, ok := s.fields[p]
	return field, ok
}

// ActiveField returns the field of the focused pane; panes without one are a caller error
func (s *State) ActiveField() (*filter.Field, error) {
	focused := s.Focused()

	field, ok := s.fields[focused]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoActiveField, focused)
	}

	return field, nil
}

// Focus moves focus to p
func (s *State) Focus(ctx context.Context, p Pane) error {
	return s.focus(ctx, p)
}

// ApplyFacets fills the backend driven fields and preselects the configured environment
func (s *State) ApplyFacets(facets search.Facets, environment string) {
	s.fields[Environment].SetItems(facets.Environments)
	s.fields[Application].SetItems(append([]string{query.All}, facets.Applications...))
	s.fields[Severity].SetItems(append([]string{query.All}, facets.Severities...))

	s.fields[Environment].SelectValue(environment)

	s.status = fmt.Sprintf("Loaded %d environments, %d applications, %d severities",
		len(facets.Environments), len(facets.Applications), len(facets.Severities))
}

// Filters returns the committed value of every dimension plus the search text
func (s *State) Filters() query.Filters {
	value := func(p Pane) string {
		v, _ := s.fields[p].SelectedValue()
		return v
	}

	return query.Filters{
		Environment:  value(Environment),
		Application:  value(Application),
		Severity:     value(Severity),
		TimeRange:    value(TimeRange),
		PageSize:     value(PageSize),
		SearchText:   s.searchText,
		SearchMode:   value(SearchMode),
		SearchFields: value(SearchFields),
	}
}

// PageSize returns the size the current page was fetched with
func (s *State) PageSize() int {
	return s.pageSize
}

// PageSizeChanged reports whether the committed page size differs from the
// one the current page was fetched with. Page offsets are then meaningless
// and paging restarts from the first page.
func (s *State) PageSizeChanged() bool {
	return s.committedPageSize() != s.pageSize
}

func (s *State) committedPageSize() int {
	v, _ := s.fields[PageSize].SelectedValue()
	return query.PageSize(v)
}

// TotalPages returns the page count for the current result
func (s *State) TotalPages() int {
	return query.TotalPages(s.totalHits, s.PageSize())
}

// HasNextPage reports whether a later page exists
func (s *State) HasNextPage() bool {
	return s.page < s.TotalPages()
}

// HasPrevPage reports whether an earlier page exists
func (s *State) HasPrevPage() bool {
	return s.page > 1
}

// BeginFetch marks a fetch in flight; cancel abandons it
func (s *State) BeginFetch(cancel context.CancelFunc) {
	s.CancelFetch()
	s.fetching = true
	s.cancel = cancel
}

// CancelFetch abandons the in-flight fetch, if any
func (s *State) CancelFetch() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.fetching = false
}

// ApplyResult replaces the page after a successful fetch of page at size.
// A page past the end of a shrunken result is clamped to the last one.
func (s *State) ApplyResult(ctx context.Context, page, size int, result search.Result) error {
	s.logs = result.Records
	s.totalHits = result.TotalHits
	s.logIndex = 0
	s.pageSize = size
	s.page = min(max(page, 1), s.TotalPages())
	s.fetching = false
	s.cancel = nil
	s.status = fmt.Sprintf("Page %d/%d • %d hits", s.page, s.TotalPages(), s.totalHits)

	return s.focus(ctx, Logs)
}

// FetchFailed records a failed fetch, leaving the page untouched
func (s *State) FetchFailed(err error) {
	s.fetching = false
	s.cancel = nil

	switch {
	case errors.Is(err, errors.ErrEnvironmentRequired):
		s.status = "Select an environment first (P)"
	default:
		s.status = fmt.Sprintf("Error: %v", err)
	}
}

// MoveLog moves the record selection by delta, clamped to the page
func (s *State) MoveLog(delta int) {
	s.logIndex = clamp(s.logIndex+delta, len(s.logs))
}

// MoveContext moves the context menu selection by delta, clamped to the menu
func (s *State) MoveContext(delta int) {
	s.contextCursor = clamp(s.contextCursor+delta, len(ContextMenu))
}

// SelectedRecord returns the highlighted record
func (s *State) SelectedRecord() (search.Record, bool) {
	if s.logIndex < 0 || s.logIndex >= len(s.logs) {
		return search.Record{}, false
	}

	return s.logs[s.logIndex], true
}

// TypeSearch appends r to the search text
func (s *State) TypeSearch(r rune) {
	s.searchText += string(r)
}

// BackspaceSearch removes the last rune of the search text
func (s *State) BackspaceSearch() {
	if s.searchText == "" {
		return
	}

	runes := []rune(s.searchText)
	s.searchText = string(runes[:len(runes)-1])
}

// SetStatus replaces the status line
func (s *State) SetStatus(status string) {
	s.status = status
}

// Read accessors for rendering

// SearchText returns the free text search
func (s *State) SearchText() string { return s.searchText }

// Logs returns the records of the current page
func (s *State) Logs() []search.Record { return s.logs }

// LogIndex returns the highlighted record position
func (s *State) LogIndex() int { return s.logIndex }

// TotalHits returns the match count of the whole query
func (s *State) TotalHits() int64 { return s.totalHits }

// Page returns the 1-based current page
func (s *State) Page() int { return s.page }

// ContextCursor returns the highlighted context menu entry
func (s *State) ContextCursor() int { return s.contextCursor }

// Status returns the last operation message
func (s *State) Status() string { return s.status }

// Fetching reports whether a fetch is in flight
func (s *State) Fetching() bool { return s.fetching }

// clamp keeps i within [0, n-1], or 0 when n is 0
func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}
