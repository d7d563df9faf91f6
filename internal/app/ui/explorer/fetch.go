package explorer

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"logex/internal/app/errors"
	"logex/internal/app/query"
	"logex/internal/app/search"
	"logex/internal/app/ui/components"
)

// facetsMsg carries the startup facet lookup
type facetsMsg struct {
	facets search.Facets
	err    error
}

// fetchResultMsg carries the outcome of one page fetch
type fetchResultMsg struct {
	page   int
	size   int
	result search.Result
	err    error
}

// loadFacetsCmd lists the filter candidates once at startup
func loadFacetsCmd(ctx context.Context, backend search.Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		facets, err := backend.ListFacets(ctx)

		return facetsMsg{facets: facets, err: err}
	}
}

// startFetch builds the request for page and runs it. A missing environment
// fails locally without contacting the backend.
func (m Model) startFetch(page int) tea.Cmd {
	params, err := query.Build(m.state.Filters(), page)
	if err != nil {
		m.state.FetchFailed(err)
		return nil
	}

	ctx, cancel := context.WithTimeout(m.ctx, m.cfg.Backend.Timeout)
	m.state.BeginFetch(cancel)
	m.loader.Start(opSearch, fmt.Sprintf("Fetching page %d…", page))

	m.log.Debug().Msgf("Fetching page %d (from=%d, size=%d)", page, params.From, params.Size)

	backend := m.backend

	return tea.Batch(m.loader.Tick, func() tea.Msg {
		defer cancel()

		result, err := backend.Search(ctx, params)

		return fetchResultMsg{page: page, size: params.Size, result: result, err: err}
	})
}

// handleFacets fills the filter bar and fetches the first page when an environment is preset
func (m Model) handleFacets(msg facetsMsg) (tea.Model, tea.Cmd) {
	m.loader.Stop(opFacets)

	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("Failed to load facets")
		m.state.SetStatus(fmt.Sprintf("Error loading filters: %v", msg.err))
		m.capture(msg.err, "facets")

		return m, nil
	}

	m.state.ApplyFacets(msg.facets, m.cfg.Defaults.Environment)

	if _, ok := m.state.fields[Environment].SelectedValue(); !ok {
		return m, nil
	}

	return m, m.startFetch(1)
}

// handleFetchResult applies a landed page or records the failure
func (m Model) handleFetchResult(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	m.loader.Stop(opSearch)

	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msgf("Fetch of page %d failed", msg.page)
		m.state.FetchFailed(msg.err)

		if !errors.Is(msg.err, context.Canceled) {
			m.capture(msg.err, "search")
		}

		return m, nil
	}

	if err := m.state.ApplyResult(m.ctx, msg.page, msg.size, msg.result); err != nil {
		m.log.Error().Err(err).Msg("Failed to focus logs")
	}

	m.ui.blink.Trigger(components.DefaultBlinkBeats)

	if page := m.state.Page(); page != msg.page {
		m.log.Debug().Msgf("Page %d is past the end of %d hits, fetching page %d", msg.page, msg.result.TotalHits, page)
		return m, m.startFetch(page)
	}

	return m, nil
}

// fetchPage fetches page of the displayed result, or the first page once the
// committed page size no longer matches it
func (m Model) fetchPage(page int) tea.Cmd {
	if m.state.PageSizeChanged() {
		page = 1
	}

	return m.startFetch(page)
}

// capture reports a backend failure with the current filters as tags
func (m Model) capture(err error, operation string) {
	f := m.state.Filters()

	m.reporter.Capture(err, map[string]string{
		"operation":   operation,
		"environment": f.Environment,
		"application": f.Application,
		"severity":    f.Severity,
		"time_range":  f.TimeRange,
	})
}
