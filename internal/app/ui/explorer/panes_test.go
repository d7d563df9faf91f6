package explorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logex/internal/config"
	"logex/internal/config/logger"
)

func Test_Pane_Properties(t *testing.T) {
	tests := []struct {
		pane    Pane
		label   string
		filter  bool
		affects bool
		modal   bool
	}{
		{pane: Logs, label: "Logs"},
		{pane: Environment, label: "Environment", filter: true, affects: true},
		{pane: Application, label: "Application", filter: true, affects: true},
		{pane: Severity, label: "Severity", filter: true, affects: true},
		{pane: TimeRange, label: "Time", filter: true, affects: true},
		{pane: PageSize, label: "Limit", filter: true, affects: true},
		{pane: SearchMode, label: "Mode", filter: true},
		{pane: SearchFields, label: "Fields", filter: true},
		{pane: Search, label: "Search", modal: true},
		{pane: LogContext, label: "Actions", modal: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.pane), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.pane.Label())
			assert.Equal(t, tt.filter, tt.pane.IsFilter())
			assert.Equal(t, tt.affects, tt.pane.AffectsQuery())
			assert.Equal(t, tt.modal, tt.pane.IsModal())
		})
	}
}

func Test_PaneFSM_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		path  []Pane
		allow bool
	}{
		{name: "logs to filter", path: []Pane{Environment}, allow: true},
		{name: "filter to filter", path: []Pane{Environment, Severity}, allow: true},
		{name: "filter to search", path: []Pane{TimeRange, Search}, allow: true},
		{name: "logs to search", path: []Pane{Search}, allow: true},
		{name: "search back to logs", path: []Pane{Search, Logs}, allow: true},
		{name: "logs to context", path: []Pane{LogContext}, allow: true},
		{name: "context back to logs", path: []Pane{LogContext, Logs}, allow: true},
		{name: "search to filter is refused", path: []Pane{Search, Environment}},
		{name: "context to filter is refused", path: []Pane{LogContext, Application}},
		{name: "context to search is refused", path: []Pane{LogContext, Search}},
		{name: "filter to context is refused", path: []Pane{Severity, LogContext}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := newTestState(t)

			var err error
			for _, p := range tt.path {
				if err = s.Focus(ctx, p); err != nil {
					break
				}
			}

			last := tt.path[len(tt.path)-1]

			if tt.allow {
				require.NoError(t, err)
				assert.Equal(t, last, s.Focused())
			} else {
				assert.Error(t, err)
				assert.NotEqual(t, last, s.Focused())
			}
		})
	}
}

func Test_PaneFSM_FocusOpensField(t *testing.T) {
	ctx := context.Background()
	s := newTestState(t)
	field, _ := s.Field(Environment)

	require.NoError(t, s.Focus(ctx, Environment))
	field.TypeChar('s')
	field.TypeChar('t')
	assert.Equal(t, []string{"staging"}, field.FilteredItems())

	require.NoError(t, s.Focus(ctx, Logs))
	require.NoError(t, s.Focus(ctx, Environment))

	assert.Empty(t, field.FilterText())
	assert.Equal(t, []string{"dev", "prod", "staging"}, field.FilteredItems())
	assert.Equal(t, 1, field.Cursor(), "cursor starts on the committed value")
}

func Test_PaneFSM_RefocusSamePane(t *testing.T) {
	ctx := context.Background()
	s := newTestState(t)
	field, _ := s.Field(Severity)

	require.NoError(t, s.Focus(ctx, Severity))
	field.TypeChar('x')

	require.NoError(t, s.Focus(ctx, Severity))
	assert.Empty(t, field.FilterText())

	require.NoError(t, s.Focus(ctx, Logs))
	assert.NoError(t, s.Focus(ctx, Logs))
}

func Test_PaneFSM_EnterContextResetsCursor(t *testing.T) {
	ctx := context.Background()
	s := newTestState(t)
	s.logs = records(1)

	require.NoError(t, s.Focus(ctx, LogContext))
	s.MoveContext(1)
	require.NoError(t, s.Focus(ctx, Logs))
	require.NoError(t, s.Focus(ctx, LogContext))

	assert.Equal(t, ContextCopy, s.ContextCursor())
}

func Test_PaneFSM_LogsTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug().Return(nil).Times(2)

	s := NewState(config.DefaultConfig().Defaults, mockLogger)
	ctx := context.Background()

	require.NoError(t, s.Focus(ctx, PageSize))
	require.NoError(t, s.Focus(ctx, Logs))
}
