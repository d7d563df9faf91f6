package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logex/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedType  CommandType
		expectedQuery QueryOptions
		expectedOut   string
		expectedPath  string
	}{
		{
			name:          "no args - explorer",
			args:          []string{},
			expectedType:  CommandRun,
			expectedQuery: QueryOptions{Page: 1},
		},
		{
			name:          "run command",
			args:          []string{"run"},
			expectedType:  CommandRun,
			expectedQuery: QueryOptions{Page: 1},
		},
		{
			name:          "run alias with config path",
			args:          []string{"r", "--config", "/tmp/logex.yaml"},
			expectedType:  CommandRun,
			expectedQuery: QueryOptions{Page: 1},
			expectedPath:  "/tmp/logex.yaml",
		},
		{
			name:          "short config flag before subcommand",
			args:          []string{"-c", "/tmp/other.yaml", "facets"},
			expectedType:  CommandFacets,
			expectedQuery: QueryOptions{Page: 1},
			expectedPath:  "/tmp/other.yaml",
		},
		{
			name:         "query with flags",
			args:         []string{"query", "--env", "prod", "-a", "billing", "-s", "ERROR", "-t", "1h", "-p", "3", "-n", "50", "-o", "json"},
			expectedType: CommandQuery,
			expectedQuery: QueryOptions{
				Environment: "prod",
				Application: "billing",
				Severity:    "ERROR",
				Since:       "1h",
				Page:        3,
				Size:        "50",
			},
			expectedOut: "json",
		},
		{
			name:          "query positional search text",
			args:          []string{"q", "timeout waiting", "--exact"},
			expectedType:  CommandQuery,
			expectedQuery: QueryOptions{Search: "timeout waiting", Exact: true, Page: 1},
		},
		{
			name:          "search flag wins over positional",
			args:          []string{"query", "positional", "--search", "flag"},
			expectedType:  CommandQuery,
			expectedQuery: QueryOptions{Search: "flag", Page: 1},
		},
		{
			name:          "query fields",
			args:          []string{"query", "--fields", "logger"},
			expectedType:  CommandQuery,
			expectedQuery: QueryOptions{Fields: "logger", Page: 1},
		},
		{
			name:          "facets alias with output",
			args:          []string{"f", "--output", "json"},
			expectedType:  CommandFacets,
			expectedQuery: QueryOptions{Page: 1},
			expectedOut:   "json",
		},
		{
			name:          "version command",
			args:          []string{"version"},
			expectedType:  CommandVersion,
			expectedQuery: QueryOptions{Page: 1},
		},
		{
			name:          "version flag",
			args:          []string{"-v"},
			expectedType:  CommandVersion,
			expectedQuery: QueryOptions{Page: 1},
		},
		{
			name:          "help flag",
			args:          []string{"--help"},
			expectedType:  CommandHelp,
			expectedQuery: QueryOptions{Page: 1},
		},
		{
			name:          "help command",
			args:          []string{"help"},
			expectedType:  CommandHelp,
			expectedQuery: QueryOptions{Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, opts.Type)
			assert.Equal(t, tt.expectedQuery, opts.Query)
			assert.Equal(t, tt.expectedOut, opts.Output)
			assert.Equal(t, tt.expectedPath, opts.ConfigPath)
		})
	}
}

func Test_Parse_Init(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected InitOptions
	}{
		{
			name:     "defaults",
			args:     []string{"init"},
			expected: InitOptions{Region: config.DefaultRegion},
		},
		{
			name: "all flags",
			args: []string{"i", "--endpoint", "https://search.example.com", "--region", "us-east-1", "--env", "prod", "--no-sign", "-f", "--dry-run"},
			expected: InitOptions{
				Endpoint:    "https://search.example.com",
				Region:      "us-east-1",
				Environment: "prod",
				NoSign:      true,
				Force:       true,
				DryRun:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, CommandInit, opts.Type)
			assert.Equal(t, tt.expected, opts.Init)
		})
	}
}

func Test_Parse_HelpUsage(t *testing.T) {
	opts, err := Parse([]string{"query", "--help"})

	require.NoError(t, err)
	assert.Equal(t, CommandHelp, opts.Type)
	assert.Contains(t, opts.Usage, "--severity")
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "unknown command", args: []string{"bogus"}},
		{name: "too many query args", args: []string{"query", "a", "b"}},
		{name: "invalid page", args: []string{"query", "--page", "x"}},
		{name: "run takes no args", args: []string{"run", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			assert.Error(t, err)
			assert.Nil(t, opts)
		})
	}
}
