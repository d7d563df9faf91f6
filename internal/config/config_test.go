package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logex/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultRegion, cfg.Backend.Region)
	assert.Equal(t, DefaultService, cfg.Backend.Service)
	assert.Equal(t, DefaultIndex, cfg.Backend.Index)
	assert.True(t, cfg.Backend.Sign)
	assert.Equal(t, DefaultTimeout, cfg.Backend.Timeout)
	assert.Equal(t, DefaultFacetWindow, cfg.Backend.FacetWindow)
	assert.Equal(t, DefaultTimeRange, cfg.Defaults.TimeRange)
	assert.Equal(t, DefaultPageSize, cfg.Defaults.PageSize)
	assert.Equal(t, DefaultSearchMode, cfg.Defaults.SearchMode)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Empty(t, cfg.Backend.Endpoint)
}

func Test_DefaultPath(t *testing.T) {
	path := DefaultPath()

	assert.Equal(t, ConfigFileName, filepath.Base(path))
	assert.Equal(t, ConfigDirName, filepath.Base(filepath.Dir(path)))
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
		check   func(t *testing.T, cfg *Config)
		error   error
	}{
		{
			name:  "no config file found - uses default",
			write: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultIndex, cfg.Backend.Index)
				assert.Equal(t, DefaultTimeout, cfg.Backend.Timeout)
			},
		},
		{
			name:  "valid config file",
			write: true,
			content: `version: 1
backend:
  endpoint: https://search.example.com/
  region: us-east-1
  index: app-logs-*
  sign: false
  timeout: 10s
  facet_window: now-7d
facets:
  exclude:
    - "internal-*"
defaults:
  environment: prod
  time_range: 1h
  page_size: "50"
logging:
  level: DEBUG
  format: json
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://search.example.com", cfg.Backend.Endpoint)
				assert.Equal(t, "us-east-1", cfg.Backend.Region)
				assert.Equal(t, "app-logs-*", cfg.Backend.Index)
				assert.False(t, cfg.Backend.Sign)
				assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
				assert.Equal(t, "now-7d", cfg.Backend.FacetWindow)
				assert.Equal(t, []string{"internal-*"}, cfg.Facets.Exclude)
				assert.Equal(t, "prod", cfg.Defaults.Environment)
				assert.Equal(t, "1h", cfg.Defaults.TimeRange)
				assert.Equal(t, "50", cfg.Defaults.PageSize)
				assert.Equal(t, DefaultSearchMode, cfg.Defaults.SearchMode)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:    "invalid yaml",
			write:   true,
			content: "backend: [unclosed",
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name:    "invalid yaml structure for unmarshal",
			write:   true,
			content: "backend: \"this should be a map not a string\"\n",
			error:   errors.ErrFailedToParseConfig,
		},
		{
			name:    "invalid endpoint",
			write:   true,
			content: "backend:\n  endpoint: search.example.com\n",
			error:   errors.ErrInvalidEndpoint,
		},
		{
			name:    "invalid facet pattern",
			write:   true,
			content: "facets:\n  exclude: [\"[\"]\n",
			error:   errors.ErrInvalidFacetPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if tt.write {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			cfg, err := Load(path)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path)
			tt.check(t, cfg)
		})
	}
}

func Test_Load_EnvOverride(t *testing.T) {
	t.Setenv("LOGEX_BACKEND_ENDPOINT", "http://localhost:9200")
	t.Setenv("LOGEX_BACKEND_SIGN", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9200", cfg.Backend.Endpoint)
	assert.False(t, cfg.Backend.Sign)
}

func Test_Load_PermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o000))

	cfg, err := Load(path)

	assert.Equal(t, errors.ErrFailedToReadConfig, err)
	assert.Nil(t, cfg)
}

func Test_RequireEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, errors.ErrEndpointRequired, cfg.RequireEndpoint())

	cfg.Backend.Endpoint = "https://search.example.com"
	assert.NoError(t, cfg.RequireEndpoint())
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		error  error
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero timeout", mutate: func(c *Config) { c.Backend.Timeout = 0 }, error: errors.ErrInvalidTimeout},
		{name: "empty index", mutate: func(c *Config) { c.Backend.Index = "" }, error: errors.ErrInvalidIndex},
		{name: "ftp endpoint", mutate: func(c *Config) { c.Backend.Endpoint = "ftp://x" }, error: errors.ErrInvalidEndpoint},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, error: errors.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.error == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.error)
			}
		})
	}
}
