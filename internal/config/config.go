package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"logex/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Backend  Backend  `mapstructure:"backend" yaml:"backend"`
	Facets   Facets   `mapstructure:"facets" yaml:"facets"`
	Defaults Defaults `mapstructure:"defaults" yaml:"defaults"`
	Logging  Logging  `mapstructure:"logging" yaml:"logging"`
	Report   Report   `mapstructure:"report" yaml:"report"`
	Version  int      `mapstructure:"version" yaml:"version"`

	// Path is the file the configuration was read from (or would be written to)
	Path string `mapstructure:"-" yaml:"-"`
}

// Backend describes how to reach the search cluster
type Backend struct {
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`
	Region      string        `mapstructure:"region" yaml:"region"`
	Service     string        `mapstructure:"service" yaml:"service"`
	Index       string        `mapstructure:"index" yaml:"index"`
	Sign        bool          `mapstructure:"sign" yaml:"sign"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	FacetWindow string        `mapstructure:"facet_window" yaml:"facet_window"`
}

// Facets controls which facet values are offered in the filter bar
type Facets struct {
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
}

// Defaults holds the filter values preselected at startup
type Defaults struct {
	Environment string `mapstructure:"environment" yaml:"environment"`
	TimeRange   string `mapstructure:"time_range" yaml:"time_range"`
	PageSize    string `mapstructure:"page_size" yaml:"page_size"`
	SearchMode  string `mapstructure:"search_mode" yaml:"search_mode"`
}

// Logging configures the application's own diagnostic log
type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// Report configures optional error reporting
type Report struct {
	DSN         string `mapstructure:"dsn" yaml:"dsn"`
	Environment string `mapstructure:"environment" yaml:"environment"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Backend.Region = DefaultRegion
	cfg.Backend.Service = DefaultService
	cfg.Backend.Index = DefaultIndex
	cfg.Backend.Sign = true
	cfg.Backend.Timeout = DefaultTimeout
	cfg.Backend.FacetWindow = DefaultFacetWindow

	cfg.Facets.Exclude = []string{}

	cfg.Defaults.TimeRange = DefaultTimeRange
	cfg.Defaults.PageSize = DefaultPageSize
	cfg.Defaults.SearchMode = DefaultSearchMode

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}

		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// Load reads the config file at path (DefaultPath when empty), applying .env and LOGEX_* overrides
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrFailedToParseConfig, DotEnvFile, err)
	}

	cfg := DefaultConfig()
	v := newViper(cfg)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.Path = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with every known key so env overrides apply
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", cfg.Version)
	v.SetDefault("backend.endpoint", cfg.Backend.Endpoint)
	v.SetDefault("backend.region", cfg.Backend.Region)
	v.SetDefault("backend.service", cfg.Backend.Service)
	v.SetDefault("backend.index", cfg.Backend.Index)
	v.SetDefault("backend.sign", cfg.Backend.Sign)
	v.SetDefault("backend.timeout", cfg.Backend.Timeout)
	v.SetDefault("backend.facet_window", cfg.Backend.FacetWindow)
	v.SetDefault("facets.exclude", cfg.Facets.Exclude)
	v.SetDefault("defaults.environment", cfg.Defaults.Environment)
	v.SetDefault("defaults.time_range", cfg.Defaults.TimeRange)
	v.SetDefault("defaults.page_size", cfg.Defaults.PageSize)
	v.SetDefault("defaults.search_mode", cfg.Defaults.SearchMode)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("report.dsn", cfg.Report.DSN)
	v.SetDefault("report.environment", cfg.Report.Environment)

	return v
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateBackend(); err != nil {
		return err
	}

	if err := c.validateFacets(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return nil
}

// RequireEndpoint reports whether the backend can be contacted at all
func (c *Config) RequireEndpoint() error {
	if c.Backend.Endpoint == "" {
		return errors.ErrEndpointRequired
	}

	return nil
}

// validateBackend validates the backend section
func (c *Config) validateBackend() error {
	if c.Backend.Endpoint != "" {
		u, err := url.Parse(c.Backend.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.ErrInvalidEndpoint
		}
	}

	if c.Backend.Timeout <= 0 {
		return errors.ErrInvalidTimeout
	}

	if c.Backend.Index == "" {
		return errors.ErrInvalidIndex
	}

	return nil
}

// validateFacets checks that every exclude pattern compiles
func (c *Config) validateFacets() error {
	for _, pattern := range c.Facets.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w '%s': %w", errors.ErrInvalidFacetPattern, pattern, err)
		}
	}

	return nil
}

// validateLogging validates the logging section
func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return errors.ErrInvalidLogFormat
	}
}

// normalize trims user-entered values
func (c *Config) normalize() {
	c.Backend.Endpoint = strings.TrimRight(strings.TrimSpace(c.Backend.Endpoint), "/")
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}
