package config

import "time"

// app constants
const (
	AppName        = "logex"
	AppDescription = "Terminal explorer for logs stored in OpenSearch"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.0"

	EnvPrefix = "LOGEX"
)

// file constants
const (
	ConfigDirName  = "logex"
	ConfigFileName = "config.yaml"
	DotEnvFile     = ".env"
)

// backend constants
const (
	DefaultRegion      = "eu-central-1"
	DefaultService     = "es"
	DefaultIndex       = "logs-*"
	DefaultTimeout     = 30 * time.Second
	DefaultFacetWindow = "now-24h"
)

// facet aggregation sizes
const (
	EnvironmentFacetSize = 20
	ApplicationFacetSize = 100
	SeverityFacetSize    = 20
)

// filter defaults
const (
	DefaultTimeRange  = "15m"
	DefaultPageSize   = "100"
	DefaultSearchMode = "each word"
)
