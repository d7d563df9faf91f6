package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToWriteConfig = errors.New("failed to write config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigExists        = errors.New("config file already exists")

	ErrEndpointRequired    = errors.New("backend endpoint is required")
	ErrInvalidEndpoint     = errors.New("backend endpoint must be an http(s) URL")
	ErrInvalidTimeout      = errors.New("backend timeout must be positive")
	ErrInvalidIndex        = errors.New("backend index must not be empty")
	ErrInvalidFacetPattern = errors.New("invalid facet exclude pattern")
	ErrInvalidLogFormat    = errors.New("logging format must be 'console' or 'json'")

	ErrEnvironmentRequired  = errors.New("no environment selected")
	ErrBackendRequest       = errors.New("search request failed")
	ErrBackendResponse      = errors.New("unexpected search response")
	ErrFailedToCreateAuth   = errors.New("failed to load backend credentials")
	ErrFailedToCreateClient = errors.New("failed to create search client")

	ErrNoActiveField = errors.New("focused pane has no filter field")

	ErrNothingToCopy     = errors.New("nothing to copy")
	ErrFailedToWriteTemp = errors.New("failed to write temp file")
	ErrUnknownCommand    = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
