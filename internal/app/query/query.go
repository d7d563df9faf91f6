package query

import (
	"strconv"
	"strings"

	"logex/internal/app/errors"
	"logex/internal/app/search"
)

// All is the candidate meaning "do not filter on this field"
const All = "ALL"

// Search modes
const (
	ModeEachWord = "each word"
	ModeExact    = "exact"
)

// Search field choices
const (
	FieldsMessage           = "message"
	FieldsMessageStacktrace = "message + stacktrace"
	FieldsLogger            = "logger"
)

// Page sizes and time ranges offered by the filter bar
var (
	PageSizes   = []string{"50", "100", "200", "500", "1000"}
	TimeRanges  = []string{"1m", "5m", "15m", "30m", "1h", "3h", "6h", "12h", "24h", "3d", "7d"}
	SearchModes = []string{ModeEachWord, ModeExact}
	FieldSets   = []string{FieldsMessage, FieldsMessageStacktrace, FieldsLogger}
)

const (
	defaultTimeRange = "now-5m"
	defaultPageSize  = 100
)

var timeRangeExpr = func() map[string]string {
	m := make(map[string]string, len(TimeRanges))
	for _, token := range TimeRanges {
		m[token] = "now-" + token
	}

	return m
}()

var fieldSets = map[string][]string{
	FieldsMessage:           {"message"},
	FieldsMessageStacktrace: {"message", "stacktrace"},
	FieldsLogger:            {"logger"},
}

// Filters holds the committed value of every filter dimension
type Filters struct {
	Environment  string
	Application  string
	Severity     string
	TimeRange    string
	PageSize     string
	SearchText   string
	SearchMode   string
	SearchFields string
}

// Build turns committed filters and a 1-based page number into backend parameters
func Build(f Filters, page int) (search.Params, error) {
	if f.Environment == "" {
		return search.Params{}, errors.ErrEnvironmentRequired
	}

	size := PageSize(f.PageSize)

	return search.Params{
		Environment:  f.Environment,
		Application:  optional(f.Application),
		Severity:     optional(f.Severity),
		TimeRange:    TimeRangeExpr(f.TimeRange),
		SearchText:   strings.TrimSpace(f.SearchText),
		SearchExact:  f.SearchMode == ModeExact,
		SearchFields: SearchFields(f.SearchFields),
		From:         Offset(page, size),
		Size:         size,
	}, nil
}

// TimeRangeExpr maps a time range token to a relative time expression
func TimeRangeExpr(token string) string {
	if expr, ok := timeRangeExpr[token]; ok {
		return expr
	}

	return defaultTimeRange
}

// PageSize parses a page size choice, falling back to the default
func PageSize(value string) int {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || size <= 0 {
		return defaultPageSize
	}

	return size
}

// SearchFields resolves a field set choice to index fields
func SearchFields(choice string) []string {
	if fields, ok := fieldSets[choice]; ok {
		return append([]string(nil), fields...)
	}

	return []string{"message"}
}

// Offset returns the index of the first hit on page
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * size
}

// TotalPages returns how many pages totalHits spans, never less than one
func TotalPages(totalHits int64, size int) int {
	if size <= 0 || totalHits <= 0 {
		return 1
	}

	return int((totalHits + int64(size) - 1) / int64(size))
}

func optional(value string) string {
	if value == All {
		return ""
	}

	return value
}
