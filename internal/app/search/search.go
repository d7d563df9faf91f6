//go:generate mockgen -source=search.go -destination=search_mock.go -package=search
package search

import (
	"context"
)

// Facets holds the distinct filter values offered by the backend
type Facets struct {
	Environments []string
	Applications []string
	Severities   []string
}

// Params describes a single page request. Empty optional fields omit their clause.
type Params struct {
	Environment  string
	Application  string
	Severity     string
	TimeRange    string
	SearchText   string
	SearchExact  bool
	SearchFields []string
	From         int
	Size         int
}

// Result is one page of records plus the match count of the whole query
type Result struct {
	Records   []Record
	TotalHits int64
}

// Backend is the log search collaborator
type Backend interface {
	ListFacets(ctx context.Context) (Facets, error)
	Search(ctx context.Context, params Params) (Result, error)
}
