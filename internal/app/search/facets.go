package search

import (
	"fmt"

	"github.com/gobwas/glob"

	"logex/internal/app/errors"
)

// FacetFilter hides facet values matching any of the configured glob patterns
type FacetFilter struct {
	patterns []glob.Glob
}

// NewFacetFilter compiles the exclude patterns
func NewFacetFilter(patterns []string) (*FacetFilter, error) {
	f := &FacetFilter{patterns: make([]glob.Glob, 0, len(patterns))}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %w", errors.ErrInvalidFacetPattern, pattern, err)
		}

		f.patterns = append(f.patterns, g)
	}

	return f, nil
}

// Apply returns values that no pattern matches, keeping their order
func (f *FacetFilter) Apply(values []string) []string {
	if f == nil || len(f.patterns) == 0 {
		return values
	}

	kept := make([]string, 0, len(values))

	for _, value := range values {
		if !f.excluded(value) {
			kept = append(kept, value)
		}
	}

	return kept
}

func (f *FacetFilter) excluded(value string) bool {
	for _, g := range f.patterns {
		if g.Match(value) {
			return true
		}
	}

	return false
}
