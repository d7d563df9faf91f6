package search

import (
	"strings"
)

// Index field names
const (
	FieldTimestamp   = "@timestamp"
	FieldEnvironment = "profiles"
	FieldApplication = "application"
	FieldSeverity    = "severity"
	FieldMessage     = "message"
)

// Facet aggregation names and sizes
const (
	aggEnvironments = "profiles"
	aggApplications = "applications"
	aggSeverities   = "severities"

	keywordSuffix = ".keyword"
)

// FacetSizes bounds the number of buckets returned per facet
type FacetSizes struct {
	Environments int
	Applications int
	Severities   int
}

type object = map[string]any

// queryStringReserved are characters with meaning inside a query_string query.
// < and > cannot be escaped there, so they are removed instead.
const (
	queryStringReserved = `\+-=&|!(){}[]^"~*?:/`
	queryStringDropped  = "<>"
)

// searchBody builds the request body for a page of records
func searchBody(p Params) object {
	must := []any{
		object{"match": object{FieldEnvironment: p.Environment}},
		object{"range": object{FieldTimestamp: object{"gte": p.TimeRange}}},
	}

	if p.Application != "" {
		must = append(must, object{"match": object{FieldApplication: p.Application}})
	}

	if p.Severity != "" {
		must = append(must, object{"match": object{FieldSeverity: p.Severity}})
	}

	if clause := textClause(p); clause != nil {
		must = append(must, clause)
	}

	return object{
		"query":            object{"bool": object{"must": must}},
		"from":             p.From,
		"size":             p.Size,
		"sort":             []any{object{FieldTimestamp: "desc"}},
		"track_total_hits": true,
	}
}

// textClause builds the free text clause, nil when there is nothing to search for
func textClause(p Params) object {
	text := strings.TrimSpace(p.SearchText)
	if text == "" {
		return nil
	}

	fields := p.SearchFields
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	if p.SearchExact {
		return object{"multi_match": object{
			"query":  text,
			"type":   "phrase",
			"fields": fields,
		}}
	}

	words := strings.Fields(text)
	terms := make([]string, len(words))

	for i, word := range words {
		terms[i] = "*" + escapeQueryString(word) + "*"
	}

	return object{"query_string": object{
		"query":            strings.Join(terms, " AND "),
		"fields":           fields,
		"analyze_wildcard": true,
	}}
}

// facetsBody builds the aggregation-only request listing facet values seen since window
func facetsBody(window string, sizes FacetSizes) object {
	terms := func(field string, size int) object {
		return object{"terms": object{
			"field": field + keywordSuffix,
			"size":  size,
			"order": object{"_key": "asc"},
		}}
	}

	return object{
		"size":  0,
		"query": object{"range": object{FieldTimestamp: object{"gte": window}}},
		"aggs": object{
			aggEnvironments: terms(FieldEnvironment, sizes.Environments),
			aggApplications: terms(FieldApplication, sizes.Applications),
			aggSeverities:   terms(FieldSeverity, sizes.Severities),
		},
	}
}

func escapeQueryString(s string) string {
	var b strings.Builder

	for _, r := range s {
		if strings.ContainsRune(queryStringDropped, r) {
			continue
		}

		if strings.ContainsRune(queryStringReserved, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}
