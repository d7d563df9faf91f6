package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip renders a body the way it goes over the wire
func roundTrip(t *testing.T, body object) map[string]any {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	return out
}

func mustClauses(t *testing.T, body map[string]any) []any {
	t.Helper()

	query := body["query"].(map[string]any)
	boolQuery := query["bool"].(map[string]any)

	return boolQuery["must"].([]any)
}

func Test_searchBody_Minimal(t *testing.T) {
	body := roundTrip(t, searchBody(Params{
		Environment: "prod",
		TimeRange:   "now-15m",
		From:        50,
		Size:        50,
	}))

	assert.Equal(t, float64(50), body["from"])
	assert.Equal(t, float64(50), body["size"])
	assert.Equal(t, true, body["track_total_hits"])
	assert.Equal(t, []any{map[string]any{"@timestamp": "desc"}}, body["sort"])

	must := mustClauses(t, body)
	require.Len(t, must, 2)
	assert.Equal(t, map[string]any{"match": map[string]any{"profiles": "prod"}}, must[0])
	assert.Equal(t, map[string]any{"range": map[string]any{"@timestamp": map[string]any{"gte": "now-15m"}}}, must[1])
}

func Test_searchBody_OptionalClauses(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected []string
	}{
		{
			name:     "application only",
			params:   Params{Application: "billing"},
			expected: []string{"application"},
		},
		{
			name:     "severity only",
			params:   Params{Severity: "ERROR"},
			expected: []string{"severity"},
		},
		{
			name:     "both",
			params:   Params{Application: "billing", Severity: "ERROR"},
			expected: []string{"application", "severity"},
		},
		{
			name:     "neither",
			params:   Params{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Environment = "prod"
			tt.params.TimeRange = "now-5m"

			must := mustClauses(t, roundTrip(t, searchBody(tt.params)))
			require.Len(t, must, 2+len(tt.expected))

			for i, field := range tt.expected {
				match := must[2+i].(map[string]any)["match"].(map[string]any)
				assert.Contains(t, match, field)
			}
		})
	}
}

func Test_textClause(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected object
	}{
		{
			name:     "empty text",
			params:   Params{SearchText: "   "},
			expected: nil,
		},
		{
			name:   "each word",
			params: Params{SearchText: "payment  failed"},
			expected: object{"query_string": object{
				"query":            "*payment* AND *failed*",
				"fields":           []string{"message"},
				"analyze_wildcard": true,
			}},
		},
		{
			name:   "each word escapes reserved characters",
			params: Params{SearchText: "a:b (c) <d>", SearchFields: []string{"logger"}},
			expected: object{"query_string": object{
				"query":            `*a\:b* AND *\(c\)* AND *d*`,
				"fields":           []string{"logger"},
				"analyze_wildcard": true,
			}},
		},
		{
			name:   "exact",
			params: Params{SearchText: "order 42 rejected", SearchExact: true, SearchFields: []string{"message", "stacktrace"}},
			expected: object{"multi_match": object{
				"query":  "order 42 rejected",
				"type":   "phrase",
				"fields": []string{"message", "stacktrace"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textClause(tt.params))
		})
	}
}

func Test_searchBody_TextClauseIsLast(t *testing.T) {
	must := mustClauses(t, roundTrip(t, searchBody(Params{
		Environment: "prod",
		TimeRange:   "now-1h",
		Application: "api",
		SearchText:  "timeout",
	})))

	require.Len(t, must, 4)
	assert.Contains(t, must[3], "query_string")
}

func Test_facetsBody(t *testing.T) {
	body := roundTrip(t, facetsBody("now-24h", FacetSizes{Environments: 20, Applications: 100, Severities: 20}))

	assert.Equal(t, float64(0), body["size"])
	assert.Equal(t, map[string]any{"range": map[string]any{"@timestamp": map[string]any{"gte": "now-24h"}}}, body["query"])

	aggs := body["aggs"].(map[string]any)
	require.Len(t, aggs, 3)

	apps := aggs["applications"].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "application.keyword", apps["field"])
	assert.Equal(t, float64(100), apps["size"])
	assert.Equal(t, map[string]any{"_key": "asc"}, apps["order"])

	envs := aggs["profiles"].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "profiles.keyword", envs["field"])

	sev := aggs["severities"].(map[string]any)["terms"].(map[string]any)
	assert.Equal(t, "severity.keyword", sev["field"])
	assert.Equal(t, float64(20), sev["size"])
}

func Test_escapeQueryString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "plain", expected: "plain"},
		{input: "a/b", expected: `a\/b`},
		{input: `"q"`, expected: `\"q\"`},
		{input: "x<y>z", expected: "xyz"},
		{input: "über", expected: "über"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeQueryString(tt.input))
		})
	}
}
