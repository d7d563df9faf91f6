package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RenderPanel(t *testing.T) {
	t.Run("renders title footer and content", func(t *testing.T) {
		result := RenderPanel(PanelOptions{
			Title:   "logs",
			Info:    "page 1/3",
			Content: "line one\nline two",
			Footer:  "cpu 1.0%",
			Version: "v1.0",
			Height:  6,
			Width:   40,
		})

		lines := strings.Split(result, "\n")
		require.Len(t, lines, 6)
		assert.Contains(t, lines[0], "logs")
		assert.Contains(t, lines[0], "page 1/3")
		assert.Contains(t, lines[1], "line one")
		assert.Contains(t, lines[5], "cpu 1.0%")
		assert.Contains(t, lines[5], "v1.0")

		for _, line := range lines {
			assert.Equal(t, 40, lipgloss.Width(line))
		}
	})

	t.Run("clamps tiny dimensions", func(t *testing.T) {
		result := RenderPanel(PanelOptions{Title: "T", Content: "C", Height: 1, Width: 5})

		lines := strings.Split(result, "\n")
		assert.Len(t, lines, 3)
	})

	t.Run("truncates overflowing content", func(t *testing.T) {
		result := RenderPanel(PanelOptions{Content: "a\nb\nc\nd", Height: 4, Width: 30})

		assert.Len(t, strings.Split(result, "\n"), 4)
		assert.NotContains(t, result, "c")
	})
}

func Test_BuildTopBorder(t *testing.T) {
	border := func(s string) string { return s }

	result := BuildTopBorder(border, "Title", "Info", 40)

	assert.True(t, strings.HasPrefix(result, BorderTopLeft))
	assert.True(t, strings.HasSuffix(result, BorderTopRight))
	assert.Contains(t, result, "Title")
	assert.Contains(t, result, "Info")
	assert.Equal(t, 40, lipgloss.Width(result))
}

func Test_BuildBottomBorder(t *testing.T) {
	border := func(s string) string { return s }

	t.Run("info and version", func(t *testing.T) {
		result := BuildBottomBorder(border, "cpu 0.5% • mem 12MB", "v1.0", 60)

		assert.True(t, strings.HasPrefix(result, BorderBottomLeft))
		assert.True(t, strings.HasSuffix(result, BorderBottomRight))
		assert.Contains(t, result, "cpu 0.5% • mem 12MB")
		assert.Equal(t, 60, lipgloss.Width(result))
	})

	t.Run("overflowing text keeps corners", func(t *testing.T) {
		result := BuildBottomBorder(border, "", "very-long-version-text", 10)

		assert.True(t, strings.HasPrefix(result, BorderBottomLeft))
		assert.True(t, strings.HasSuffix(result, BorderBottomRight))
	})
}

func Test_AppendContentLines(t *testing.T) {
	border := func(s string) string { return "[" + s + "]" }

	result := AppendContentLines([]string{"header"}, []string{"ab", "very long content"}, 5, border)

	require.Len(t, result, 3)
	assert.Equal(t, "header", result[0])
	assert.Equal(t, "[│]ab   [│]", result[1])
	assert.Equal(t, "[│]very long content[│]", result[2])
}

func Test_splitAndPadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		height  int
		expect  []string
	}{
		{name: "empty content pads", content: "", height: 3, expect: []string{"", "", ""}},
		{name: "single line pads", content: "line1", height: 2, expect: []string{"line1", ""}},
		{name: "exact", content: "a\nb", height: 2, expect: []string{"a", "b"}},
		{name: "truncates", content: "a\nb\nc", height: 2, expect: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, splitAndPadContent(tt.content, tt.height))
		})
	}
}

func Test_PadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "empty", input: "", width: 3, expect: "   "},
		{name: "short", input: "hi", width: 5, expect: "hi   "},
		{name: "exact", input: "hello", width: 5, expect: "hello"},
		{name: "longer unchanged", input: "hello world", width: 5, expect: "hello world"},
		{name: "wide runes", input: "日本", width: 6, expect: "日本  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PadRight(tt.input, tt.width))
		})
	}
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "fits", input: "hello", width: 5, expect: "hello"},
		{name: "cut", input: "hello world", width: 8, expect: "hello w…"},
		{name: "width one", input: "hello", width: 1, expect: "…"},
		{name: "zero width", input: "hello", width: 0, expect: ""},
		{name: "wide runes", input: "日本語テスト", width: 6, expect: "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Truncate(tt.input, tt.width))
		})
	}
}

func Test_TruncateAndPad(t *testing.T) {
	assert.Equal(t, "hi   ", TruncateAndPad("hi", 5))
	assert.Equal(t, "hello w…", TruncateAndPad("hello world", 8))
	assert.Equal(t, "日本… ", TruncateAndPad("日本語テスト", 6))
	assert.Equal(t, "…", TruncateAndPad("hello", 0))
}

func Test_FirstLine(t *testing.T) {
	assert.Equal(t, "first", FirstLine("first\nsecond"))
	assert.Equal(t, "first", FirstLine("first\r\nsecond"))
	assert.Equal(t, "only", FirstLine("only"))
	assert.Empty(t, FirstLine(""))
}
