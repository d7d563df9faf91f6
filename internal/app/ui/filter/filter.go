package filter

import "strings"

// Field is an incremental selector over an ordered list of values.
// It keeps the committed selection apart from the live search text and the
// highlighted candidate, so typing never changes what is selected.
type Field struct {
	items    []string
	selected int
	text     string
	filtered []int
	cursor   int
}

// New creates a field over the given values
func New(items ...string) *Field {
	f := &Field{}
	f.SetItems(items)

	return f
}

// SetItems replaces the candidates and resets the selection to the first item
func (f *Field) SetItems(items []string) {
	f.items = append([]string(nil), items...)
	f.selected = 0
	f.refilter()
}

// SelectValue commits value if it is one of the candidates; unknown values are ignored
func (f *Field) SelectValue(value string) {
	for i, item := range f.items {
		if item == value {
			f.selected = i
			return
		}
	}
}

// SelectedValue returns the committed value, false when there are no candidates
func (f *Field) SelectedValue() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}

	return f.items[f.selected], true
}

// Open clears the search text and highlights the committed value
func (f *Field) Open() {
	f.text = ""
	f.refilter()
	f.cursor = 0

	for pos, idx := range f.filtered {
		if idx == f.selected {
			f.cursor = pos
			break
		}
	}
}

// TypeChar appends r to the search text
func (f *Field) TypeChar(r rune) {
	f.text += string(r)
	f.refilter()
}

// Backspace removes the last character of the search text
func (f *Field) Backspace() {
	if f.text == "" {
		return
	}

	runes := []rune(f.text)
	f.text = string(runes[:len(runes)-1])
	f.refilter()
}

// Next highlights the following candidate, stopping at the last one
func (f *Field) Next() {
	if f.cursor+1 < len(f.filtered) {
		f.cursor++
	}
}

// Previous highlights the preceding candidate, stopping at the first one
func (f *Field) Previous() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// Confirm commits the highlighted candidate
func (f *Field) Confirm() {
	if len(f.filtered) == 0 {
		return
	}

	f.selected = f.filtered[f.cursor]
}

// FilterText returns the live search text
func (f *Field) FilterText() string {
	return f.text
}

// FilteredItems returns the candidates matching the search text in their original order
func (f *Field) FilteredItems() []string {
	result := make([]string, len(f.filtered))
	for i, idx := range f.filtered {
		result[i] = f.items[idx]
	}

	return result
}

// Cursor returns the highlighted position within FilteredItems
func (f *Field) Cursor() int {
	return f.cursor
}

// Len returns the number of candidates
func (f *Field) Len() int {
	return len(f.items)
}

// refilter recomputes the matching subset and clamps the cursor into it
func (f *Field) refilter() {
	needle := strings.ToLower(f.text)

	f.filtered = f.filtered[:0]
	for i, item := range f.items {
		if strings.Contains(strings.ToLower(item), needle) {
			f.filtered = append(f.filtered, i)
		}
	}

	switch {
	case len(f.filtered) == 0:
		f.cursor = 0
	case f.cursor >= len(f.filtered):
		f.cursor = len(f.filtered) - 1
	}
}
