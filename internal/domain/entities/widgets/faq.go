package widgets

import "strings"

// FAQState tracks which answers are open. Items toggle independently; this
// is not an exclusive accordion, so any number may be open at once.
type FAQState struct {
	open map[int]bool
}

// NewFAQState starts with every answer closed.
func NewFAQState() *FAQState {
	return &FAQState{open: make(map[int]bool)}
}

// Toggle flips one answer's visibility and returns the new state.
func (f *FAQState) Toggle(index int) bool {
	f.open[index] = !f.open[index]
	return f.open[index]
}

// IsOpen reports whether the answer at index is visible.
func (f *FAQState) IsOpen(index int) bool {
	return f.open[index]
}

// MatchesFilter implements the live text filter: an item stays visible when
// the query appears anywhere in its text, case-insensitive. An empty query
// matches everything.
func MatchesFilter(itemText, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(itemText), strings.ToLower(query))
}
