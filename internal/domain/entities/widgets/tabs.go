package widgets

// TabSet is the selection state machine for one tabs instance: exactly one
// panel is visible at a time, index 0 initially.
type TabSet struct {
	Count  int
	Active int
}

// NewTabSet starts with panel 0 selected.
func NewTabSet(count int) *TabSet {
	if count < 0 {
		count = 0
	}
	return &TabSet{Count: count}
}

// Select shows the panel at index, ignoring out-of-range requests. Returns
// the active index after the call.
func (t *TabSet) Select(index int) int {
	if index >= 0 && index < t.Count {
		t.Active = index
	}
	return t.Active
}

// Visible reports whether the panel at index is the one shown.
func (t *TabSet) Visible(index int) bool {
	return t.Count > 0 && index == t.Active
}
