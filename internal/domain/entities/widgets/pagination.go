package widgets

// TotalPages computes ceil(total / pageSize). Zero results mean zero pages;
// a page request beyond the last page yields an empty result set, not an
// error.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ListState is the per-instance state of one paginated list widget. Each
// mounted instance owns exactly one ListState, so multiple instances of the
// same widget kind on one page stay independent.
type ListState struct {
	CurrentPage       int               // 1-based
	SearchQuery       string
	DynamicAttributes map[string]string // filter key -> value, empty values skipped

	// seq orders fetches so a stale response can never overwrite a newer
	// one: the last request issued wins, not the last to resolve.
	seq uint64
}

// NewListState starts on page 1 with no filters.
func NewListState() *ListState {
	return &ListState{
		CurrentPage:       1,
		DynamicAttributes: make(map[string]string),
	}
}

// SetPage moves to a page. Pages below 1 clamp to 1.
func (s *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.CurrentPage = page
}

// SetSearch updates the search query and resets pagination to page 1. The
// reset happens before the next fetch is issued.
func (s *ListState) SetSearch(query string) {
	s.SearchQuery = query
	s.CurrentPage = 1
}

// SetAttribute updates one dynamic filter value and resets pagination to
// page 1. Empty values clear the filter.
func (s *ListState) SetAttribute(key, value string) {
	if value == "" {
		delete(s.DynamicAttributes, key)
	} else {
		s.DynamicAttributes[key] = value
	}
	s.CurrentPage = 1
}

// NextSeq issues a new fetch sequence number.
func (s *ListState) NextSeq() uint64 {
	s.seq++
	return s.seq
}

// AcceptResult reports whether a fetch response with the given sequence
// number may be applied. Only the most recently issued fetch is accepted.
func (s *ListState) AcceptResult(seq uint64) bool {
	return seq == s.seq
}
