// Package content defines the application's core content-related domain
// entities and the list-query contract consumed by the widget mounts.
package content

import "time"

// PageItem is one published page as surfaced by the page list endpoint.
type PageItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	MetaTitle       string    `json:"metaTitle,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	MetaImage       string    `json:"metaImage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LinkItem is one reusable link as surfaced by the link list endpoint.
type LinkItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Target       string    `json:"target"`
	Banner       string    `json:"banner,omitempty"`
	Descriptions string    `json:"descriptions,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ContentItem is one entry of the union feed: pages and links merged and
// sorted by recency. Type discriminates the source record.
type ContentItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Target       string    `json:"target"`
	Banner       string    `json:"banner,omitempty"`
	Descriptions string    `json:"descriptions,omitempty"`
	Type         string    `json:"type"` // "page" | "link"
	CreatedAt    time.Time `json:"createdAt"`
}

// ListQuery carries the filter/pagination parameters shared by every list
// endpoint. Tags use AND semantics: a record matches only when it carries
// every listed tag. Attributes are exact-value lookups in the record's
// free-form attribute map.
type ListQuery struct {
	Search     string
	Tags       []string
	Attributes map[string]string
	Page       int // 1-based; values below 1 are treated as 1
	Limit      int
}

// Offset computes the SQL offset for the query.
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.Limit
}

// PageResult is the page list endpoint's response shape.
type PageResult struct {
	Pages []PageItem `json:"pages"`
	Total int        `json:"total"`
}

// LinkResult is the link list endpoint's response shape.
type LinkResult struct {
	Links []LinkItem `json:"links"`
	Total int        `json:"total"`
}

// ContentResult is the union feed endpoint's response shape.
type ContentResult struct {
	Contents []ContentItem `json:"contents"`
	Total    int           `json:"total"`
}

// FormSubmission is one public form submission.
type FormSubmission struct {
	ID        string            `json:"id"`
	FormID    string            `json:"formId"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Project is one persisted builder document, keyed by its page slug.
type Project struct {
	ID        string     `json:"id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Data      []byte     `json:"-"` // serialized ProjectData JSON
	CreatedAt time.Time  `json:"createdAt"`
	ChangedAt *time.Time `json:"changedAt,omitempty"`
}
