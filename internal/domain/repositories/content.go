// Package repositories defines the repository interfaces for content
// entities. These abstract the data persistence details so the rendering
// core and widget mounts stay decoupled from the database.
package repositories

import (
	"context"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
)

// ContentQuerier is the data-service contract the widget mounts consume:
// paginated, tag- and attribute-filtered list queries over pages, links, and
// the merged content feed. Implementations must apply AND semantics across
// tags on every method.
type ContentQuerier interface {
	QueryPages(ctx context.Context, q content.ListQuery) (*content.PageResult, error)
	QueryLinks(ctx context.Context, q content.ListQuery) (*content.LinkResult, error)
	QueryContents(ctx context.Context, q content.ListQuery) (*content.ContentResult, error)
}

// PageRepository persists published page records.
type PageRepository interface {
	FindByID(ctx context.Context, id string) (*content.PageItem, error)
	FindBySlug(ctx context.Context, slug string) (*content.PageItem, error)
	Store(ctx context.Context, page *content.PageItem, tags []string, attributes map[string]string) error
	Delete(ctx context.Context, id string) error
}

// LinkRepository persists reusable link records.
type LinkRepository interface {
	FindByID(ctx context.Context, id string) (*content.LinkItem, error)
	Store(ctx context.Context, link *content.LinkItem, tags []string, attributes map[string]string) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository persists serialized builder documents.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*content.Project, error)
	FindBySlug(ctx context.Context, slug string) (*content.Project, error)
	Store(ctx context.Context, project *content.Project) error
	Delete(ctx context.Context, id string) error
}

// FormRepository persists public form submissions.
type FormRepository interface {
	StoreSubmission(ctx context.Context, submission *content.FormSubmission) error
}
