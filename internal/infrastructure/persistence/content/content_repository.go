package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
)

// ContentRepository implements the full data-service query contract: the
// page and link list queries plus the merged content feed. The merge and
// recency sort happen here, not in the rendering core.
type ContentRepository struct {
	db    *sql.DB
	pages *PageRepository
	links *LinkRepository
}

func NewContentRepository(db *sql.DB, pages *PageRepository, links *LinkRepository) *ContentRepository {
	return &ContentRepository{db: db, pages: pages, links: links}
}

func (r *ContentRepository) QueryPages(ctx context.Context, q content.ListQuery) (*content.PageResult, error) {
	return r.pages.QueryPages(ctx, q)
}

func (r *ContentRepository) QueryLinks(ctx context.Context, q content.ListQuery) (*content.LinkResult, error) {
	return r.links.QueryLinks(ctx, q)
}

// QueryContents returns the union feed of pages and links sorted by recency.
// Filters apply per branch with the same AND tag semantics as the dedicated
// endpoints; page entries surface their public path as the target.
func (r *ContentRepository) QueryContents(ctx context.Context, q content.ListQuery) (*content.ContentResult, error) {
	pageWhere, pageArgs := buildListFilters("page", q)
	linkWhere, linkArgs := buildListFilters("link", q)

	unionBody := `SELECT p.id, p.title, '/p/' || p.slug AS target, COALESCE(p.meta_image, '') AS banner,
			COALESCE(p.meta_description, '') AS descriptions, 'page' AS type, p.created_at
		FROM pages p` + pageWhere + `
		UNION ALL
		SELECT p.id, p.title, p.target, COALESCE(p.banner, ''), COALESCE(p.descriptions, ''), 'link', p.created_at
		FROM links p` + linkWhere

	unionArgs := append(append([]any{}, pageArgs...), linkArgs...)

	var total int
	countQuery := `SELECT COUNT(*) FROM (` + unionBody + `)`
	if err := r.db.QueryRowContext(ctx, countQuery, unionArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count contents: %w", err)
	}

	listQuery := `SELECT id, title, target, banner, descriptions, type, created_at FROM (` + unionBody + `)
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	listArgs := append(append([]any{}, unionArgs...), q.Limit, q.Offset())

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contents: %w", err)
	}
	defer rows.Close()

	result := &content.ContentResult{Contents: []content.ContentItem{}, Total: total}
	for rows.Next() {
		var item content.ContentItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Target, &item.Banner, &item.Descriptions, &item.Type, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		result.Contents = append(result.Contents, item)
	}

	return result, rows.Err()
}
