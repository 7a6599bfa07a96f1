// Package content provides the SQL repositories behind the data-service
// contract: pages, links, the merged content feed, projects, and form
// submissions.
package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
)

type PageRepository struct {
	db *sql.DB
}

func NewPageRepository(db *sql.DB) *PageRepository {
	return &PageRepository{db: db}
}

// QueryPages runs the filtered, paginated page list query. Tags apply with
// AND semantics: every listed tag must be present on a matching page.
func (r *PageRepository) QueryPages(ctx context.Context, q content.ListQuery) (*content.PageResult, error) {
	where, args := buildListFilters("page", q)

	var total int
	countQuery := `SELECT COUNT(*) FROM pages p` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	listQuery := `SELECT p.id, p.title, p.slug, p.meta_title, p.meta_description, p.meta_image, p.created_at
		FROM pages p` + where + ` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`
	listArgs := append(append([]any{}, args...), q.Limit, q.Offset())

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	result := &content.PageResult{Pages: []content.PageItem{}, Total: total}
	for rows.Next() {
		var item content.PageItem
		var metaTitle, metaDescription, metaImage sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &item.Slug, &metaTitle, &metaDescription, &metaImage, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		item.MetaTitle = metaTitle.String
		item.MetaDescription = metaDescription.String
		item.MetaImage = metaImage.String
		result.Pages = append(result.Pages, item)
	}

	return result, rows.Err()
}

func (r *PageRepository) FindByID(ctx context.Context, id string) (*content.PageItem, error) {
	return r.findOne(ctx, "id", id)
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*content.PageItem, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *PageRepository) findOne(ctx context.Context, column, value string) (*content.PageItem, error) {
	query := fmt.Sprintf(`SELECT id, title, slug, meta_title, meta_description, meta_image, created_at
		FROM pages WHERE %s = ?`, column)

	var item content.PageItem
	var metaTitle, metaDescription, metaImage sql.NullString
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&item.ID, &item.Title, &item.Slug, &metaTitle, &metaDescription, &metaImage, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load page by %s: %w", column, err)
	}

	item.MetaTitle = metaTitle.String
	item.MetaDescription = metaDescription.String
	item.MetaImage = metaImage.String
	return &item, nil
}

// Store upserts a page with its tag set and attribute map.
func (r *PageRepository) Store(ctx context.Context, page *content.PageItem, tags []string, attributes map[string]string) error {
	if page.ID == "" {
		page.ID = security.GenerateULID()
	}
	if page.CreatedAt.IsZero() {
		page.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin page store: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO pages (id, title, slug, meta_title, meta_description, meta_image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, slug=excluded.slug,
			meta_title=excluded.meta_title, meta_description=excluded.meta_description, meta_image=excluded.meta_image`,
		page.ID, page.Title, page.Slug, page.MetaTitle, page.MetaDescription, page.MetaImage, page.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store page: %w", err)
	}

	if err := replaceTags(ctx, tx, "page_tags", "page_id", page.ID, tags); err != nil {
		return err
	}
	if err := replaceAttributes(ctx, tx, "page_attributes", "page_id", page.ID, attributes); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin page delete: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM page_tags WHERE page_id = ?`,
		`DELETE FROM page_attributes WHERE page_id = ?`,
		`DELETE FROM pages WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to delete page: %w", err)
		}
	}

	return tx.Commit()
}

// buildListFilters assembles the shared WHERE clause for the list queries.
// prefix selects the tag/attribute tables ("page"/"link"); the base table is
// always aliased "p".
func buildListFilters(prefix string, q content.ListQuery) (string, []any) {
	var clauses []string
	var args []any

	if q.Search != "" {
		clauses = append(clauses, `(p.title LIKE ? OR p.slug LIKE ?)`)
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern)
	}

	for _, tag := range q.Tags {
		clauses = append(clauses, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s_tags t WHERE t.%s_id = p.id AND t.tag = ?)`, prefix, prefix))
		args = append(args, tag)
	}

	for key, value := range q.Attributes {
		if value == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM %s_attributes a WHERE a.%s_id = p.id AND a.key = ? AND a.value = ?)`, prefix, prefix))
		args = append(args, key, value)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func replaceTags(ctx context.Context, tx *sql.Tx, table, fk, ownerID string, tags []string) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, fk), ownerID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (id, %s, tag) VALUES (?, ?, ?)`, table, fk),
			security.GenerateULID(), ownerID, tag)
		if err != nil {
			return fmt.Errorf("failed to store tag %q: %w", tag, err)
		}
	}
	return nil
}

func replaceAttributes(ctx context.Context, tx *sql.Tx, table, fk, ownerID string, attributes map[string]string) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, fk), ownerID); err != nil {
		return fmt.Errorf("failed to clear attributes: %w", err)
	}
	for key, value := range attributes {
		if key == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (id, %s, key, value) VALUES (?, ?, ?, ?)`, table, fk),
			security.GenerateULID(), ownerID, key, value)
		if err != nil {
			return fmt.Errorf("failed to store attribute %q: %w", key, err)
		}
	}
	return nil
}
