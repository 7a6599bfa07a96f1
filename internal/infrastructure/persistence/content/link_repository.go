package content

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
)

type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// QueryLinks runs the filtered, paginated link list query with the same AND
// tag semantics as pages.
func (r *LinkRepository) QueryLinks(ctx context.Context, q content.ListQuery) (*content.LinkResult, error) {
	where, args := buildListFilters("link", q)

	var total int
	countQuery := `SELECT COUNT(*) FROM links p` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}

	listQuery := `SELECT p.id, p.title, p.target, p.banner, p.descriptions, p.created_at
		FROM links p` + where + ` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`
	listArgs := append(append([]any{}, args...), q.Limit, q.Offset())

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	result := &content.LinkResult{Links: []content.LinkItem{}, Total: total}
	for rows.Next() {
		var item content.LinkItem
		var banner, descriptions sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &item.Target, &banner, &descriptions, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		item.Banner = banner.String
		item.Descriptions = descriptions.String
		result.Links = append(result.Links, item)
	}

	return result, rows.Err()
}

func (r *LinkRepository) FindByID(ctx context.Context, id string) (*content.LinkItem, error) {
	var item content.LinkItem
	var banner, descriptions sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT id, title, target, banner, descriptions, created_at
		FROM links WHERE id = ?`, id).Scan(
		&item.ID, &item.Title, &item.Target, &banner, &descriptions, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load link: %w", err)
	}

	item.Banner = banner.String
	item.Descriptions = descriptions.String
	return &item, nil
}

// Store upserts a link with its tag set and attribute map.
func (r *LinkRepository) Store(ctx context.Context, link *content.LinkItem, tags []string, attributes map[string]string) error {
	if link.ID == "" {
		link.ID = security.GenerateULID()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin link store: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO links (id, title, target, banner, descriptions, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title=excluded.title, target=excluded.target,
			banner=excluded.banner, descriptions=excluded.descriptions`,
		link.ID, link.Title, link.Target, link.Banner, link.Descriptions, link.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store link: %w", err)
	}

	if err := replaceTags(ctx, tx, "link_tags", "link_id", link.ID, tags); err != nil {
		return err
	}
	if err := replaceAttributes(ctx, tx, "link_attributes", "link_id", link.ID, attributes); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *LinkRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin link delete: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM link_tags WHERE link_id = ?`,
		`DELETE FROM link_attributes WHERE link_id = ?`,
		`DELETE FROM links WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to delete link: %w", err)
		}
	}

	return tx.Commit()
}
