package content

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*content.Project, error) {
	return r.findOne(ctx, "id", id)
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*content.Project, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *ProjectRepository) findOne(ctx context.Context, column, value string) (*content.Project, error) {
	query := fmt.Sprintf(`SELECT id, slug, title, data, created_at, changed_at FROM projects WHERE %s = ?`, column)

	var project content.Project
	var data string
	var changed sql.NullTime
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&project.ID, &project.Slug, &project.Title, &data, &project.CreatedAt, &changed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project by %s: %w", column, err)
	}

	project.Data = []byte(data)
	if changed.Valid {
		project.ChangedAt = &changed.Time
	}
	return &project, nil
}

// Store upserts a builder document by slug.
func (r *ProjectRepository) Store(ctx context.Context, project *content.Project) error {
	if project.ID == "" {
		project.ID = security.GenerateULID()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	now := time.Now().UTC()
	project.ChangedAt = &now

	_, err := r.db.ExecContext(ctx, `INSERT INTO projects (id, slug, title, data, created_at, changed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET title=excluded.title, data=excluded.data, changed_at=excluded.changed_at`,
		project.ID, project.Slug, project.Title, string(project.Data), project.CreatedAt, now)
	if err != nil {
		return fmt.Errorf("failed to store project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
