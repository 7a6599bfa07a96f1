// Package services holds the application services that sit between the HTTP
// layer and the domain: project persistence, page rendering, widget fragment
// generation, editor sessions, auth, and form intake.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/caching"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
)

// ProjectService loads and stores serialized builder documents, keeping the
// parsed-project cache coherent with the database.
type ProjectService struct {
	repo   repositories.ProjectRepository
	cache  *caching.Manager
	logger *logging.ChanneledLogger
}

// NewProjectService creates a project service.
func NewProjectService(repo repositories.ProjectRepository, cache *caching.Manager, logger *logging.ChanneledLogger) *ProjectService {
	return &ProjectService{repo: repo, cache: cache, logger: logger}
}

// GetProject returns the parsed project for a slug, from cache when warm.
func (s *ProjectService) GetProject(ctx context.Context, slug string) (*builder.ProjectData, error) {
	if project, ok := s.cache.GetProject(slug); ok {
		return project, nil
	}

	record, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", slug, err)
	}
	if record == nil {
		return nil, nil
	}

	project, err := builder.ParseProjectData(record.Data)
	if err != nil {
		return nil, fmt.Errorf("parse project %s: %w", slug, err)
	}

	s.cache.SetProject(slug, project)
	s.logger.Content().Debug("project cached", "slug", slug)
	return project, nil
}

// SaveProject validates and persists a project document, then invalidates
// the slug's cached project and HTML so the next render sees the new state.
func (s *ProjectService) SaveProject(ctx context.Context, slug, title string, data []byte) (*content.Project, error) {
	if _, err := builder.ParseProjectData(data); err != nil {
		return nil, fmt.Errorf("reject project %s: %w", slug, err)
	}

	record, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("look up project %s: %w", slug, err)
	}
	if record == nil {
		record = &content.Project{
			ID:        security.GenerateULID(),
			Slug:      slug,
			CreatedAt: time.Now().UTC(),
		}
	}
	record.Title = title
	record.Data = data
	now := time.Now().UTC()
	record.ChangedAt = &now

	if err := s.repo.Store(ctx, record); err != nil {
		return nil, fmt.Errorf("store project %s: %w", slug, err)
	}

	s.cache.Invalidate(slug)
	s.logger.Content().Info("project saved", "slug", slug, "id", record.ID)
	return record, nil
}

// DeleteProject removes a project and drops its cache entries.
func (s *ProjectService) DeleteProject(ctx context.Context, slug string) error {
	record, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("look up project %s: %w", slug, err)
	}
	if record == nil {
		return nil
	}
	if err := s.repo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("delete project %s: %w", slug, err)
	}
	s.cache.Invalidate(slug)
	s.logger.Content().Info("project deleted", "slug", slug, "id", record.ID)
	return nil
}
