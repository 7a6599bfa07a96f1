package services

import (
	"context"
	"fmt"

	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/caching"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/presentation/hydration"
	"github.com/pagesmith/pagesmith-go/internal/presentation/templates"
)

// ErrProjectNotFound is returned when a render is requested for a slug with
// no stored project.
var ErrProjectNotFound = fmt.Errorf("project not found")

// RenderService produces full hydrated pages: static synthesis of the
// project's frames, then the hydration pass over the result. Hydrated pages
// are cached per slug until the project changes.
type RenderService struct {
	projects     *ProjectService
	orchestrator *hydration.Orchestrator
	cache        *caching.Manager
	logger       *logging.ChanneledLogger
}

// NewRenderService creates a render service.
func NewRenderService(projects *ProjectService, querier repositories.ContentQuerier, registry *hydration.Registry, cache *caching.Manager, logger *logging.ChanneledLogger) *RenderService {
	return &RenderService{
		projects:     projects,
		orchestrator: hydration.NewOrchestrator(querier, registry, logger.Render()),
		cache:        cache,
		logger:       logger,
	}
}

// RenderPage returns the hydrated HTML document for a slug.
func (s *RenderService) RenderPage(ctx context.Context, slug string) (string, error) {
	if cached, ok := s.cache.GetHTML(slug); ok {
		return cached, nil
	}

	project, err := s.projects.GetProject(ctx, slug)
	if err != nil {
		return "", err
	}
	if project == nil {
		return "", ErrProjectNotFound
	}

	static, err := templates.RenderDocument(slug, project)
	if err != nil {
		return "", fmt.Errorf("synthesize page %s: %w", slug, err)
	}

	hydrated, err := s.orchestrator.Hydrate(ctx, static, project)
	if err != nil {
		return "", fmt.Errorf("hydrate page %s: %w", slug, err)
	}

	s.cache.SetHTML(slug, hydrated)
	s.logger.Render().Info("page rendered", "slug", slug, "widgets", len(s.orchestrator.Registry().IDs()))
	return hydrated, nil
}

// RerenderPage drops the cached document for a slug and renders it fresh.
// Fragment clients use this to force a full synthesize-and-hydrate pass.
func (s *RenderService) RerenderPage(ctx context.Context, slug string) (string, error) {
	s.cache.InvalidateHTML(slug)
	return s.RenderPage(ctx, slug)
}
