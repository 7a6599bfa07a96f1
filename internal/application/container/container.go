// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/pagesmith/pagesmith-go/internal/application/services"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/caching"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/database"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/email"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	persistence "github.com/pagesmith/pagesmith-go/internal/infrastructure/persistence/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
	"github.com/pagesmith/pagesmith-go/internal/presentation/hydration"
)

// Container holds all singleton services and infrastructure dependencies.
type Container struct {
	// Application services
	ProjectService  *services.ProjectService
	RenderService   *services.RenderService
	FragmentService *services.FragmentService
	ContentService  *services.ContentService
	EditorService   *services.EditorService
	AuthService     *services.AuthService
	FormService     *services.FormService

	// Repositories
	PageRepo    repositories.PageRepository
	LinkRepo    repositories.LinkRepository
	ProjectRepo repositories.ProjectRepository
	FormRepo    repositories.FormRepository
	Querier     repositories.ContentQuerier

	// Infrastructure
	DB        *database.Database
	Cache     *caching.Manager
	Registry  *hydration.Registry
	RateLimit security.RateLimitStore
	Logger    *logging.ChanneledLogger
}

// NewContainer wires repositories over the database and the services over
// the repositories. mailer may be nil when email is not configured.
func NewContainer(db *database.Database, cache *caching.Manager, mailer email.Service, logger *logging.ChanneledLogger) *Container {
	pageRepo := persistence.NewPageRepository(db.Conn)
	linkRepo := persistence.NewLinkRepository(db.Conn)
	contentRepo := persistence.NewContentRepository(db.Conn, pageRepo, linkRepo)
	projectRepo := persistence.NewProjectRepository(db.Conn)
	formRepo := persistence.NewFormRepository(db.Conn)

	registry := hydration.NewRegistry()
	projectService := services.NewProjectService(projectRepo, cache, logger)

	return &Container{
		ProjectService:  projectService,
		RenderService:   services.NewRenderService(projectService, contentRepo, registry, cache, logger),
		FragmentService: services.NewFragmentService(projectService, registry, contentRepo, logger),
		ContentService:  services.NewContentService(contentRepo, logger),
		EditorService:   services.NewEditorService(projectService, registry, contentRepo, cache, logger),
		AuthService:     services.NewAuthService(logger),
		FormService:     services.NewFormService(formRepo, mailer, logger),

		PageRepo:    pageRepo,
		LinkRepo:    linkRepo,
		ProjectRepo: projectRepo,
		FormRepo:    formRepo,
		Querier:     contentRepo,

		DB:        db,
		Cache:     cache,
		Registry:  registry,
		RateLimit: security.NewMemoryRateLimitStore(),
		Logger:    logger,
	}
}
