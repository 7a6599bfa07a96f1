// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/application/container"
	"github.com/pagesmith/pagesmith-go/internal/presentation/http/handlers"
	"github.com/pagesmith/pagesmith-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(c *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(c.AuthService, c.Logger)
	contentHandlers := handlers.NewContentHandlers(c.ContentService, c.Logger)
	fragmentHandlers := handlers.NewFragmentHandlers(c.FragmentService, c.Logger)
	projectHandlers := handlers.NewProjectHandlers(c.ProjectService, c.RenderService, c.Logger)
	editorHandlers := handlers.NewEditorHandlers(c.EditorService, c.Logger)
	formHandlers := handlers.NewFormHandlers(c.FormService, c.Logger)

	requireAuth := middleware.AuthMiddleware(c.AuthService)
	rateLimited := middleware.RateLimitMiddleware(c.RateLimit)

	// Public page render
	r.GET("/p/:slug", projectHandlers.GetPage)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", rateLimited, authHandlers.PostLogin)

		// Content list endpoints backing the list widgets
		api.GET("/pages", contentHandlers.GetPages)
		api.GET("/links", contentHandlers.GetLinks)
		api.GET("/contents", contentHandlers.GetContents)

		// Widget fragment re-render endpoints
		fragments := api.Group("/fragments")
		{
			fragments.GET("/widgets/:id", fragmentHandlers.GetWidgetFragment)
			fragments.GET("/widgets/:id/search", fragmentHandlers.GetNavbarSearch)
			fragments.POST("/pages/:slug", projectHandlers.PostPageFragment)
		}

		// Form submissions
		api.POST("/forms/:id/submissions", rateLimited, formHandlers.PostSubmission)

		// Project documents (admin)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("/:slug", projectHandlers.GetProject)
			projects.PUT("/:slug", projectHandlers.PutProject)
			projects.DELETE("/:slug", projectHandlers.DeleteProject)
		}

		// Editor websocket (admin)
		editor := api.Group("/editor")
		editor.Use(requireAuth)
		{
			editor.GET("/:slug/ws", editorHandlers.GetEditorSocket)
		}
	}

	// Health check
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
