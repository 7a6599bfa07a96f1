package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/application/services"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
)

// ProjectHandlers serves project document CRUD plus the public page render.
type ProjectHandlers struct {
	projectService *services.ProjectService
	renderService  *services.RenderService
	logger         *logging.ChanneledLogger
}

// NewProjectHandlers creates a new project handlers instance.
func NewProjectHandlers(projectService *services.ProjectService, renderService *services.RenderService, logger *logging.ChanneledLogger) *ProjectHandlers {
	return &ProjectHandlers{projectService: projectService, renderService: renderService, logger: logger}
}

// GetPage handles GET /p/:slug, the public hydrated page render.
func (h *ProjectHandlers) GetPage(c *gin.Context) {
	slug := c.Param("slug")

	html, err := h.renderService.RenderPage(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>Not Found</h1>"))
			return
		}
		h.logger.Render().Error("page render failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PostPageFragment handles POST /api/v1/fragments/pages/:slug, forcing a
// fresh synthesize-and-hydrate pass and returning the full document.
func (h *ProjectHandlers) PostPageFragment(c *gin.Context) {
	slug := c.Param("slug")

	html, err := h.renderService.RerenderPage(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Render().Error("page rerender failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

type saveProjectRequest struct {
	Title string          `json:"title"`
	Data  json.RawMessage `json:"data" binding:"required"`
}

// PutProject handles PUT /api/v1/projects/:slug.
func (h *ProjectHandlers) PutProject(c *gin.Context) {
	slug := c.Param("slug")

	var req saveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project data is required"})
		return
	}

	record, err := h.projectService.SaveProject(c.Request.Context(), slug, req.Title, req.Data)
	if err != nil {
		h.logger.Content().Error("project save failed", "slug", slug, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetProject handles GET /api/v1/projects/:slug, returning the raw document.
func (h *ProjectHandlers) GetProject(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.projectService.GetProject(c.Request.Context(), slug)
	if err != nil {
		h.logger.Content().Error("project load failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/v1/projects/:slug.
func (h *ProjectHandlers) DeleteProject(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.projectService.DeleteProject(c.Request.Context(), slug); err != nil {
		h.logger.Content().Error("project delete failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.Status(http.StatusNoContent)
}
