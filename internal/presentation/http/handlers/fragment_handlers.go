// Package handlers holds the gin HTTP handlers: thin wrappers that parse
// requests and delegate to the application services.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/application/services"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/presentation/hydration"
)

// FragmentHandlers serves the widget fragment endpoints.
type FragmentHandlers struct {
	fragmentService *services.FragmentService
	logger          *logging.ChanneledLogger
}

// NewFragmentHandlers creates a new fragment handlers instance.
func NewFragmentHandlers(fragmentService *services.FragmentService, logger *logging.ChanneledLogger) *FragmentHandlers {
	return &FragmentHandlers{
		fragmentService: fragmentService,
		logger:          logger,
	}
}

// GetWidgetFragment handles GET /api/v1/fragments/widgets/:id.
// Query parameters mutate the instance before the re-render: page, search,
// tab, toggle, filter, and attributes[key]=value pairs. slug names the page
// the widget was hydrated on.
func (h *FragmentHandlers) GetWidgetFragment(c *gin.Context) {
	instanceID := c.Param("id")
	if instanceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	req := services.FragmentRequest{
		Slug:       c.DefaultQuery("slug", "home"),
		InstanceID: instanceID,
		Attributes: attributeParams(c),
	}
	if v, ok := intParam(c, "page"); ok {
		req.Page = &v
	}
	if v, ok := c.GetQuery("search"); ok {
		req.Search = &v
	}
	if v, ok := intParam(c, "tab"); ok {
		req.Tab = &v
	}
	if v, ok := intParam(c, "toggle"); ok {
		req.Toggle = &v
	}
	if v, ok := c.GetQuery("filter"); ok {
		req.Filter = &v
	}

	html, err := h.fragmentService.WidgetFragment(c.Request.Context(), req)
	if err != nil {
		h.writeFragmentError(c, instanceID, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetNavbarSearch handles GET /api/v1/fragments/widgets/:id/search.
func (h *FragmentHandlers) GetNavbarSearch(c *gin.Context) {
	instanceID := c.Param("id")
	slug := c.DefaultQuery("slug", "home")
	query := c.Query("q")

	html, err := h.fragmentService.NavbarSearch(c.Request.Context(), slug, instanceID, query)
	if err != nil {
		h.writeFragmentError(c, instanceID, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *FragmentHandlers) writeFragmentError(c *gin.Context, instanceID string, err error) {
	switch {
	case errors.Is(err, hydration.ErrStaleResult):
		// superseded by a newer request; nothing for this caller
		c.Status(http.StatusNoContent)
	case errors.Is(err, services.ErrInstanceNotFound), errors.Is(err, services.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Render().Error("fragment request failed", "instance", instanceID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fragment render failed"})
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// attributeParams collects attributes[key]=value query parameters.
func attributeParams(c *gin.Context) map[string]string {
	var attrs map[string]string
	for key, values := range c.Request.URL.Query() {
		if !strings.HasPrefix(key, "attributes[") || !strings.HasSuffix(key, "]") {
			continue
		}
		name := key[len("attributes[") : len(key)-1]
		if name == "" || len(values) == 0 {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[name] = values[0]
	}
	return attrs
}
