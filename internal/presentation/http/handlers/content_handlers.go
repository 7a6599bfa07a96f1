package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/application/services"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
)

// ContentHandlers serves the JSON list endpoints for pages, links, and the
// merged content feed.
type ContentHandlers struct {
	contentService *services.ContentService
	logger         *logging.ChanneledLogger
}

// NewContentHandlers creates a new content handlers instance.
func NewContentHandlers(contentService *services.ContentService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{contentService: contentService, logger: logger}
}

// GetPages handles GET /api/v1/pages.
func (h *ContentHandlers) GetPages(c *gin.Context) {
	result, err := h.contentService.ListPages(c.Request.Context(), listQuery(c))
	if err != nil {
		h.logger.Content().Error("page listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLinks handles GET /api/v1/links.
func (h *ContentHandlers) GetLinks(c *gin.Context) {
	result, err := h.contentService.ListLinks(c.Request.Context(), listQuery(c))
	if err != nil {
		h.logger.Content().Error("link listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetContents handles GET /api/v1/contents.
func (h *ContentHandlers) GetContents(c *gin.Context) {
	result, err := h.contentService.ListContents(c.Request.Context(), listQuery(c))
	if err != nil {
		h.logger.Content().Error("content listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// listQuery decodes the shared filter parameters: search, tags (comma
// separated, matched with AND semantics), attributes[key]=value, page, and
// limit.
func listQuery(c *gin.Context) content.ListQuery {
	q := content.ListQuery{
		Search:     c.Query("search"),
		Attributes: attributeParams(c),
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				q.Tags = append(q.Tags, t)
			}
		}
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return q
}
