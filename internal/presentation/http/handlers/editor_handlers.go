package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pagesmith/pagesmith-go/internal/application/services"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
)

// EditorHandlers upgrades editor connections to websocket sessions.
type EditorHandlers struct {
	editorService *services.EditorService
	logger        *logging.ChanneledLogger
	upgrader      websocket.Upgrader
}

// NewEditorHandlers creates a new editor handlers instance.
func NewEditorHandlers(editorService *services.EditorService, logger *logging.ChanneledLogger) *EditorHandlers {
	return &EditorHandlers{
		editorService: editorService,
		logger:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// auth happens before the upgrade; origins were already
			// filtered by CORS on the token handshake
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// GetEditorSocket handles GET /api/v1/editor/:slug/ws.
func (h *EditorHandlers) GetEditorSocket(c *gin.Context) {
	slug := c.Param("slug")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Editor().Warn("websocket upgrade failed", "slug", slug, "error", err)
		return
	}

	if err := h.editorService.HandleSession(c.Request.Context(), conn, slug); err != nil {
		h.logger.Editor().Error("editor session failed", "slug", slug, "error", err)
	}
}
