package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/application/services"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
)

// FormHandlers serves the public form submission endpoint.
type FormHandlers struct {
	formService *services.FormService
	logger      *logging.ChanneledLogger
}

// NewFormHandlers creates a new form handlers instance.
func NewFormHandlers(formService *services.FormService, logger *logging.ChanneledLogger) *FormHandlers {
	return &FormHandlers{formService: formService, logger: logger}
}

type formSubmissionRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// PostSubmission handles POST /api/v1/forms/:id/submissions.
func (h *FormHandlers) PostSubmission(c *gin.Context) {
	formID := c.Param("id")

	var req formSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fields are required"})
		return
	}

	submission, err := h.formService.Submit(c.Request.Context(), formID, req.Fields)
	if err != nil {
		h.logger.Content().Error("form submission failed", "form", formID, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": submission.ID})
}
