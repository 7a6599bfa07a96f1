package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/email"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// FormService stores public form submissions and sends the notification
// email. Email failure never fails the submission.
type FormService struct {
	repo   repositories.FormRepository
	mailer email.Service
	logger *logging.ChanneledLogger
}

// NewFormService creates a form service. mailer may be nil when email is not
// configured.
func NewFormService(repo repositories.FormRepository, mailer email.Service, logger *logging.ChanneledLogger) *FormService {
	return &FormService{repo: repo, mailer: mailer, logger: logger}
}

// Submit persists a submission and notifies the configured address.
func (s *FormService) Submit(ctx context.Context, formID string, fields map[string]string) (*content.FormSubmission, error) {
	if formID == "" {
		return nil, fmt.Errorf("form id required")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("submission carries no fields")
	}

	submission := &content.FormSubmission{
		ID:        security.GenerateULID(),
		FormID:    formID,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.StoreSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}
	s.logger.Content().Info("form submission stored", "form", formID, "id", submission.ID)

	if s.mailer != nil && config.FormNotifyTo != "" {
		if err := s.mailer.SendFormSubmissionEmail(config.FormNotifyTo, formID, fields); err != nil {
			s.logger.Email().Error("submission notification failed", "form", formID, "error", err)
		}
	}
	return submission, nil
}
