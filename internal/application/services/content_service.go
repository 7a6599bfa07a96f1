package services

import (
	"context"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// maxListLimit caps the page size any caller can request.
const maxListLimit = 50

// ContentService fronts the list queries for the JSON API, normalizing
// pagination before they reach the repository layer.
type ContentService struct {
	querier repositories.ContentQuerier
	logger  *logging.ChanneledLogger
}

// NewContentService creates a content service.
func NewContentService(querier repositories.ContentQuerier, logger *logging.ChanneledLogger) *ContentService {
	return &ContentService{querier: querier, logger: logger}
}

// ListPages returns a filtered page listing.
func (s *ContentService) ListPages(ctx context.Context, q content.ListQuery) (*content.PageResult, error) {
	return s.querier.QueryPages(ctx, clampQuery(q))
}

// ListLinks returns a filtered link listing.
func (s *ContentService) ListLinks(ctx context.Context, q content.ListQuery) (*content.LinkResult, error) {
	return s.querier.QueryLinks(ctx, clampQuery(q))
}

// ListContents returns the merged pages-and-links feed.
func (s *ContentService) ListContents(ctx context.Context, q content.ListQuery) (*content.ContentResult, error) {
	return s.querier.QueryContents(ctx, clampQuery(q))
}

func clampQuery(q content.ListQuery) content.ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = config.WidgetFetchLimit
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	return q
}
