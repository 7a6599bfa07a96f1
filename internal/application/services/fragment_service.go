package services

import (
	"context"
	"fmt"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/presentation/hydration"
	"github.com/pagesmith/pagesmith-go/internal/presentation/templates"
)

// ErrInstanceNotFound is returned when a fragment is requested for a widget
// id that no hydration pass has registered.
var ErrInstanceNotFound = fmt.Errorf("widget instance not found")

// FragmentRequest carries the state changes a fragment request applies
// before re-rendering. Nil pointers leave the corresponding state untouched.
type FragmentRequest struct {
	Slug       string
	InstanceID string

	Page       *int
	Search     *string
	Tab        *int
	Toggle     *int
	Filter     *string
	Attributes map[string]string
}

// FragmentService re-renders single widget instances as their state changes.
// It shares the hydration renderer, so a fragment is produced exactly the
// way the widget's initial mount was.
type FragmentService struct {
	projects *ProjectService
	registry *hydration.Registry
	querier  repositories.ContentQuerier
	logger   *logging.ChanneledLogger
}

// NewFragmentService creates a fragment service.
func NewFragmentService(projects *ProjectService, registry *hydration.Registry, querier repositories.ContentQuerier, logger *logging.ChanneledLogger) *FragmentService {
	return &FragmentService{projects: projects, registry: registry, querier: querier, logger: logger}
}

// WidgetFragment applies the request's state changes to the instance and
// returns its re-rendered inner HTML. A result superseded by a newer request
// surfaces hydration.ErrStaleResult; handlers drop those silently.
func (s *FragmentService) WidgetFragment(ctx context.Context, req FragmentRequest) (string, error) {
	inst := s.registry.Get(req.InstanceID)
	if inst == nil {
		return "", ErrInstanceNotFound
	}

	renderer, err := s.rendererFor(ctx, req.Slug)
	if err != nil {
		return "", err
	}

	// Hold the instance lock across apply and render so overlapping
	// requests for the same widget serialize instead of interleaving
	// state writes.
	inst.Lock()
	defer inst.Unlock()
	s.applyState(inst, req)
	return renderer.Render(ctx, inst)
}

// NavbarSearch runs a live search against a navbar instance and returns the
// dropdown fragment.
func (s *FragmentService) NavbarSearch(ctx context.Context, slug, instanceID, query string) (string, error) {
	inst := s.registry.Get(instanceID)
	if inst == nil {
		return "", ErrInstanceNotFound
	}

	renderer, err := s.rendererFor(ctx, slug)
	if err != nil {
		return "", err
	}

	inst.Lock()
	defer inst.Unlock()
	return renderer.RenderSearch(ctx, inst, query)
}

func (s *FragmentService) applyState(inst *hydration.Instance, req FragmentRequest) {
	if inst.List != nil {
		if req.Search != nil {
			inst.List.SetSearch(*req.Search)
		}
		for key, value := range req.Attributes {
			inst.List.SetAttribute(key, value)
		}
		// page lands last so an explicit page flip survives the resets
		// the filter setters apply
		if req.Page != nil {
			inst.List.SetPage(*req.Page)
		}
	}
	if inst.Tabs != nil && req.Tab != nil {
		inst.Tabs.Select(*req.Tab)
	}
	if inst.FAQ != nil {
		if req.Toggle != nil {
			inst.FAQ.Toggle(*req.Toggle)
		}
		if req.Filter != nil {
			inst.FAQFilter = *req.Filter
		}
	}
	if inst.Kind == widgets.KindCarousel && inst.Carousel != nil && req.Page != nil {
		inst.Carousel.Goto(*req.Page)
	}
}

func (s *FragmentService) rendererFor(ctx context.Context, slug string) (*hydration.Renderer, error) {
	project, err := s.projects.GetProject(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return hydration.NewRenderer(templates.NewSynthesizer(project), s.querier, s.logger.Render()), nil
}
