package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/caching"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/presentation/hydration"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToConsole = false
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

// memoryProjectRepo is an in-memory ProjectRepository.
type memoryProjectRepo struct {
	bySlug map[string]*content.Project
}

func newMemoryProjectRepo() *memoryProjectRepo {
	return &memoryProjectRepo{bySlug: make(map[string]*content.Project)}
}

func (r *memoryProjectRepo) FindByID(_ context.Context, id string) (*content.Project, error) {
	for _, p := range r.bySlug {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memoryProjectRepo) FindBySlug(_ context.Context, slug string) (*content.Project, error) {
	return r.bySlug[slug], nil
}

func (r *memoryProjectRepo) Store(_ context.Context, project *content.Project) error {
	r.bySlug[project.Slug] = project
	return nil
}

func (r *memoryProjectRepo) Delete(_ context.Context, id string) error {
	for slug, p := range r.bySlug {
		if p.ID == id {
			delete(r.bySlug, slug)
		}
	}
	return nil
}

// nullQuerier satisfies ContentQuerier with empty results.
type nullQuerier struct{}

func (nullQuerier) QueryPages(context.Context, content.ListQuery) (*content.PageResult, error) {
	return &content.PageResult{}, nil
}

func (nullQuerier) QueryLinks(context.Context, content.ListQuery) (*content.LinkResult, error) {
	return &content.LinkResult{}, nil
}

func (nullQuerier) QueryContents(context.Context, content.ListQuery) (*content.ContentResult, error) {
	return &content.ContentResult{}, nil
}

const testProjectJSON = `{
	"pages": [{"id": "page-1", "frames": [
		{"type": "div", "attributes": {"id": "root"}, "components": [
			{"type": "div", "attributes": {"id": "cu", "data-widget": "count-up", "data-duration": "0", "data-end-value": "42"}}
		]}
	]}],
	"styles": []
}`

func newProjectService(t *testing.T) (*ProjectService, *memoryProjectRepo, *caching.Manager) {
	t.Helper()
	repo := newMemoryProjectRepo()
	cache := caching.NewManager()
	return NewProjectService(repo, cache, testLogger(t)), repo, cache
}

func TestProjectServiceSaveLoadRoundTrip(t *testing.T) {
	svc, repo, _ := newProjectService(t)
	ctx := context.Background()

	record, err := svc.SaveProject(ctx, "home", "Home", []byte(testProjectJSON))
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.NotNil(t, repo.bySlug["home"])

	project, err := svc.GetProject(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Len(t, project.Roots(), 1)

	// second save keeps the id and invalidates the cache
	again, err := svc.SaveProject(ctx, "home", "Home v2", []byte(testProjectJSON))
	require.NoError(t, err)
	assert.Equal(t, record.ID, again.ID)
}

func TestProjectServiceRejectsMalformedData(t *testing.T) {
	svc, _, _ := newProjectService(t)

	_, err := svc.SaveProject(context.Background(), "home", "Home", []byte(`{"pages": [`))
	assert.Error(t, err)
}

func TestProjectServiceMissingSlug(t *testing.T) {
	svc, _, _ := newProjectService(t)

	project, err := svc.GetProject(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, project)
}

func newEditorFixture(t *testing.T) (*EditorService, *hydration.Registry, *ProjectService) {
	t.Helper()
	projects, _, cache := newProjectService(t)
	_, err := projects.SaveProject(context.Background(), "home", "Home", []byte(testProjectJSON))
	require.NoError(t, err)

	registry := hydration.NewRegistry()
	editor := NewEditorService(projects, registry, nullQuerier{}, cache, testLogger(t))
	return editor, registry, projects
}

func TestEditorApplyAddWidget(t *testing.T) {
	editor, registry, projects := newEditorFixture(t)
	ctx := context.Background()

	project, err := projects.GetProject(ctx, "home")
	require.NoError(t, err)

	node := json.RawMessage(`{"type": "div", "attributes": {"id": "cu2", "data-widget": "count-up", "data-duration": "0", "data-end-value": "7"}}`)
	reply := editor.ApplyEvent(ctx, "home", project, EditorEvent{
		Type:     EventComponentAdd,
		ParentID: "root",
		Node:     node,
	})

	assert.Equal(t, "fragment", reply.Type)
	assert.Equal(t, "cu2", reply.ID)
	assert.Contains(t, reply.HTML, ">7</span>")
	assert.NotNil(t, registry.Get("cu2"))
}

func TestEditorApplyUpdateRecomputesConfig(t *testing.T) {
	editor, _, projects := newEditorFixture(t)
	ctx := context.Background()

	project, err := projects.GetProject(ctx, "home")
	require.NoError(t, err)

	node := json.RawMessage(`{"type": "div", "attributes": {"id": "cu", "data-widget": "count-up", "data-duration": "0", "data-end-value": "99"}}`)
	reply := editor.ApplyEvent(ctx, "home", project, EditorEvent{
		Type: EventComponentUpdate,
		Node: node,
	})

	assert.Equal(t, "fragment", reply.Type)
	assert.Contains(t, reply.HTML, ">99</span>")
}

func TestEditorApplyRemove(t *testing.T) {
	editor, registry, projects := newEditorFixture(t)
	ctx := context.Background()

	project, err := projects.GetProject(ctx, "home")
	require.NoError(t, err)

	reply := editor.ApplyEvent(ctx, "home", project, EditorEvent{
		Type:        EventComponentRemove,
		ComponentID: "cu",
	})
	assert.Equal(t, "removed", reply.Type)
	assert.Nil(t, registry.Get("cu"))

	// removing again reports the miss
	again := editor.ApplyEvent(ctx, "home", project, EditorEvent{
		Type:        EventComponentRemove,
		ComponentID: "cu",
	})
	assert.Equal(t, "error", again.Type)
}

func TestEditorApplyUnknownEvent(t *testing.T) {
	editor, _, projects := newEditorFixture(t)
	ctx := context.Background()

	project, err := projects.GetProject(ctx, "home")
	require.NoError(t, err)

	reply := editor.ApplyEvent(ctx, "home", project, EditorEvent{Type: "component:teleport"})
	assert.Equal(t, "error", reply.Type)
}

func TestFragmentServiceWidgetStateChanges(t *testing.T) {
	projects, _, cache := newProjectService(t)
	ctx := context.Background()
	_, err := projects.SaveProject(ctx, "home", "Home", []byte(testProjectJSON))
	require.NoError(t, err)

	registry := hydration.NewRegistry()
	render := NewRenderService(projects, nullQuerier{}, registry, cache, testLogger(t))
	_, err = render.RenderPage(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, registry.Get("cu"))

	fragments := NewFragmentService(projects, registry, nullQuerier{}, testLogger(t))
	html, err := fragments.WidgetFragment(ctx, FragmentRequest{Slug: "home", InstanceID: "cu"})
	require.NoError(t, err)
	assert.Contains(t, html, ">42</span>")

	_, err = fragments.WidgetFragment(ctx, FragmentRequest{Slug: "home", InstanceID: "ghost"})
	assert.ErrorIs(t, err, ErrInstanceNotFound)
}

func TestFragmentServiceConcurrentRequestsSerialize(t *testing.T) {
	projects, _, cache := newProjectService(t)
	ctx := context.Background()

	listProject := `{
		"pages": [{"id": "page-1", "frames": [
			{"type": "div", "attributes": {"id": "root"}, "components": [
				{"type": "div", "attributes": {"id": "pl", "data-widget": "page-list"}}
			]}
		]}],
		"styles": []
	}`
	_, err := projects.SaveProject(ctx, "home", "Home", []byte(listProject))
	require.NoError(t, err)

	registry := hydration.NewRegistry()
	render := NewRenderService(projects, nullQuerier{}, registry, cache, testLogger(t))
	_, err = render.RenderPage(ctx, "home")
	require.NoError(t, err)
	require.NotNil(t, registry.Get("pl"))

	fragments := NewFragmentService(projects, registry, nullQuerier{}, testLogger(t))

	// Overlapping requests mutate one instance's search, page, and filter
	// map at once. The instance lock must serialize them: no torn state,
	// no concurrent map writes, every request either renders or reports a
	// known error.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			search := fmt.Sprintf("query-%d", n)
			page := n + 1
			req := FragmentRequest{
				Slug:       "home",
				InstanceID: "pl",
				Search:     &search,
				Page:       &page,
				Attributes: map[string]string{"category": search},
			}
			_, err := fragments.WidgetFragment(ctx, req)
			if err != nil {
				assert.ErrorIs(t, err, hydration.ErrStaleResult)
			}
		}(i)
	}
	wg.Wait()

	// a final sequential request still renders cleanly
	html, err := fragments.WidgetFragment(ctx, FragmentRequest{Slug: "home", InstanceID: "pl"})
	require.NoError(t, err)
	assert.Contains(t, html, "list-")
}

func TestRenderServiceCachesPage(t *testing.T) {
	projects, _, cache := newProjectService(t)
	ctx := context.Background()
	_, err := projects.SaveProject(ctx, "home", "Home", []byte(testProjectJSON))
	require.NoError(t, err)

	render := NewRenderService(projects, nullQuerier{}, hydration.NewRegistry(), cache, testLogger(t))

	first, err := render.RenderPage(ctx, "home")
	require.NoError(t, err)
	assert.Contains(t, first, `data-hydrated="true"`)

	cached, ok := cache.GetHTML("home")
	require.True(t, ok)
	assert.Equal(t, first, cached)

	_, err = render.RenderPage(ctx, "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
