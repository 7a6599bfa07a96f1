// Package hydration turns statically synthesized pages into live widget
// instances. It scans rendered HTML for widget markers, resolves each marked
// element back to its component node, computes the widget config, renders
// the initial widget DOM, and records the instance so fragment endpoints can
// re-render it as its state changes.
package hydration

import (
	"sort"
	"sync"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
	templatewidgets "github.com/pagesmith/pagesmith-go/internal/presentation/templates/widgets"
)

// Instance is one live widget on a rendered page. Exactly one of the state
// pointers is set, matching the kind.
//
// The state fields are not safe for bare concurrent access: callers that
// mutate or render an instance outside the hydration pass must hold its lock
// for the whole apply-then-render span, so overlapping fragment requests
// serialize per instance.
type Instance struct {
	mu sync.Mutex

	ID     string
	Kind   widgets.Kind
	Node   *builder.ComponentNode
	Config widgets.Config

	Carousel *widgets.Carousel
	Tabs     *widgets.TabSet
	List     *widgets.ListState
	FAQ      *widgets.FAQState

	// FAQ keeps its extracted items and current filter so re-renders do
	// not have to walk the component tree again.
	FAQItems  []templatewidgets.FAQItem
	FAQFilter string
}

// Lock takes the instance's state lock.
func (i *Instance) Lock() { i.mu.Lock() }

// Unlock releases the instance's state lock.
func (i *Instance) Unlock() { i.mu.Unlock() }

// NewInstance builds an instance with fresh state for the config's kind.
func NewInstance(id string, node *builder.ComponentNode, cfg widgets.Config) *Instance {
	inst := &Instance{ID: id, Kind: cfg.Kind, Node: node, Config: cfg}
	switch cfg.Kind {
	case widgets.KindCarousel:
		inst.Carousel = widgets.NewCarousel(len(node.Children()))
	case widgets.KindTabs:
		count := 0
		if cfg.Tabs != nil {
			count = len(cfg.Tabs.Tabs)
		}
		inst.Tabs = widgets.NewTabSet(count)
	case widgets.KindPageList, widgets.KindLinkList, widgets.KindContentList, widgets.KindNavbar:
		inst.List = widgets.NewListState()
	case widgets.KindFAQ:
		inst.FAQ = widgets.NewFAQState()
	}
	return inst
}

// Registry tracks the live widget instances of a rendering session. It is
// safe for concurrent use; fragment requests and editor events both hit it.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
}

// NewRegistry creates an empty instance registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]*Instance)}
}

// Register records an instance, replacing any prior instance with the same
// id. Replacement is what makes repeated hydration of the same component, as
// the editor rebuilds it, idempotent at the registry level.
func (r *Registry) Register(inst *Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[inst.ID] = inst
}

// Get returns the instance with the given id, or nil.
func (r *Registry) Get(id string) *Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.instances[id]
}

// Remove unregisters an instance. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, id)
}

// Clear drops every instance. Called when a page is re-rendered from
// scratch.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances = make(map[string]*Instance)
}

// IDs returns the registered instance ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.instances))
	for id := range r.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
