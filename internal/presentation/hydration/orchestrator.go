package hydration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/presentation/templates"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// hydrationOrder fixes the sequence widget kinds are mounted in. Tab panels
// go first so widgets nested inside them exist before their own mount runs;
// the navbar goes last so its wrapping never disturbs a widget mounted
// earlier in the same pass.
var hydrationOrder = []widgets.Kind{
	widgets.KindTabs,
	widgets.KindCarousel,
	widgets.KindInfiniteSlides,
	widgets.KindCountUp,
	widgets.KindFAQ,
	widgets.KindLinkList,
	widgets.KindPageList,
	widgets.KindContentList,
	widgets.KindNavbar,
}

// Orchestrator runs the hydration pass over rendered documents. Each marked
// element is resolved, configured, rendered, and registered independently;
// one widget failing leaves the rest of the page hydrated.
type Orchestrator struct {
	querier  repositories.ContentQuerier
	registry *Registry
	log      *slog.Logger
}

// NewOrchestrator creates an orchestrator that records instances in the
// given registry.
func NewOrchestrator(querier repositories.ContentQuerier, registry *Registry, log *slog.Logger) *Orchestrator {
	return &Orchestrator{querier: querier, registry: registry, log: log}
}

// Registry exposes the instance registry the orchestrator populates.
func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// Hydrate scans doc for widget markers, mounts each one in the fixed kind
// order, and returns the hydrated document. Elements already carrying the
// hydrated marker are left untouched, so running the pass twice over its own
// output is a no-op. The output is normalized to a full HTML document.
func (o *Orchestrator) Hydrate(ctx context.Context, doc string, project *builder.ProjectData) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	for _, el := range collectMarked(root, widgets.KindUnknown) {
		o.log.Warn("unknown widget marker", "marker", attrValue(el, widgets.MarkerAttribute), "id", attrValue(el, "id"))
	}

	// Re-scan per kind: mounting a tab panel materializes its slot
	// content, and any widgets nested there must be visible to the later
	// kinds of the same pass.
	renderer := NewRenderer(templates.NewSynthesizer(project), o.querier, o.log)
	for _, kind := range hydrationOrder {
		for _, el := range collectMarked(root, kind) {
			o.hydrateOne(ctx, renderer, project, kind, el)
		}
	}

	var out strings.Builder
	if err := html.Render(&out, root); err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return out.String(), nil
}

// hydrateOne mounts a single element. Every failure path logs and returns;
// a panic inside a mount is contained the same way.
func (o *Orchestrator) hydrateOne(ctx context.Context, renderer *Renderer, project *builder.ProjectData, kind widgets.Kind, el *html.Node) {
	id := attrValue(el, "id")
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("widget mount panicked", "id", id, "kind", kind.String(), "panic", r)
		}
	}()

	if id == "" {
		o.log.Warn("widget marker without id", "kind", kind.String())
		return
	}

	node := builder.FindComponentByIDDepth(project.Roots(), id, config.MaxTreeDepth)
	if node == nil {
		o.log.Warn("no component for widget element", "id", id, "kind", kind.String())
		return
	}

	cfg, err := widgets.ComputeConfig(node)
	if err != nil {
		o.log.Error("widget config rejected", "id", id, "kind", kind.String(), "error", err)
		return
	}

	inst := NewInstance(id, node, cfg)
	inner, err := renderer.Render(ctx, inst)
	if err != nil {
		o.log.Error("widget render failed", "id", id, "kind", kind.String(), "error", err)
		return
	}

	if err := setInnerHTML(el, inner); err != nil {
		o.log.Error("widget DOM replace failed", "id", id, "kind", kind.String(), "error", err)
		return
	}
	setAttr(el, widgets.HydratedAttribute, "true")
	o.registry.Register(inst)
}

// collectMarked returns the unhydrated marker-bearing elements of the given
// kind in document order. A matched element's subtree is not descended into,
// since its content is about to be replaced; already hydrated elements are
// descended into, which is how widgets nested in mounted tab panels are
// found.
func collectMarked(root *html.Node, kind widgets.Kind) []*html.Node {
	var found []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			marker := attrValue(n, widgets.MarkerAttribute)
			if marker != "" && attrValue(n, widgets.HydratedAttribute) == "" &&
				widgets.KindFromMarker(marker) == kind {
				found = append(found, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// setInnerHTML replaces an element's children with the parsed fragment.
func setInnerHTML(el *html.Node, fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), el)
	if err != nil {
		return fmt.Errorf("parse fragment: %w", err)
	}
	for el.FirstChild != nil {
		el.RemoveChild(el.FirstChild)
	}
	for _, n := range nodes {
		el.AppendChild(n)
	}
	return nil
}
