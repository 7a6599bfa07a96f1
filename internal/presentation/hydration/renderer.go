package hydration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/presentation/templates"
	templatewidgets "github.com/pagesmith/pagesmith-go/internal/presentation/templates/widgets"
)

// ErrStaleResult marks a list fetch whose response arrived after a newer
// request had already been issued for the same instance. Callers drop the
// render instead of applying it.
var ErrStaleResult = fmt.Errorf("stale list result")

// Renderer produces the inner HTML for one widget instance from its current
// state. The hydration pass and the fragment endpoints share it, so a
// widget's initial render and its re-renders can never diverge.
type Renderer struct {
	synth   *templates.Synthesizer
	querier repositories.ContentQuerier
	log     *slog.Logger
}

// NewRenderer builds a renderer over one project snapshot.
func NewRenderer(synth *templates.Synthesizer, querier repositories.ContentQuerier, log *slog.Logger) *Renderer {
	return &Renderer{synth: synth, querier: querier, log: log}
}

// Render returns the instance's inner HTML. List kinds fetch their data
// here; a failed fetch renders the widget's error state rather than failing
// the render, and a response superseded by a newer request returns
// ErrStaleResult.
func (r *Renderer) Render(ctx context.Context, inst *Instance) (string, error) {
	switch inst.Kind {
	case widgets.KindCarousel:
		return templatewidgets.RenderCarousel(inst.Config.Carousel, r.synth.ChildrenHTML(inst.Node)), nil
	case widgets.KindInfiniteSlides:
		return templatewidgets.RenderInfiniteSlides(inst.Config.InfiniteSlides), nil
	case widgets.KindTabs:
		return r.renderTabs(inst), nil
	case widgets.KindCountUp:
		return templatewidgets.RenderCountUp(inst.Config.CountUp), nil
	case widgets.KindFAQ:
		return r.renderFAQ(inst), nil
	case widgets.KindPageList, widgets.KindLinkList, widgets.KindContentList:
		return r.renderList(ctx, inst)
	case widgets.KindNavbar:
		return templatewidgets.RenderNavbar(inst.Config.Navbar, strings.Join(r.synth.ChildrenHTML(inst.Node), "")), nil
	}
	return "", fmt.Errorf("unsupported widget kind %q", inst.Kind)
}

// RenderSearch runs a navbar live search and returns the dropdown fragment.
// The navbar's fixed tag set is applied on top of the visitor's query.
func (r *Renderer) RenderSearch(ctx context.Context, inst *Instance, query string) (string, error) {
	if inst.Kind != widgets.KindNavbar || inst.Config.Navbar == nil {
		return "", fmt.Errorf("instance %s is not a navbar", inst.ID)
	}
	if strings.TrimSpace(query) == "" {
		return templatewidgets.RenderSearchResults(query, nil), nil
	}

	q := content.ListQuery{
		Search: query,
		Tags:   splitTags(inst.Config.Navbar.SearchTags),
		Page:   1,
		Limit:  searchResultLimit,
	}
	seq := inst.List.NextSeq()
	result, err := r.querier.QueryContents(ctx, q)
	if !inst.List.AcceptResult(seq) {
		return "", ErrStaleResult
	}
	if err != nil {
		r.log.Error("navbar search failed", "instance", inst.ID, "error", err)
		return templatewidgets.RenderListError(), nil
	}
	return templatewidgets.RenderSearchResults(query, contentEntries(result.Contents)), nil
}

const searchResultLimit = 6

func (r *Renderer) renderTabs(inst *Instance) string {
	cfg := inst.Config.Tabs
	if cfg == nil {
		return ""
	}
	active := 0
	if inst.Tabs != nil {
		active = inst.Tabs.Active
	}
	panels := make([]string, len(cfg.Tabs))
	for i := range cfg.Tabs {
		if slot := findSlotChild(inst.Node, fmt.Sprintf("tab-%d", i)); slot != nil {
			panels[i] = r.synth.ComponentToHTML(slot)
		}
	}
	return templatewidgets.RenderTabs(cfg, active, panels)
}

func (r *Renderer) renderFAQ(inst *Instance) string {
	if inst.FAQItems == nil {
		inst.FAQItems = r.extractFAQItems(inst.Node)
	}
	return templatewidgets.RenderFAQ(inst.Config.FAQ, inst.FAQ, inst.FAQFilter, inst.FAQItems)
}

func (r *Renderer) renderList(ctx context.Context, inst *Instance) (string, error) {
	cfg := inst.Config.List
	if cfg == nil || inst.List == nil {
		return "", fmt.Errorf("instance %s has no list state", inst.ID)
	}

	q := content.ListQuery{
		Search:     inst.List.SearchQuery,
		Tags:       splitTags(cfg.Tags),
		Attributes: inst.List.DynamicAttributes,
		Page:       inst.List.CurrentPage,
		Limit:      cfg.Layout.PageSize(),
	}

	seq := inst.List.NextSeq()
	entries, total, err := r.fetchEntries(ctx, inst.Kind, q)
	if !inst.List.AcceptResult(seq) {
		return "", ErrStaleResult
	}
	if err != nil {
		r.log.Error("list fetch failed", "instance", inst.ID, "kind", inst.Kind.String(), "error", err)
		return templatewidgets.RenderListError(), nil
	}
	return templatewidgets.RenderList(cfg, inst.List, entries, total), nil
}

func (r *Renderer) fetchEntries(ctx context.Context, kind widgets.Kind, q content.ListQuery) ([]templatewidgets.ListEntry, int, error) {
	switch kind {
	case widgets.KindPageList:
		result, err := r.querier.QueryPages(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return pageEntries(result.Pages), result.Total, nil
	case widgets.KindLinkList:
		result, err := r.querier.QueryLinks(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return linkEntries(result.Links), result.Total, nil
	default:
		result, err := r.querier.QueryContents(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return contentEntries(result.Contents), result.Total, nil
	}
}

// extractFAQItems reads question/answer pairs from the widget's children. A
// child's question comes from its question attribute, falling back to its
// first text child; everything else under the child becomes the answer
// markup.
func (r *Renderer) extractFAQItems(node *builder.ComponentNode) []templatewidgets.FAQItem {
	children := node.Children()
	items := make([]templatewidgets.FAQItem, 0, len(children))
	for _, child := range children {
		eff := child.Effective()
		if eff == nil {
			continue
		}
		question := eff.Attr("question")
		answerNodes := eff.Children()
		if question == "" && len(answerNodes) > 0 {
			first := answerNodes[0].Effective()
			if first != nil && first.Type == "textnode" {
				question = first.Content
				answerNodes = answerNodes[1:]
			}
		}
		if question == "" {
			continue
		}
		var answer strings.Builder
		for _, a := range answerNodes {
			answer.WriteString(r.synth.ComponentToHTML(a))
		}
		items = append(items, templatewidgets.FAQItem{Question: question, Answer: answer.String()})
	}
	return items
}

func findSlotChild(node *builder.ComponentNode, slot string) *builder.ComponentNode {
	for _, child := range node.Children() {
		if eff := child.Effective(); eff != nil && eff.Attr("slot") == slot {
			return child
		}
	}
	return nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func pageEntries(pages []content.PageItem) []templatewidgets.ListEntry {
	entries := make([]templatewidgets.ListEntry, 0, len(pages))
	for _, p := range pages {
		entries = append(entries, templatewidgets.ListEntry{
			ID:          p.ID,
			Title:       p.Title,
			Target:      "/p/" + p.Slug,
			Banner:      p.MetaImage,
			Description: p.MetaDescription,
			CreatedAt:   p.CreatedAt,
		})
	}
	return entries
}

func linkEntries(links []content.LinkItem) []templatewidgets.ListEntry {
	entries := make([]templatewidgets.ListEntry, 0, len(links))
	for _, l := range links {
		entries = append(entries, templatewidgets.ListEntry{
			ID:          l.ID,
			Title:       l.Title,
			Target:      l.Target,
			Banner:      l.Banner,
			Description: l.Descriptions,
			CreatedAt:   l.CreatedAt,
		})
	}
	return entries
}

func contentEntries(contents []content.ContentItem) []templatewidgets.ListEntry {
	entries := make([]templatewidgets.ListEntry, 0, len(contents))
	for _, c := range contents {
		entries = append(entries, templatewidgets.ListEntry{
			ID:          c.ID,
			Title:       c.Title,
			Target:      c.Target,
			Banner:      c.Banner,
			Description: c.Descriptions,
			CreatedAt:   c.CreatedAt,
		})
	}
	return entries
}
