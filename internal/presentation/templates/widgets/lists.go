package widgets

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// ListEntry is the layout-agnostic view of one list row. Page, link, and
// mixed content results all flatten to this before rendering.
type ListEntry struct {
	ID          string
	Title       string
	Target      string
	Banner      string
	Description string
	CreatedAt   time.Time
}

// RenderListLoading is shown while the initial fetch for a list widget is in
// flight.
func RenderListLoading() string {
	return `<p class="list-loading">Loading&hellip;</p>`
}

// RenderListError replaces a list's body when its fetch failed. The message
// is intentionally generic; details go to the render log, not the page.
func RenderListError() string {
	return `<p class="list-error" style="color:red">Could not load content.</p>`
}

func renderListEmpty() string {
	return `<p class="list-empty" style="font-style:italic">No results found.</p>`
}

// RenderList emits a complete list widget body: filter controls, the entries
// in the configured layout, and pagination. state supplies the current page,
// search text, and dynamic attribute filters so re-renders reflect what the
// visitor already typed.
func RenderList(cfg *widgets.ListConfig, state *widgets.ListState, entries []ListEntry, total int) string {
	if cfg == nil {
		return ""
	}

	var b strings.Builder

	writeListControls(&b, cfg, state)

	if len(entries) == 0 {
		b.WriteString(renderListEmpty())
		return b.String()
	}

	switch cfg.Layout {
	case widgets.LayoutNews:
		writeNewsLayout(&b, entries)
	case widgets.LayoutGrid:
		writeGridLayout(&b, entries)
	default:
		writeListLayout(&b, entries)
	}

	if cfg.ShowPagination {
		writePagination(&b, state, total, cfg.Layout.PageSize())
	}

	return b.String()
}

func writeListControls(b *strings.Builder, cfg *widgets.ListConfig, state *widgets.ListState) {
	if !cfg.ShowSearch && len(cfg.FilterAttributeKeys) == 0 {
		return
	}
	b.WriteString(`<div class="list-controls">`)
	if cfg.ShowSearch {
		search := ""
		if state != nil {
			search = state.SearchQuery
		}
		fmt.Fprintf(b, `<input class="list-search" type="text" placeholder="Search" value="%s">`,
			html.EscapeString(search))
	}
	for _, key := range cfg.FilterAttributeKeys {
		value := ""
		if state != nil {
			value = state.DynamicAttributes[key]
		}
		fmt.Fprintf(b, `<input class="list-filter" type="text" data-attribute="%s" placeholder="%s" value="%s">`,
			html.EscapeString(key), html.EscapeString(key), html.EscapeString(value))
	}
	b.WriteString(`</div>`)
}

// News layout: the first entry renders as a full-width hero, the remainder
// as a secondary column.
func writeNewsLayout(b *strings.Builder, entries []ListEntry) {
	b.WriteString(`<div class="list-news">`)
	writeEntry(b, entries[0], "list-hero")
	if len(entries) > 1 {
		b.WriteString(`<div class="list-secondary">`)
		for _, e := range entries[1:] {
			writeEntry(b, e, "list-card")
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

func writeListLayout(b *strings.Builder, entries []ListEntry) {
	b.WriteString(`<div class="list-rows">`)
	for _, e := range entries {
		writeEntry(b, e, "list-row")
	}
	b.WriteString(`</div>`)
}

func writeGridLayout(b *strings.Builder, entries []ListEntry) {
	b.WriteString(`<div class="list-grid">`)
	for _, e := range entries {
		writeEntry(b, e, "list-cell")
	}
	b.WriteString(`</div>`)
}

func writeEntry(b *strings.Builder, e ListEntry, class string) {
	fmt.Fprintf(b, `<a class="%s" href="%s">`, class, html.EscapeString(e.Target))
	if e.Banner != "" {
		fmt.Fprintf(b, `<img class="list-banner" src="%s" alt="">`, html.EscapeString(e.Banner))
	}
	fmt.Fprintf(b, `<h3 class="list-title">%s</h3>`, html.EscapeString(e.Title))
	if e.Description != "" {
		fmt.Fprintf(b, `<p class="list-description">%s</p>`, html.EscapeString(e.Description))
	}
	if !e.CreatedAt.IsZero() {
		fmt.Fprintf(b, `<time class="list-date" datetime="%s">%s</time>`,
			e.CreatedAt.Format(time.RFC3339), e.CreatedAt.Format("Jan 2, 2006"))
	}
	b.WriteString(`</a>`)
}

func writePagination(b *strings.Builder, state *widgets.ListState, total, pageSize int) {
	pages := widgets.TotalPages(total, pageSize)
	if pages <= 1 {
		return
	}
	current := 1
	if state != nil {
		current = state.CurrentPage
	}
	b.WriteString(`<div class="list-pagination">`)
	for p := 1; p <= pages; p++ {
		class := "list-page"
		if p == current {
			class += " active"
		}
		fmt.Fprintf(b, `<button class="%s" data-page="%d">%d</button>`, class, p, p)
	}
	b.WriteString(`</div>`)
}
