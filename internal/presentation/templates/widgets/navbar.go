package widgets

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// RenderNavbar wraps the existing navbar markup with the live-search
// machinery: the search input moves inside a positioned container that also
// holds the results dropdown, and a burger button toggles the menu on small
// screens. inner is the navbar's synthesized child markup.
func RenderNavbar(cfg *widgets.NavbarConfig, inner string) string {
	if cfg == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(`<nav class="navbar">`)
	b.WriteString(`<button class="navbar-burger" aria-label="Toggle menu"><span></span><span></span><span></span></button>`)
	fmt.Fprintf(&b, `<div class="navbar-menu">%s</div>`, inner)
	b.WriteString(`<div class="navbar-search">`)
	fmt.Fprintf(&b, `<input class="navbar-search-input" type="text" placeholder="Search" data-search-tags="%s">`,
		html.EscapeString(cfg.SearchTags))
	b.WriteString(`<div class="navbar-search-results" style="display:none"></div>`)
	b.WriteString(`</div>`)
	b.WriteString(`</nav>`)

	return b.String()
}

// RenderSearchResults emits the dropdown body for a navbar search query. An
// empty query collapses the dropdown; a query with no hits says so.
func RenderSearchResults(query string, entries []ListEntry) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	if len(entries) == 0 {
		return `<p class="navbar-search-empty" style="font-style:italic">No results found.</p>`
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, `<a class="navbar-search-hit" href="%s">%s</a>`,
			html.EscapeString(e.Target), html.EscapeString(e.Title))
	}
	return b.String()
}
