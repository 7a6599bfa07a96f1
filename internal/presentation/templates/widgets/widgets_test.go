package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

func TestRenderCarousel(t *testing.T) {
	cfg := &widgets.CarouselConfig{
		Animation:      widgets.AnimationSlide,
		ShowIndicators: true,
		NavButtons:     widgets.NavAlways,
	}
	out := RenderCarousel(cfg, []string{"<p>one</p>", "<p>two</p>", "<p>three</p>"})

	assert.Equal(t, 3, strings.Count(out, "carousel-slide"))
	assert.Equal(t, 3, strings.Count(out, "carousel-dot"))
	assert.Contains(t, out, `data-index="0" style="transform:translateX(0%)"`)
	assert.Contains(t, out, "carousel-prev")
	assert.Contains(t, out, "carousel-next")
}

func TestRenderCarouselSingleSlideNoChrome(t *testing.T) {
	cfg := &widgets.CarouselConfig{ShowIndicators: true, NavButtons: widgets.NavHover}
	out := RenderCarousel(cfg, []string{"<p>only</p>"})

	assert.NotContains(t, out, "carousel-dot")
	assert.NotContains(t, out, "carousel-nav")
}

func TestRenderTabs(t *testing.T) {
	cfg := &widgets.TabsConfig{Tabs: []widgets.TabDef{{Label: "First"}, {Label: "Second"}}}
	out := RenderTabs(cfg, 0, []string{"<p>alpha</p>", ""})

	assert.Contains(t, out, `aria-selected="true" data-tab="0">First<`)
	assert.Contains(t, out, `aria-selected="false" data-tab="1">Second<`)
	assert.Contains(t, out, `data-tab="0" style="display:block"><p>alpha</p>`)
	assert.Contains(t, out, "tabs-placeholder")
	// exactly one panel visible
	assert.Equal(t, 1, strings.Count(out, "display:block"))
}

func TestRenderCountUp(t *testing.T) {
	animated := RenderCountUp(&widgets.CountUpConfig{EndValue: 12345, Duration: 2000})
	assert.Contains(t, animated, `data-end-value="12345"`)
	assert.Contains(t, animated, ">0</span>")

	instant := RenderCountUp(&widgets.CountUpConfig{EndValue: 12345, Duration: 0})
	assert.Contains(t, instant, ">12,345</span>")
}

func TestRenderListLayouts(t *testing.T) {
	entries := []ListEntry{
		{Title: "A", Target: "/p/a"},
		{Title: "B", Target: "/p/b"},
		{Title: "C", Target: "/p/c"},
	}

	news := RenderList(&widgets.ListConfig{Layout: widgets.LayoutNews}, nil, entries, 3)
	assert.Contains(t, news, "list-hero")
	assert.Equal(t, 2, strings.Count(news, "list-card"))

	grid := RenderList(&widgets.ListConfig{Layout: widgets.LayoutGrid}, nil, entries, 3)
	assert.Equal(t, 3, strings.Count(grid, "list-cell"))

	rows := RenderList(&widgets.ListConfig{Layout: widgets.LayoutList}, nil, entries, 3)
	assert.Equal(t, 3, strings.Count(rows, "list-row"))
}

func TestRenderListEmptyAndControls(t *testing.T) {
	cfg := &widgets.ListConfig{
		Layout:              widgets.LayoutList,
		ShowSearch:          true,
		FilterAttributeKeys: []string{"region"},
	}
	state := widgets.NewListState()
	state.SetSearch("golang")
	state.SetAttribute("region", "emea")

	out := RenderList(cfg, state, nil, 0)
	assert.Contains(t, out, "list-empty")
	assert.Contains(t, out, `value="golang"`)
	assert.Contains(t, out, `data-attribute="region"`)
	assert.Contains(t, out, `value="emea"`)
}

func TestRenderListPagination(t *testing.T) {
	cfg := &widgets.ListConfig{Layout: widgets.LayoutGrid, ShowPagination: true}
	state := widgets.NewListState()
	state.SetPage(4)

	entries := make([]ListEntry, 5)
	for i := range entries {
		entries[i] = ListEntry{Title: "x", Target: "/p/x"}
	}
	out := RenderList(cfg, state, entries, 23)

	// 23 items at 6 per page is 4 pages
	require.Equal(t, 4, strings.Count(out, "list-page"))
	assert.Contains(t, out, `class="list-page active" data-page="4"`)
}

func TestRenderNavbarSearch(t *testing.T) {
	out := RenderNavbar(&widgets.NavbarConfig{SearchTags: "docs,public"}, "<ul><li>Home</li></ul>")
	assert.Contains(t, out, `data-search-tags="docs,public"`)
	assert.Contains(t, out, "navbar-burger")
	assert.Contains(t, out, "<ul><li>Home</li></ul>")

	assert.Empty(t, RenderSearchResults("  ", nil))
	assert.Contains(t, RenderSearchResults("q", nil), "No results found")
	hits := RenderSearchResults("q", []ListEntry{{Title: "Hit", Target: "/p/hit"}})
	assert.Contains(t, hits, `href="/p/hit">Hit</a>`)
}

func TestRenderFAQ(t *testing.T) {
	items := []FAQItem{
		{Question: "How do I deploy?", Answer: "<p>Push to main.</p>"},
		{Question: "What about billing?", Answer: "<p>Monthly.</p>"},
	}
	state := widgets.NewFAQState()
	state.Toggle(1)

	out := RenderFAQ(&widgets.FAQConfig{ShowFilter: true}, state, "", items)
	assert.Contains(t, out, "faq-filter")
	assert.Contains(t, out, `data-index="0"`)
	assert.Contains(t, out, `data-index="1"`)
	assert.Equal(t, 1, strings.Count(out, "display:block"))

	// filter keeps original indices on the survivors
	filtered := RenderFAQ(&widgets.FAQConfig{}, state, "billing", items)
	assert.NotContains(t, filtered, "How do I deploy")
	assert.Contains(t, filtered, `data-index="1"`)
}

func TestFAQFilterMatchesAnswerText(t *testing.T) {
	items := []FAQItem{
		{Question: "How do I deploy?", Answer: "<p>Push to main.</p>"},
		{Question: "What about billing?", Answer: "<p>Monthly.</p>"},
	}

	// "main" appears only in the first answer's text
	out := RenderFAQ(&widgets.FAQConfig{}, widgets.NewFAQState(), "main", items)
	assert.Contains(t, out, "How do I deploy")
	assert.NotContains(t, out, "What about billing")

	// markup never matches: every answer is wrapped in <p> tags
	none := RenderFAQ(&widgets.FAQConfig{}, widgets.NewFAQState(), "<p>", items)
	assert.NotContains(t, none, "faq-item")
}
