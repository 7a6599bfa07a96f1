package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
)

func widgetNode(marker string, attrs map[string]string, props map[string]any) *builder.ComponentNode {
	attributes := builder.AttrMap{"id": "w1", MarkerAttribute: marker}
	for k, v := range attrs {
		attributes[k] = v
	}
	return &builder.ComponentNode{
		Type:       "div",
		Attributes: attributes,
		Props:      props,
	}
}

func TestComputeConfigCarouselDefaults(t *testing.T) {
	cfg, err := ComputeConfig(widgetNode("carousel", nil, nil))
	require.NoError(t, err)
	require.NotNil(t, cfg.Carousel)

	assert.Equal(t, KindCarousel, cfg.Kind)
	assert.False(t, cfg.Carousel.Autoplay)
	assert.Equal(t, 3000, cfg.Carousel.Interval)
	assert.Equal(t, AnimationSlide, cfg.Carousel.Animation)
	assert.True(t, cfg.Carousel.ShowIndicators)
	assert.Equal(t, NavHover, cfg.Carousel.NavButtons)
	assert.True(t, cfg.Carousel.PauseOnHover)
	assert.False(t, cfg.Carousel.ZoomOnHover)
}

func TestComputeConfigAttributesWinOverTraits(t *testing.T) {
	node := widgetNode("carousel",
		map[string]string{"data-autoplay": "true", "data-interval": "1500"},
		map[string]any{"autoplay": false, "interval": float64(9000)},
	)

	cfg, err := ComputeConfig(node)
	require.NoError(t, err)
	assert.True(t, cfg.Carousel.Autoplay)
	assert.Equal(t, 1500, cfg.Carousel.Interval)
}

func TestComputeConfigTraitFallback(t *testing.T) {
	node := widgetNode("count-up", nil, map[string]any{
		"endValue": float64(750),
		"duration": float64(1200),
	})

	cfg, err := ComputeConfig(node)
	require.NoError(t, err)
	require.NotNil(t, cfg.CountUp)
	assert.Equal(t, 750, cfg.CountUp.EndValue)
	assert.Equal(t, 1200, cfg.CountUp.Duration)
}

func TestComputeConfigListLayouts(t *testing.T) {
	node := widgetNode("page-list", map[string]string{
		"data-layout":                "grid",
		"data-show-search":           "true",
		"data-tags":                  "news,featured",
		"data-filter-attribute-keys": "region, author",
	}, nil)

	cfg, err := ComputeConfig(node)
	require.NoError(t, err)
	require.NotNil(t, cfg.List)

	assert.Equal(t, LayoutGrid, cfg.List.Layout)
	assert.Equal(t, 6, cfg.List.Layout.PageSize())
	assert.True(t, cfg.List.ShowSearch)
	assert.Equal(t, "news,featured", cfg.List.Tags)
	assert.Equal(t, []string{"region", "author"}, cfg.List.FilterAttributeKeys)

	// unknown layout falls back to list, page size 3
	bad, err := ComputeConfig(widgetNode("link-list", map[string]string{"data-layout": "mosaic"}, nil))
	require.NoError(t, err)
	assert.Equal(t, LayoutList, bad.List.Layout)
	assert.Equal(t, 3, bad.List.Layout.PageSize())
}

func TestComputeConfigTabs(t *testing.T) {
	node := widgetNode("tabs", map[string]string{
		"data-tabs": `[{"label":"One"},{"label":"Two"}]`,
	}, nil)

	cfg, err := ComputeConfig(node)
	require.NoError(t, err)
	require.NotNil(t, cfg.Tabs)
	require.Len(t, cfg.Tabs.Tabs, 2)
	assert.Equal(t, "One", cfg.Tabs.Tabs[0].Label)
	assert.Equal(t, "Two", cfg.Tabs.Tabs[1].Label)
}

func TestComputeConfigTabsInvalidJSON(t *testing.T) {
	node := widgetNode("tabs", map[string]string{"data-tabs": `{not json`}, nil)

	_, err := ComputeConfig(node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tabs JSON")
}

func TestComputeConfigInfiniteSlides(t *testing.T) {
	node := widgetNode("infinite-slides", nil, map[string]any{
		"images":    []any{"a.png", "b.png", "c.png"},
		"speed":     float64(80),
		"direction": "right",
	})

	cfg, err := ComputeConfig(node)
	require.NoError(t, err)
	require.NotNil(t, cfg.InfiniteSlides)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, cfg.InfiniteSlides.Images)
	assert.Equal(t, 80.0, cfg.InfiniteSlides.Speed)
	assert.Equal(t, "right", cfg.InfiniteSlides.Direction)
}

func TestComputeConfigUnknownKind(t *testing.T) {
	node := &builder.ComponentNode{Type: "div", Attributes: builder.AttrMap{"id": "x"}}
	cfg, err := ComputeConfig(node)
	assert.Error(t, err)
	assert.Equal(t, KindUnknown, cfg.Kind)
}

func TestKindOfFallsBackToType(t *testing.T) {
	node := &builder.ComponentNode{Type: "faq", Attributes: builder.AttrMap{"id": "f"}}
	assert.Equal(t, KindFAQ, KindOf(node))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindMarkerRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindCarousel, KindInfiniteSlides, KindTabs, KindCountUp,
		KindPageList, KindLinkList, KindContentList, KindNavbar, KindFAQ,
	}
	for _, kind := range kinds {
		assert.Equal(t, kind, KindFromMarker(kind.Marker()))
	}
	assert.Equal(t, KindUnknown, KindFromMarker("bogus"))
	assert.True(t, KindPageList.IsList())
	assert.False(t, KindNavbar.IsList())
}
