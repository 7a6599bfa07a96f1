package widgets

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
)

// Animation selects the carousel transform strategy.
type Animation string

const (
	AnimationNone      Animation = "none"
	AnimationSlide     Animation = "slide"
	AnimationPan       Animation = "pan"
	AnimationFlip      Animation = "flip"
	AnimationCoverflow Animation = "coverflow"
)

// NavMode controls carousel prev/next button visibility.
type NavMode string

const (
	NavNone   NavMode = "none"
	NavHover  NavMode = "hover"
	NavAlways NavMode = "always"
)

// Layout selects a list widget's DOM structure.
type Layout string

const (
	LayoutNews Layout = "news" // hero card + secondary column
	LayoutList Layout = "list" // full-width stacked cards
	LayoutGrid Layout = "grid" // uniform card grid
)

// PageSize returns the fetch limit for the layout: 3 for news/list, 6 for grid.
func (l Layout) PageSize() int {
	if l == LayoutGrid {
		return 6
	}
	return 3
}

// CarouselConfig is the extracted configuration for a carousel instance.
type CarouselConfig struct {
	Autoplay       bool      `json:"autoplay"`
	Interval       int       `json:"interval"` // ms
	Animation      Animation `json:"animation"`
	ShowIndicators bool      `json:"showIndicators"`
	NavButtons     NavMode   `json:"navButtons"`
	PauseOnHover   bool      `json:"pauseOnHover"`
	ZoomOnHover    bool      `json:"zoomOnHover"`
}

// InfiniteSlidesConfig configures the marquee widget.
type InfiniteSlidesConfig struct {
	Images    []string `json:"images"`
	Speed     float64  `json:"speed"`
	Direction string   `json:"direction"` // left|right
}

// TabDef is one tab header definition.
type TabDef struct {
	Label string `json:"label"`
}

// TabsConfig configures the tab panel widget.
type TabsConfig struct {
	Tabs []TabDef `json:"tabs"`
}

// CountUpConfig configures the count-up counter.
type CountUpConfig struct {
	EndValue int `json:"endValue"`
	Duration int `json:"duration"` // ms
}

// ListConfig configures the paginated content/link/page list widgets.
type ListConfig struct {
	ShowSearch          bool     `json:"showSearch"`
	ShowPagination      bool     `json:"showPagination"`
	Tags                string   `json:"tags"` // comma-separated, AND semantics
	FilterAttributeKeys []string `json:"filterAttributeKeys"`
	Layout              Layout   `json:"layout"`
}

// NavbarConfig configures the navbar live-search widget.
type NavbarConfig struct {
	SearchTags string `json:"searchTags"` // fixed tag set applied to every search
}

// FAQConfig configures the FAQ accordion widget.
type FAQConfig struct {
	ShowFilter bool `json:"showFilter"`
}

// Config is the full configuration derived from one widget's ComponentNode.
/// It has no independent lifecycle: it is recomputed fresh on every hydration
// pass and on every editor model-change event, through this one function, so
// the two paths can never drift.
type Config struct {
	Kind           Kind                  `json:"kind"`
	Carousel       *CarouselConfig       `json:"carousel,omitempty"`
	InfiniteSlides *InfiniteSlidesConfig `json:"infiniteSlides,omitempty"`
	Tabs           *TabsConfig           `json:"tabs,omitempty"`
	CountUp        *CountUpConfig        `json:"countUp,omitempty"`
	List           *ListConfig           `json:"list,omitempty"`
	Navbar         *NavbarConfig         `json:"navbar,omitempty"`
	FAQ            *FAQConfig            `json:"faq,omitempty"`
}

// KindOf determines a node's widget kind from its marker attribute, falling
// back to the node's type tag.
func KindOf(node *builder.ComponentNode) Kind {
	if node == nil {
		return KindUnknown
	}
	if marker := node.Attr(MarkerAttribute); marker != "" {
		return KindFromMarker(marker)
	}
	eff := node.Effective()
	if eff != nil {
		return KindFromMarker(eff.Type)
	}
	return KindUnknown
}

// ComputeConfig extracts a widget's configuration from its ComponentNode.
// Fields are read from the "data-" attribute first (the serialized string
// form that reaches static HTML) and from the trait-level property second.
func ComputeConfig(node *builder.ComponentNode) (Config, error) {
	kind := KindOf(node)
	cfg := Config{Kind: kind}

	switch kind {
	case KindCarousel:
		cfg.Carousel = &CarouselConfig{
			Autoplay:       boolField(node, "autoplay", false),
			Interval:       intField(node, "interval", 3000),
			Animation:      Animation(enumField(node, "animation", string(AnimationSlide), string(AnimationNone), string(AnimationSlide), string(AnimationPan), string(AnimationFlip), string(AnimationCoverflow))),
			ShowIndicators: boolField(node, "show-indicators", true),
			NavButtons:     NavMode(enumField(node, "nav-buttons", string(NavHover), string(NavNone), string(NavHover), string(NavAlways))),
			PauseOnHover:   boolField(node, "pause-on-hover", true),
			ZoomOnHover:    boolField(node, "zoom-on-hover", false),
		}
	case KindInfiniteSlides:
		cfg.InfiniteSlides = &InfiniteSlidesConfig{
			Images:    sliceField(node, "images"),
			Speed:     floatField(node, "speed", 50),
			Direction: enumField(node, "direction", "left", "left", "right"),
		}
	case KindTabs:
		tabs, err := parseTabs(node)
		if err != nil {
			return cfg, err
		}
		cfg.Tabs = &TabsConfig{Tabs: tabs}
	case KindCountUp:
		cfg.CountUp = &CountUpConfig{
			EndValue: intField(node, "end-value", 1000),
			Duration: intField(node, "duration", 2000),
		}
	case KindPageList, KindLinkList, KindContentList:
		cfg.List = &ListConfig{
			ShowSearch:          boolField(node, "show-search", false),
			ShowPagination:      boolField(node, "show-pagination", true),
			Tags:                stringField(node, "tags", ""),
			FilterAttributeKeys: sliceField(node, "filter-attribute-keys"),
			Layout:              Layout(enumField(node, "layout", string(LayoutList), string(LayoutNews), string(LayoutList), string(LayoutGrid))),
		}
	case KindNavbar:
		cfg.Navbar = &NavbarConfig{
			SearchTags: stringField(node, "search-tags", ""),
		}
	case KindFAQ:
		cfg.FAQ = &FAQConfig{
			ShowFilter: boolField(node, "show-filter", false),
		}
	case KindUnknown:
		return cfg, fmt.Errorf("node carries no known widget marker")
	}

	return cfg, nil
}

// parseTabs decodes the JSON-encoded tab list stored in the node's "tabs"
// field. Invalid JSON is an error the caller logs; it must not take down
// sibling widgets.
func parseTabs(node *builder.ComponentNode) ([]TabDef, error) {
	raw := stringField(node, "tabs", "")
	if raw == "" {
		if value, ok := node.Prop("tabs"); ok {
			// Trait-level tabs may already be a decoded array.
			if items, ok := value.([]any); ok {
				return tabsFromSlice(items), nil
			}
		}
		return nil, nil
	}

	var tabs []TabDef
	if err := json.Unmarshal([]byte(raw), &tabs); err != nil {
		return nil, fmt.Errorf("invalid tabs JSON: %w", err)
	}
	return tabs, nil
}

func tabsFromSlice(items []any) []TabDef {
	tabs := make([]TabDef, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if label, ok := m["label"].(string); ok {
				tabs = append(tabs, TabDef{Label: label})
			}
		}
	}
	return tabs
}

// Field extraction helpers. The attribute carries the serialized-string form
// ("true"/"false", numbers as text); the trait property carries native types.

func rawField(node *builder.ComponentNode, name string) (string, any, bool) {
	if node == nil {
		return "", nil, false
	}
	if attr := node.Attr("data-" + name); attr != "" {
		return attr, nil, true
	}
	if value, ok := node.Prop(camelCase(name)); ok {
		return "", value, true
	}
	return "", nil, false
}

func boolField(node *builder.ComponentNode, name string, def bool) bool {
	attr, prop, ok := rawField(node, name)
	if !ok {
		return def
	}
	if attr != "" {
		return attr == "true"
	}
	if b, ok := prop.(bool); ok {
		return b
	}
	if s, ok := prop.(string); ok {
		return s == "true"
	}
	return def
}

func intField(node *builder.ComponentNode, name string, def int) int {
	attr, prop, ok := rawField(node, name)
	if !ok {
		return def
	}
	if attr != "" {
		if v, err := strconv.Atoi(attr); err == nil {
			return v
		}
		return def
	}
	switch v := prop.(type) {
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func floatField(node *builder.ComponentNode, name string, def float64) float64 {
	attr, prop, ok := rawField(node, name)
	if !ok {
		return def
	}
	if attr != "" {
		if v, err := strconv.ParseFloat(attr, 64); err == nil {
			return v
		}
		return def
	}
	switch v := prop.(type) {
	case float64:
		return v
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func stringField(node *builder.ComponentNode, name string, def string) string {
	attr, prop, ok := rawField(node, name)
	if !ok {
		return def
	}
	if attr != "" {
		return attr
	}
	if s, ok := prop.(string); ok {
		return s
	}
	return def
}

// enumField returns the field value when it is one of allowed, def otherwise.
func enumField(node *builder.ComponentNode, name, def string, allowed ...string) string {
	value := stringField(node, name, def)
	for _, candidate := range allowed {
		if value == candidate {
			return value
		}
	}
	return def
}

// sliceField reads a list field: comma-separated in attribute form, a native
// array in trait form.
func sliceField(node *builder.ComponentNode, name string) []string {
	attr, prop, ok := rawField(node, name)
	if !ok {
		return nil
	}
	if attr != "" {
		return splitCSV(attr)
	}
	if items, ok := prop.([]any); ok {
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := prop.(string); ok {
		return splitCSV(s)
	}
	return nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// camelCase converts a data-attribute suffix ("end-value") to its trait
// property name ("endValue").
func camelCase(name string) string {
	parts := strings.Split(name, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
