// Package widgets provides the per-widget HTML fragment renderers. Each
// renderer emits the inner HTML for one widget instance's root element; the
// hydration pass and the fragment endpoints both go through these.
package widgets

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// RenderCarousel emits the carousel's initial DOM: the slide track at index
// 0, optional indicator dots, and nav buttons per the configured mode. The
// config rides along as a JSON attribute so the client runtime can take over
// autoplay, swipe, and drag.
func RenderCarousel(cfg *widgets.CarouselConfig, slides []string) string {
	if cfg == nil {
		return ""
	}

	var b strings.Builder

	configJSON, _ := json.Marshal(cfg)
	fmt.Fprintf(&b, `<div class="carousel-viewport" data-config="%s">`, html.EscapeString(string(configJSON)))

	b.WriteString(`<div class="carousel-track">`)
	for i, slide := range slides {
		visible := ""
		if !widgets.SlideVisible(cfg.Animation, i) {
			visible = `;visibility:hidden`
		}
		fmt.Fprintf(&b, `<div class="carousel-slide" data-index="%d" style="transform:%s%s">%s</div>`,
			i, widgets.SlideTransform(cfg.Animation, i), visible, slide)
	}
	b.WriteString(`</div>`)

	if cfg.ShowIndicators && len(slides) > 1 {
		b.WriteString(`<div class="carousel-indicators">`)
		for i := range slides {
			active := ""
			if i == 0 {
				active = " active"
			}
			fmt.Fprintf(&b, `<button class="carousel-dot%s" data-goto="%d"></button>`, active, i)
		}
		b.WriteString(`</div>`)
	}

	if cfg.NavButtons != widgets.NavNone && len(slides) > 1 {
		mode := string(cfg.NavButtons)
		fmt.Fprintf(&b, `<button class="carousel-nav carousel-prev" data-visibility="%s">&lsaquo;</button>`, mode)
		fmt.Fprintf(&b, `<button class="carousel-nav carousel-next" data-visibility="%s">&rsaquo;</button>`, mode)
	}

	b.WriteString(`</div>`)
	return b.String()
}
