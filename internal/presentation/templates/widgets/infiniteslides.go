package widgets

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// Server-side duplication assumes a viewport of this width; the client
// runtime re-measures and tops up the strip if the real container is wider.
const (
	assumedViewportWidth = 1920.0
	defaultItemWidth     = 240.0
)

// RenderInfiniteSlides emits the marquee strip with the image sequence
// repeated enough times to cover the assumed viewport, plus the animation
// duration derived from the configured speed.
func RenderInfiniteSlides(cfg *widgets.InfiniteSlidesConfig) string {
	if cfg == nil || len(cfg.Images) == 0 {
		return ""
	}

	repeat := widgets.RepeatCount(assumedViewportWidth, defaultItemWidth, len(cfg.Images))
	duration := widgets.MarqueeDuration(repeat*len(cfg.Images), cfg.Speed)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="slides-strip" data-direction="%s" style="animation-duration:%.1fs">`,
		cfg.Direction, duration)
	for r := 0; r < repeat; r++ {
		for _, src := range cfg.Images {
			fmt.Fprintf(&b, `<img class="slides-item" src="%s" alt="">`, html.EscapeString(src))
		}
	}
	b.WriteString(`</div>`)
	return b.String()
}
