package widgets

import (
	"fmt"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// RenderCountUp emits the counter's initial display. A non-positive duration
// means no animation, so the final value is shown immediately; otherwise the
// counter starts at zero and the client runtime animates once the element
// crosses the visibility threshold.
func RenderCountUp(cfg *widgets.CountUpConfig) string {
	if cfg == nil {
		return ""
	}
	initial := 0
	if cfg.Duration <= 0 {
		initial = cfg.EndValue
	}
	return fmt.Sprintf(`<span class="count-up-value" data-end-value="%d" data-duration="%d" data-threshold="%g">%s</span>`,
		cfg.EndValue, cfg.Duration, widgets.CountUpThreshold, widgets.FormatCount(initial))
}
