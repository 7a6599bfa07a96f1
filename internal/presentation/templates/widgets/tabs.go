package widgets

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// RenderTabs emits the header button row followed by one panel per tab.
// panels holds the pre-synthesized slot content by tab index; a tab without
// slot content gets a placeholder so the panel structure stays aligned with
// the headers. Exactly one panel is visible, the active one.
func RenderTabs(cfg *widgets.TabsConfig, active int, panels []string) string {
	if cfg == nil || len(cfg.Tabs) == 0 {
		return ""
	}
	if active < 0 || active >= len(cfg.Tabs) {
		active = 0
	}

	var b strings.Builder

	b.WriteString(`<div class="tabs-header" role="tablist">`)
	for i, tab := range cfg.Tabs {
		class := "tabs-button"
		selected := "false"
		if i == active {
			class += " active"
			selected = "true"
		}
		fmt.Fprintf(&b, `<button class="%s" role="tab" aria-selected="%s" data-tab="%d">%s</button>`,
			class, selected, i, html.EscapeString(tab.Label))
	}
	b.WriteString(`</div>`)

	for i := range cfg.Tabs {
		display := "none"
		if i == active {
			display = "block"
		}
		content := ""
		if i < len(panels) {
			content = panels[i]
		}
		if content == "" {
			fmt.Fprintf(&b, `<div class="tabs-panel" role="tabpanel" data-tab="%d" style="display:%s"><p class="tabs-placeholder">No content for this tab yet.</p></div>`,
				i, display)
			continue
		}
		fmt.Fprintf(&b, `<div class="tabs-panel" role="tabpanel" data-tab="%d" style="display:%s">%s</div>`,
			i, display, content)
	}

	return b.String()
}
