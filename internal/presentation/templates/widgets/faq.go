package widgets

import (
	"fmt"
	"html"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
)

// FAQItem is one question/answer pair extracted from the widget's children.
// Answer holds the synthesized inner HTML.
type FAQItem struct {
	Question string
	Answer   string
}

// FilterText is what the live filter matches against: the question plus the
// answer's visible text, markup stripped.
func (i FAQItem) FilterText() string {
	return i.Question + " " + stripTags(i.Answer)
}

// stripTags drops <...> runs from a fragment, leaving its text content.
func stripTags(fragment string) string {
	var b strings.Builder
	inTag := false
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RenderFAQ emits the accordion: an optional filter input followed by the
// question rows. Items that fail the current filter are omitted entirely;
// each remaining item carries its original index so toggle state survives
// re-renders under a narrower filter.
func RenderFAQ(cfg *widgets.FAQConfig, state *widgets.FAQState, filter string, items []FAQItem) string {
	if cfg == nil {
		return ""
	}

	var b strings.Builder

	if cfg.ShowFilter {
		fmt.Fprintf(&b, `<input class="faq-filter" type="text" placeholder="Filter questions" value="%s">`,
			html.EscapeString(filter))
	}

	b.WriteString(`<div class="faq-items">`)
	for i, item := range items {
		if !widgets.MatchesFilter(item.FilterText(), filter) {
			continue
		}
		open := state != nil && state.IsOpen(i)
		display := "none"
		toggle := "+"
		if open {
			display = "block"
			toggle = "&minus;"
		}
		fmt.Fprintf(&b, `<div class="faq-item" data-index="%d">`, i)
		fmt.Fprintf(&b, `<button class="faq-question">%s<span class="faq-toggle">%s</span></button>`,
			html.EscapeString(item.Question), toggle)
		fmt.Fprintf(&b, `<div class="faq-answer" style="display:%s">%s</div>`, display, item.Answer)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	return b.String()
}
