// Package templates provides static HTML synthesis from builder component
// trees. Widget fragment renderers live in the widgets subpackage.
package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
)

// Synthesizer converts component nodes back into HTML strings, resolving
// class lists and inline styles from the project. It never mutates the
// project and never fails on missing optional fields; malformed input
// degrades to empty strings.
type Synthesizer struct {
	project *builder.ProjectData
}

// NewSynthesizer creates a synthesizer over one project snapshot.
func NewSynthesizer(project *builder.ProjectData) *Synthesizer {
	return &Synthesizer{project: project}
}

// ComponentToHTML renders a node and its subtree to an HTML string.
func (s *Synthesizer) ComponentToHTML(node *builder.ComponentNode) string {
	if node == nil {
		return ""
	}

	eff := node.Effective()
	if eff == nil {
		return ""
	}

	// Text nodes return their content verbatim.
	if eff.Type == "textnode" {
		return eff.Content
	}

	tag := eff.Type
	if tag == "" {
		tag = "div"
	}

	attrs := serializeAttributes(eff.Attributes)

	// Videos render as iframes carrying the node's source.
	if eff.Type == "video" {
		tag = "iframe"
		srcAttr := fmt.Sprintf(`src="%s"`, eff.Src)
		if attrs == "" {
			attrs = srcAttr
		} else {
			attrs = attrs + " " + srcAttr
		}
	}

	var inner strings.Builder
	for _, child := range eff.Components {
		inner.WriteString(s.ComponentToHTML(child))
	}

	style := ""
	if s.project != nil {
		style = s.project.StyleFor(eff.ID())
	}

	return fmt.Sprintf(`<%s %s style="%s" class="%s">%s</%s>`,
		tag, attrs, style, eff.Classes.String(), inner.String(), tag)
}

// ChildrenHTML renders each direct child of a node to its own HTML string,
// preserving order. Used to reconstitute widget children (carousel slides)
// for client-side re-mounting.
func (s *Synthesizer) ChildrenHTML(node *builder.ComponentNode) []string {
	children := node.Children()
	out := make([]string, 0, len(children))
	for _, child := range children {
		out = append(out, s.ComponentToHTML(child))
	}
	return out
}

// serializeAttributes emits key="value" pairs joined by spaces, keys sorted
// for deterministic output.
func serializeAttributes(attrs builder.AttrMap) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, key, attrs[key]))
	}
	return strings.Join(parts, " ")
}
