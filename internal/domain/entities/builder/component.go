// Package builder provides domain entities for serialized page-builder
// projects: the component tree, style rules, and the project document.
package builder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ClassList holds a node's ordered class names. The builder serializes classes
// either as plain strings or as objects carrying a "name" field; both shapes
// must decode to the same list.
type ClassList []string

// UnmarshalJSON accepts ["a", {"name":"b"}, ...] and flattens to names.
func (cl *ClassList) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			if v != "" {
				names = append(names, v)
			}
		case map[string]any:
			if name, ok := v["name"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	*cl = names
	return nil
}

// String joins the class names space-separated, skipping empties.
func (cl ClassList) String() string {
	var kept []string
	for _, name := range cl {
		if name != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}

// AttrMap holds element attributes. Values arrive as strings, numbers, or
// booleans depending on which editor version serialized the project; all are
// coerced to their string form since that is what static HTML carries.
type AttrMap map[string]string

// UnmarshalJSON coerces scalar attribute values to strings.
func (am *AttrMap) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	attrs := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			attrs[key] = v
		case bool:
			attrs[key] = fmt.Sprintf("%t", v)
		case float64:
			attrs[key] = trimFloat(v)
		case nil:
			// dropped
		default:
			attrs[key] = fmt.Sprintf("%v", v)
		}
	}
	*am = attrs
	return nil
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// ComponentNode is one node of the serialized visual page tree.
//
// Widget configuration may live in two places: as a trait-level property
// (native JSON types, collected into Props) or duplicated into Attributes
// with a "data-" prefix (string form). Readers must check both; attributes
// win because they are what ends up in the static HTML.
type ComponentNode struct {
	Type       string           `json:"type,omitempty"`
	Attributes AttrMap          `json:"attributes,omitempty"`
	Classes    ClassList        `json:"classes,omitempty"`
	Components []*ComponentNode `json:"components,omitempty"`
	Content    string           `json:"content,omitempty"`
	Src        string           `json:"src,omitempty"`

	// Component carries the legacy wrapper indirection: older documents nest
	// the real node one level under this field.
	Component *ComponentNode `json:"component,omitempty"`

	// Props collects trait-level widget fields (autoplay, interval, tabs,
	// images, ...) that are not part of the fixed schema.
	Props map[string]any `json:"-"`
}

// componentNodeAlias avoids recursion in UnmarshalJSON.
type componentNodeAlias ComponentNode

var knownNodeFields = map[string]bool{
	"type": true, "attributes": true, "classes": true, "components": true,
	"content": true, "src": true, "component": true,
}

// UnmarshalJSON decodes the fixed schema and sweeps every remaining field
// into Props so trait-level widget configuration survives the round trip.
func (n *ComponentNode) UnmarshalJSON(data []byte) error {
	var alias componentNodeAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		if knownNodeFields[key] {
			continue
		}
		var decoded any
		if err := json.Unmarshal(value, &decoded); err != nil {
			continue
		}
		if alias.Props == nil {
			alias.Props = make(map[string]any)
		}
		alias.Props[key] = decoded
	}

	*n = ComponentNode(alias)
	return nil
}

// Effective resolves the legacy wrapper indirection: the node's real data is
// nested under Component when present.
func (n *ComponentNode) Effective() *ComponentNode {
	if n == nil {
		return nil
	}
	if n.Component != nil {
		return n.Component
	}
	return n
}

// ID returns the node's DOM id, empty when the node is not addressable.
func (n *ComponentNode) ID() string {
	eff := n.Effective()
	if eff == nil || eff.Attributes == nil {
		return ""
	}
	return eff.Attributes["id"]
}

// Children returns the effective node's child list, never nil.
func (n *ComponentNode) Children() []*ComponentNode {
	eff := n.Effective()
	if eff == nil {
		return nil
	}
	return eff.Components
}

// Attr reads one attribute off the effective node, "" when absent.
func (n *ComponentNode) Attr(key string) string {
	eff := n.Effective()
	if eff == nil || eff.Attributes == nil {
		return ""
	}
	return eff.Attributes[key]
}

// Prop reads one trait-level property off the effective node.
func (n *ComponentNode) Prop(key string) (any, bool) {
	eff := n.Effective()
	if eff == nil || eff.Props == nil {
		return nil, false
	}
	value, ok := eff.Props[key]
	return value, ok
}

// Normalize resolves wrapper indirections in place for an entire subtree so
// downstream traversals never re-check the component field. Returns the
// effective root.
func (n *ComponentNode) Normalize() *ComponentNode {
	eff := n.Effective()
	if eff == nil {
		return nil
	}
	for i, child := range eff.Components {
		if child != nil {
			eff.Components[i] = child.Normalize()
		}
	}
	return eff
}

// StyleRule is one flat style rule on the project, matched to a node by
// testing whether "#<id>" is among its selectors.
type StyleRule struct {
	Selectors []string          `json:"selectors,omitempty"`
	Style     map[string]string `json:"style,omitempty"`
}

// CSS serializes the rule for a stylesheet block, "" when it has no
// selectors or declarations.
func (r StyleRule) CSS() string {
	if len(r.Selectors) == 0 || len(r.Style) == 0 {
		return ""
	}
	return strings.Join(r.Selectors, ",") + "{" + flattenStyle(r.Style) + "}"
}

// BuilderPage is one page of the project document.
type BuilderPage struct {
	ID     string           `json:"id,omitempty"`
	Frames []*ComponentNode `json:"frames,omitempty"`
}

// ProjectData is the full serialized page-builder document: the unit of
// persistence and the sole input to the rendering core. The rendering core
// treats it as read-only.
type ProjectData struct {
	Pages  []BuilderPage `json:"pages,omitempty"`
	Styles []StyleRule   `json:"styles,omitempty"`
}

// ParseProjectData decodes a serialized project and normalizes away the
// wrapper indirection on every frame.
func ParseProjectData(data []byte) (*ProjectData, error) {
	var project ProjectData
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse project data: %w", err)
	}

	for p := range project.Pages {
		for f, frame := range project.Pages[p].Frames {
			if frame != nil {
				project.Pages[p].Frames[f] = frame.Normalize()
			}
		}
	}

	return &project, nil
}

// Roots returns every frame root across all pages, in document order.
func (p *ProjectData) Roots() []*ComponentNode {
	if p == nil {
		return nil
	}
	var roots []*ComponentNode
	for _, page := range p.Pages {
		roots = append(roots, page.Frames...)
	}
	return roots
}

// StyleFor flattens the first style rule matching "#<id>" to an inline
// "key:value;key:value" string, "" when no rule matches.
func (p *ProjectData) StyleFor(id string) string {
	if p == nil || id == "" {
		return ""
	}

	selector := "#" + id
	for _, rule := range p.Styles {
		for _, sel := range rule.Selectors {
			if sel == selector {
				return flattenStyle(rule.Style)
			}
		}
	}
	return ""
}

func flattenStyle(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}

	// Deterministic output: emitted HTML is snapshot-tested and cached.
	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+":"+style[key])
	}
	return strings.Join(parts, ";")
}
