package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elem(id string, children ...*ComponentNode) *ComponentNode {
	return &ComponentNode{
		Type:       "div",
		Attributes: AttrMap{"id": id},
		Components: children,
	}
}

func TestFindComponentByID(t *testing.T) {
	tree := []*ComponentNode{
		elem("root",
			elem("left",
				elem("left-child"),
			),
			elem("right"),
		),
	}

	found := FindComponentByID(tree, "left-child")
	require.NotNil(t, found)
	assert.Equal(t, "left-child", found.Attributes["id"])

	assert.Nil(t, FindComponentByID(tree, "missing"))
	assert.Nil(t, FindComponentByID(tree, ""))
	assert.Nil(t, FindComponentByID(nil, "root"))
}

func TestFindComponentByIDIsIdempotent(t *testing.T) {
	tree := []*ComponentNode{
		elem("a", elem("b"), elem("c", elem("target"))),
	}

	first := FindComponentByID(tree, "target")
	second := FindComponentByID(tree, "target")
	require.NotNil(t, first)
	assert.Same(t, first, second, "repeated lookups must return the same node object")
}

func TestFindComponentByIDIndirectionTransparency(t *testing.T) {
	bare := elem("widget-1", elem("slide-a"))
	wrapped := &ComponentNode{Component: elem("widget-1", elem("slide-a"))}

	fromBare := FindComponentByID([]*ComponentNode{bare}, "widget-1")
	fromWrapped := FindComponentByID([]*ComponentNode{wrapped}, "widget-1")

	require.NotNil(t, fromBare)
	require.NotNil(t, fromWrapped)
	assert.Equal(t, fromBare.Attributes["id"], fromWrapped.Attributes["id"])
	assert.Len(t, fromWrapped.Components, 1)

	// Children of a wrapped node must also be reachable.
	assert.NotNil(t, FindComponentByID([]*ComponentNode{wrapped}, "slide-a"))
}

func TestFindComponentByIDMalformedNodes(t *testing.T) {
	// A node missing attributes entirely is treated as having no id; a nil
	// entry in a child list is skipped. Neither may panic.
	tree := []*ComponentNode{
		{Type: "div", Components: []*ComponentNode{
			nil,
			{Type: "span"},
			elem("target"),
		}},
	}

	found := FindComponentByID(tree, "target")
	require.NotNil(t, found)
	assert.Equal(t, "target", found.Attributes["id"])
}

func TestFindComponentByIDDepthCap(t *testing.T) {
	// Build a chain deeper than the cap; lookup must terminate empty-handed.
	leaf := elem("deep")
	node := leaf
	for i := 0; i < DefaultMaxDepth+10; i++ {
		node = &ComponentNode{Type: "div", Components: []*ComponentNode{node}}
	}

	assert.Nil(t, FindComponentByID([]*ComponentNode{node}, "deep"))
}

func TestFindInProject(t *testing.T) {
	project := &ProjectData{
		Pages: []BuilderPage{
			{Frames: []*ComponentNode{elem("frame-1")}},
			{Frames: []*ComponentNode{elem("frame-2", elem("nested"))}},
		},
	}

	assert.NotNil(t, FindInProject(project, "nested"))
	assert.Nil(t, FindInProject(project, "absent"))
	assert.Nil(t, FindInProject(nil, "frame-1"))
}
