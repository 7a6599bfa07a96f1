package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mutProject(frames ...*ComponentNode) *ProjectData {
	return &ProjectData{Pages: []BuilderPage{{ID: "page-1", Frames: frames}}}
}

func TestInsertComponent(t *testing.T) {
	parent := elem("parent")
	parent.Components = []*ComponentNode{elem("a"), elem("c")}
	project := mutProject(parent)

	ok := InsertComponent(project, "parent", 1, elem("b"))
	require.True(t, ok)

	ids := make([]string, 0, 3)
	for _, c := range parent.Components {
		ids = append(ids, c.ID())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	// out-of-range index appends
	require.True(t, InsertComponent(project, "parent", 99, elem("d")))
	assert.Equal(t, "d", parent.Components[3].ID())

	assert.False(t, InsertComponent(project, "missing", 0, elem("x")))
}

func TestInsertComponentThroughWrapper(t *testing.T) {
	inner := elem("wrapped")
	wrapper := &ComponentNode{Component: inner}
	project := mutProject(wrapper)

	require.True(t, InsertComponent(project, "wrapped", 0, elem("child")))
	assert.Len(t, inner.Components, 1)
}

func TestReplaceComponent(t *testing.T) {
	child := elem("target")
	child.Content = "old"
	parent := elem("parent")
	parent.Components = []*ComponentNode{child}
	project := mutProject(parent)

	replacement := elem("target")
	replacement.Content = "new"
	require.True(t, ReplaceComponent(project, replacement))
	assert.Equal(t, "new", parent.Components[0].Content)

	assert.False(t, ReplaceComponent(project, elem("missing")))
}

func TestReplaceRootFrame(t *testing.T) {
	project := mutProject(elem("root"))
	replacement := elem("root")
	replacement.Type = "section"

	require.True(t, ReplaceComponent(project, replacement))
	assert.Equal(t, "section", project.Pages[0].Frames[0].Type)
}

func TestRemoveComponent(t *testing.T) {
	inner := elem("inner")
	parent := elem("parent")
	parent.Components = []*ComponentNode{elem("keep"), inner}
	project := mutProject(parent)

	require.True(t, RemoveComponent(project, "inner"))
	assert.Len(t, parent.Components, 1)
	assert.Nil(t, FindInProject(project, "inner"))

	assert.False(t, RemoveComponent(project, "inner"))
}

func TestRemoveRootFrame(t *testing.T) {
	project := mutProject(elem("a"), elem("b"))
	require.True(t, RemoveComponent(project, "a"))
	require.Len(t, project.Pages[0].Frames, 1)
	assert.Equal(t, "b", project.Pages[0].Frames[0].ID())
}
