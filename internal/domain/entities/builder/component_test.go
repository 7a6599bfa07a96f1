package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectDataClassShapes(t *testing.T) {
	raw := `{
		"pages": [{"frames": [{
			"type": "div",
			"attributes": {"id": "root"},
			"classes": ["plain", {"name": "from-object"}, {"label": "ignored"}, ""]
		}]}]
	}`

	project, err := ParseProjectData([]byte(raw))
	require.NoError(t, err)

	root := FindInProject(project, "root")
	require.NotNil(t, root)
	assert.Equal(t, ClassList{"plain", "from-object"}, root.Classes)
	assert.Equal(t, "plain from-object", root.Classes.String())
}

func TestParseProjectDataAttributeCoercion(t *testing.T) {
	raw := `{
		"pages": [{"frames": [{
			"type": "div",
			"attributes": {"id": "w1", "data-autoplay": true, "data-interval": 5000, "data-tags": "news,featured"}
		}]}]
	}`

	project, err := ParseProjectData([]byte(raw))
	require.NoError(t, err)

	node := FindInProject(project, "w1")
	require.NotNil(t, node)
	assert.Equal(t, "true", node.Attr("data-autoplay"))
	assert.Equal(t, "5000", node.Attr("data-interval"))
	assert.Equal(t, "news,featured", node.Attr("data-tags"))
}

func TestParseProjectDataTraitProps(t *testing.T) {
	raw := `{
		"pages": [{"frames": [{
			"type": "carousel",
			"attributes": {"id": "c1"},
			"autoplay": true,
			"interval": 4000,
			"images": ["a.png", "b.png"]
		}]}]
	}`

	project, err := ParseProjectData([]byte(raw))
	require.NoError(t, err)

	node := FindInProject(project, "c1")
	require.NotNil(t, node)

	autoplay, ok := node.Prop("autoplay")
	require.True(t, ok)
	assert.Equal(t, true, autoplay)

	interval, ok := node.Prop("interval")
	require.True(t, ok)
	assert.Equal(t, float64(4000), interval)

	images, ok := node.Prop("images")
	require.True(t, ok)
	assert.Equal(t, []any{"a.png", "b.png"}, images)
}

func TestParseProjectDataNormalizesIndirection(t *testing.T) {
	raw := `{
		"pages": [{"frames": [{
			"component": {
				"type": "div",
				"attributes": {"id": "real"},
				"components": [{"component": {"type": "span", "attributes": {"id": "inner"}}}]
			}
		}]}]
	}`

	project, err := ParseProjectData([]byte(raw))
	require.NoError(t, err)
	require.Len(t, project.Pages, 1)
	require.Len(t, project.Pages[0].Frames, 1)

	root := project.Pages[0].Frames[0]
	assert.Nil(t, root.Component, "frame roots must be normalized")
	assert.Equal(t, "real", root.ID())

	require.Len(t, root.Components, 1)
	assert.Nil(t, root.Components[0].Component)
	assert.Equal(t, "inner", root.Components[0].ID())
}

func TestStyleFor(t *testing.T) {
	project := &ProjectData{
		Styles: []StyleRule{
			{Selectors: []string{".other"}, Style: map[string]string{"color": "red"}},
			{Selectors: []string{"#hero", ".hero"}, Style: map[string]string{"color": "blue", "margin": "0"}},
			{Selectors: []string{"#hero"}, Style: map[string]string{"color": "green"}},
		},
	}

	// First matching rule wins; keys are emitted sorted.
	assert.Equal(t, "color:blue;margin:0", project.StyleFor("hero"))
	assert.Equal(t, "", project.StyleFor("absent"))
	assert.Equal(t, "", project.StyleFor(""))
}

func TestEffectiveAndAccessorsOnMalformedNodes(t *testing.T) {
	var nilNode *ComponentNode
	assert.Nil(t, nilNode.Effective())
	assert.Equal(t, "", nilNode.ID())

	bare := &ComponentNode{Type: "div"}
	assert.Equal(t, "", bare.ID())
	assert.Equal(t, "", bare.Attr("anything"))
	assert.Empty(t, bare.Children())

	_, ok := bare.Prop("autoplay")
	assert.False(t, ok)
}
