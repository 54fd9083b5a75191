// Copyright © 2026 The lovels authors

package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "love.graphics.rectangle": {"meta": {"prop_type": "function", "name": "rectangle",
    "description": "Draws a rectangle.",
    "arguments": [{"name": "mode", "type": "DrawMode", "description": "How to draw."},
                  {"name": "rx", "type": "number", "description": "Radius.", "default": "nil"}]}},
  "love.graphics": {"meta": {"prop_type": "module", "name": "graphics", "description": "Drawing."}},
  "love.graphics.DrawMode": {"meta": {"prop_type": null, "name": "DrawMode", "description": "Fill or line."}},
  "love.graphics.Image:getWidth": {"meta": {"prop_type": "function", "name": "getWidth", "description": "",
    "returns": [{"name": "width", "type": "number", "description": "Width."}]}}
}`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	t.Run("source order", func(t *testing.T) {
		assert.Equal(t, []string{
			"love.graphics.rectangle",
			"love.graphics",
			"love.graphics.DrawMode",
			"love.graphics.Image:getWidth",
		}, c.Keys())
	})
	t.Run("null prop type is variable", func(t *testing.T) {
		e, ok := c.Lookup("love.graphics.DrawMode")
		require.True(t, ok)
		assert.Equal(t, Variable, e.PropType)
	})
	t.Run("arguments and defaults", func(t *testing.T) {
		e, ok := c.Lookup("love.graphics.rectangle")
		require.True(t, ok)
		assert.True(t, e.IsFunction())
		require.Len(t, e.Arguments, 2)
		assert.Nil(t, e.Arguments[0].Default)
		require.NotNil(t, e.Arguments[1].Default)
		assert.Equal(t, "nil", *e.Arguments[1].Default)
	})
	t.Run("returns", func(t *testing.T) {
		e, ok := c.Lookup("love.graphics.Image:getWidth")
		require.True(t, ok)
		require.Len(t, e.Returns, 1)
		assert.Equal(t, "width", e.Returns[0].Name)
	})
	t.Run("miss", func(t *testing.T) {
		_, ok := c.Lookup("love.audio")
		assert.False(t, ok)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an object", `[1, 2]`},
		{"unknown prop type", `{"love.x": {"meta": {"prop_type": "macro", "name": "x"}}}`},
		{"empty key", `{"": {"meta": {"name": "x"}}}`},
		{"duplicate key", `{"love.x": {"meta": {}}, "love.x": {"meta": {}}}`},
		{"truncated", `{"love.x": {"meta": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	input := `
love.timer:
  meta:
    prop_type: module
    name: timer
    description: Timing.
love.timer.getDelta:
  meta:
    prop_type: function
    name: getDelta
    description: Returns the time between the last two frames.
    returns:
      - name: dt
        type: number
        description: Seconds.
love.physics.newWorld:
  meta:
    prop_type: function
    name: newWorld
    description: Creates a new World.
    arguments:
      - name: xg
        type: number
        description: Gravity.
        default: 0
`
	c, err := LoadYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"love.timer", "love.timer.getDelta", "love.physics.newWorld"}, c.Keys())

	e, ok := c.Lookup("love.physics.newWorld")
	require.True(t, ok)
	require.Len(t, e.Arguments, 1)
	require.NotNil(t, e.Arguments[0].Default)
	assert.Equal(t, "0", *e.Arguments[0].Default)
}

func TestNew(t *testing.T) {
	c, err := New(&Entry{Key: "love.x"})
	require.NoError(t, err)
	e, _ := c.Lookup("love.x")
	assert.Equal(t, Variable, e.PropType, "missing prop type defaults to variable")

	_, err = New(&Entry{Key: ""})
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestSortByDepth(t *testing.T) {
	c, err := New(
		&Entry{Key: "love.graphics.Image.x.y"},
		&Entry{Key: "love.graphics.rectangle"},
		&Entry{Key: "love.graphics"},
		&Entry{Key: "love.graphics.Image.getWidth"},
		&Entry{Key: "love.audio"},
		&Entry{Key: "love.audio.play"},
	)
	require.NoError(t, err)

	sorted := c.SortByDepth()
	assert.Equal(t, []string{
		"love.graphics",
		"love.audio",
		"love.graphics.rectangle",
		"love.audio.play",
		"love.graphics.Image.getWidth",
		"love.graphics.Image.x.y",
	}, sorted.Keys())
	// The receiver is left untouched.
	assert.Equal(t, "love.graphics.Image.x.y", c.Keys()[0])
	_, ok := sorted.Lookup("love.audio.play")
	assert.True(t, ok)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	c, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.SortByDepth().WriteJSON(&buf))

	again, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"love.graphics",
		"love.graphics.rectangle",
		"love.graphics.DrawMode",
		"love.graphics.Image:getWidth",
	}, again.Keys())
	e, _ := again.Lookup("love.graphics.rectangle")
	require.Len(t, e.Arguments, 2)
	assert.Equal(t, "nil", *e.Arguments[1].Default)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 10)
	e, ok := c.Lookup("love.graphics.rectangle")
	require.True(t, ok)
	assert.Equal(t, Function, e.PropType)
}

func TestRoot(t *testing.T) {
	assert.Equal(t, "love", Root("love.graphics.rectangle"))
	assert.Equal(t, "love", Root("love"))
	assert.Equal(t, "Body", Root("Body:setPosition"))
	assert.Equal(t, "", Root(""))
}
