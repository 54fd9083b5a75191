// Copyright © 2026 The lovels authors

// Package lovelstest provides fixtures shared by lovels tests.
package lovelstest

import (
	"testing"

	"github.com/lovely2d/lovels/catalog"
)

func str(s string) *string { return &s }

// Entries returns a small, fixed set of catalog entries covering every
// prop type, methods, defaults, returns and a malformed entry without a
// description.
func Entries() []*catalog.Entry {
	return []*catalog.Entry{
		{Key: "love.graphics", PropType: catalog.Module, Name: "graphics",
			Description: "Drawing of shapes and images. Also manages graphics state."},
		{Key: "love.physics", PropType: catalog.Module, Name: "physics",
			Description: "Simulates 2D rigid body physics."},
		{Key: "love.draw", PropType: catalog.Function, Name: "draw",
			Description: "Callback function used to draw on the screen every frame."},
		{Key: "love.update", PropType: catalog.Function, Name: "update",
			Description: "Callback function used to update the state of the game every frame.",
			Arguments: []catalog.Argument{
				{Name: "dt", Type: "number", Description: "Time since the last update in seconds."},
			}},
		{Key: "love.graphics.rectangle", PropType: catalog.Function, Name: "rectangle",
			Description: "Draws a rectangle. Rounded corners are drawn when rx is given.",
			Arguments: []catalog.Argument{
				{Name: "mode", Type: "DrawMode", Description: "How to draw the rectangle."},
				{Name: "x", Type: "number", Description: "The position along the x-axis."},
				{Name: "y", Type: "number", Description: "The position along the y-axis."},
				{Name: "width", Type: "number", Description: "Width of the rectangle."},
				{Name: "height", Type: "number", Description: "Height of the rectangle."},
				{Name: "rx", Type: "number", Description: "Corner radius.", Default: str("nil")},
			}},
		{Key: "love.graphics.print", PropType: catalog.Function, Name: "print",
			Description: "Draws text on screen.",
			Arguments: []catalog.Argument{
				{Name: "text", Type: "string", Description: "The text to draw."},
				{Name: "x", Type: "number", Description: "Position on the x-axis.", Default: str("0")},
				{Name: "y", Type: "number", Description: "Position on the y-axis.", Default: str("0")},
			}},
		{Key: "love.graphics.getWidth", PropType: catalog.Function, Name: "getWidth",
			Description: "Gets the width in pixels of the window.",
			Returns: []catalog.Return{
				{Name: "width", Type: "number", Description: "The width of the window."},
			}},
		{Key: "love.graphics.Image", PropType: catalog.Type, Name: "Image",
			Description: "Drawable image type."},
		{Key: "love.graphics.Image:getDimensions", PropType: catalog.Function, Name: "getDimensions",
			Description: "Gets the width and height of the Image.",
			Returns: []catalog.Return{
				{Name: "width", Type: "number", Description: "The width, in pixels."},
				{Name: "height", Type: "number", Description: "The height, in pixels."},
			}},
		{Key: "love.physics.Body:setPosition", PropType: catalog.Function, Name: "setPosition",
			Description: "Set the position of the body.",
			Arguments: []catalog.Argument{
				{Name: "x", Type: "number", Description: "The x position."},
				{Name: "y", Type: "number", Description: "The y position."},
			}},
		{Key: "love.graphics.DrawMode", PropType: catalog.Variable, Name: "DrawMode",
			Description: "Controls whether shapes are drawn as an outline, or filled."},
		{Key: "love.graphics.broken", PropType: catalog.Function},
	}
}

// Catalog builds a catalog from Entries.
func Catalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(Entries()...)
	if err != nil {
		t.Fatalf("building fixture catalog: %v", err)
	}
	return c
}

// Lookup returns the fixture entry for key and fails the test if it is
// missing.
func Lookup(t testing.TB, c *catalog.Catalog, key string) *catalog.Entry {
	t.Helper()
	e, ok := c.Lookup(key)
	if !ok {
		t.Fatalf("fixture catalog has no entry %q", key)
	}
	return e
}
