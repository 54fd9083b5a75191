// Copyright © 2026 The lovels authors

package signature

import (
	"testing"

	"github.com/lovely2d/lovels/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnclosingCall(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   Call
		ok     bool
	}{
		{"simple", "love.draw()", 10, Call{Open: 9, Close: 10, Name: "love.draw"}, true},
		{"inside args", "f(a, b)", 4, Call{Open: 1, Close: 6, Name: "f"}, true},
		{"skips nested backward", "f(g(1), 2)", 8, Call{Open: 1, Close: 9, Name: "f"}, true},
		{"skips nested forward", "f(1, g(2))", 4, Call{Open: 1, Close: 9, Name: "f"}, true},
		{"innermost", "f(g(1, 2))", 5, Call{Open: 3, Close: 8, Name: "g"}, true},
		{"method", "body:setPosition(1)", 17, Call{Open: 16, Close: 18, Name: "body:setPosition"}, true},
		{"indented", "  love.draw()", 12, Call{Open: 11, Close: 12, Name: "love.draw"}, true},
		{"no open", "f 1, 2)", 4, Call{}, false},
		{"no close", "f(1, 2", 4, Call{}, false},
		{"close on next line", "f(1,\n2)", 4, Call{}, false},
		{"open on previous line", "f(\n1)", 4, Call{}, false},
		{"tab stops backward scan", "f(\t1)", 4, Call{}, false},
		{"outside after call", "f(1) ", 5, Call{}, false},
		{"empty", "", 0, Call{}, false},
		{"cursor out of bounds", "f()", 10, Call{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EnclosingCall(locator.String(tt.text), tt.cursor)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgumentIndex(t *testing.T) {
	tests := []struct {
		args string
		want int
	}{
		{"", 0},
		{"10", 0},
		{"10, ", 1},
		{"10, 20, ,", 3},
		{"foo(1,2), ", 1},
		{"a.b(c(1, 2), 3), d:e(4, 5), ", 2},
		{"(1, 2), ", 1},
		{"foo(1, ", 1},
		// Commas in string literals are not recognised.
		{`"a, b", `, 2},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			assert.Equal(t, tt.want, ArgumentIndex(tt.args))
		})
	}
}

func TestStripNestedCalls(t *testing.T) {
	assert.Equal(t, ", ", StripNestedCalls("foo(1,2), "))
	assert.Equal(t, ", x", StripNestedCalls("a(b(c(1), 2), 3), x"))
	assert.Equal(t, "foo(1, ", StripNestedCalls("foo(1, "))
}

func TestLocate(t *testing.T) {
	t.Run("typed comma", func(t *testing.T) {
		// love.graphics.rectangle(10, 20, |) followed by typing ','.
		text := "love.graphics.rectangle(10, 20, ,)"
		h, ok := Locate(locator.String(text), Change{Anchor: 32, Text: ","})
		require.True(t, ok)
		assert.Equal(t, "love.graphics.rectangle", h.Key)
		assert.Equal(t, 3, h.Active)
		assert.Equal(t, 23, h.Call.Open)
		assert.Equal(t, 33, h.Call.Close)
		assert.Nil(t, h.Entry)
	})
	t.Run("nested call", func(t *testing.T) {
		text := "love.graphics.rectangle(foo(1,2), )"
		h, ok := Locate(locator.String(text), Change{Anchor: 33, Text: " "})
		require.True(t, ok)
		assert.Equal(t, "love.graphics.rectangle", h.Key)
		assert.Equal(t, 1, h.Active)
	})
	t.Run("first argument", func(t *testing.T) {
		text := "love.graphics.print()"
		h, ok := Locate(locator.String(text), Change{Anchor: 20})
		require.True(t, ok)
		assert.Equal(t, "love.graphics.print", h.Key)
		assert.Equal(t, 0, h.Active)
	})
	t.Run("anonymous parentheses", func(t *testing.T) {
		_, ok := Locate(locator.String("x = (1, 2)"), Change{Anchor: 6})
		assert.False(t, ok)
	})
	t.Run("outside", func(t *testing.T) {
		_, ok := Locate(locator.String("love.draw"), Change{Anchor: 9})
		assert.False(t, ok)
	})
}
