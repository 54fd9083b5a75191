// Copyright © 2026 The lovels authors

package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanWhile(t *testing.T) {
	text := String("a bc(def")
	t.Run("backward to stop", func(t *testing.T) {
		from, to := ScanWhile(text, 7, Backward, StopAt("("))
		assert.Equal(t, 5, from)
		assert.Equal(t, 8, to)
	})
	t.Run("backward to start of text", func(t *testing.T) {
		from, to := ScanWhile(text, 0, Backward, StopAt(" "))
		assert.Equal(t, 0, from)
		assert.Equal(t, 1, to)
	})
	t.Run("forward to end of text", func(t *testing.T) {
		from, to := ScanWhile(text, 5, Forward, StopAt(" "))
		assert.Equal(t, 5, from)
		assert.Equal(t, 8, to)
	})
	t.Run("starting on a stop", func(t *testing.T) {
		from, to := ScanWhile(text, 1, Backward, StopAt(" "))
		assert.Equal(t, from, to)
	})
	t.Run("out of bounds", func(t *testing.T) {
		from, to := ScanWhile(text, -5, Backward, StopAt(" "))
		assert.Equal(t, from, to)
		from, to = ScanWhile(text, 100, Forward, StopAt(" "))
		assert.Equal(t, from, to)
	})
}

func TestIdentifierBefore(t *testing.T) {
	tests := []struct {
		text string
		pos  int
		want string
	}{
		{"love.graphics.rectangle(", 24, "love.graphics.rectangle"},
		{"love.gr", 7, "love.gr"},
		{"  x = love.gr", 13, "love.gr"},
		{"foo(love.gr", 11, "love.gr"},
		{"local w = love.graphics.Image:getW", 34, "love.graphics.Image:getW"},
		{"a\n\tlove.", 8, "love."},
		{"love.gr ", 8, ""},
		{"", 0, ""},
		{"love", -3, ""},
		{"love", 100, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IdentifierBefore(String(tt.text), tt.pos), "%q@%d", tt.text, tt.pos)
	}
}

func TestWordAt(t *testing.T) {
	text := String("love.graphics.rectangle(x)")
	t.Run("inside word", func(t *testing.T) {
		start, end := WordAt(text, 7)
		assert.Equal(t, "graphics", Slice(text, start, end))
	})
	t.Run("just past word", func(t *testing.T) {
		start, end := WordAt(text, 4)
		assert.Equal(t, "love", Slice(text, start, end))
	})
	t.Run("not on a word", func(t *testing.T) {
		start, end := WordAt(String("a ( b"), 2)
		assert.Equal(t, start, end)
	})
}

func TestQualifiedAt(t *testing.T) {
	text := String("  love.graphics.rectangle('fill', 1)")
	assert.Equal(t, "love", QualifiedAt(text, 3))
	assert.Equal(t, "love.graphics", QualifiedAt(text, 9))
	assert.Equal(t, "love.graphics.rectangle", QualifiedAt(text, 20))
	assert.Equal(t, "", QualifiedAt(text, 0))

	body := String("(love.physics.Body:setPosition")
	assert.Equal(t, "love.physics.Body:setPosition", QualifiedAt(body, 22))
}

func TestHasRoot(t *testing.T) {
	assert.True(t, HasRoot("love.gr", "love"))
	assert.True(t, HasRoot("love", "love"))
	assert.False(t, HasRoot("xove.gr", "love"))
	assert.False(t, HasRoot("lovely.gr", "love"))
	assert.False(t, HasRoot("", "love"))
	assert.False(t, HasRoot("love.gr", ""))
}

func TestSlice(t *testing.T) {
	assert.Equal(t, "bc", Slice(String("abcd"), 1, 3))
	assert.Equal(t, "abcd", Slice(String("abcd"), -2, 10))
	assert.Equal(t, "", Slice(String("abcd"), 3, 1))
}
