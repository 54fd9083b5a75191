// Copyright © 2026 The lovels authors

package signature

import (
	"sync"
	"testing"
	"time"

	"github.com/lovely2d/lovels/lovelstest"
	"github.com/lovely2d/lovels/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSurface struct {
	mu      sync.Mutex
	visible bool
	events  []string
	shown   []Help
	popups  []render.Popup
	panics  bool
}

func (s *testSurface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *testSurface) Show(h Help, p render.Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panics {
		panic("surface gone")
	}
	s.visible = true
	s.events = append(s.events, "show")
	s.shown = append(s.shown, h)
	s.popups = append(s.popups, p)
}

func (s *testSurface) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
	s.events = append(s.events, "hide")
}

func (s *testSurface) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *testSurface) Last() (Help, render.Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown[len(s.shown)-1], s.popups[len(s.popups)-1]
}

type testBuffer struct {
	text   string
	cursor int
}

func (b *testBuffer) Snapshot() (string, int) { return b.text, b.cursor }

// manualTimers collects delayed callbacks so tests decide when they run.
type manualTimers struct {
	pending []func()
}

func (m *manualTimers) after(_ time.Duration, f func()) {
	m.pending = append(m.pending, f)
}

func (m *manualTimers) runAll() {
	p := m.pending
	m.pending = nil
	for _, f := range p {
		f()
	}
}

func newTestTracker(t *testing.T) (*Tracker, *testSurface, *manualTimers) {
	t.Helper()
	docs := &render.Renderer{Format: render.Markdown, Links: render.DefaultLinks()}
	surface := &testSurface{}
	timers := &manualTimers{}
	tr := NewTracker(lovelstest.Catalog(t), docs, surface)
	tr.after = timers.after
	return tr, surface, timers
}

func TestTrackerTypedComma(t *testing.T) {
	tr, surface, timers := newTestTracker(t)
	buf := &testBuffer{text: "love.graphics.rectangle(10, 20, ,)", cursor: 33}

	tr.OnTextChanged(buf, Change{Anchor: 32, Text: ","})
	assert.Empty(t, timers.pending)
	assert.Equal(t, InsideCall, tr.State())
	require.Equal(t, []string{"show"}, surface.Events())

	h, p := surface.Last()
	assert.Equal(t, "love.graphics.rectangle", h.Key)
	assert.Equal(t, 3, h.Active)
	require.NotNil(t, h.Entry)
	assert.Equal(t, 23, p.Anchor)
	assert.Equal(t, render.CoexistWithCompletion, p.Behavior)
	assert.Contains(t, p.Content, "**width: number**")
	assert.NotContains(t, p.Content, "**height: number**")
}

func TestTrackerHidesBeforeShowing(t *testing.T) {
	tr, surface, _ := newTestTracker(t)
	buf := &testBuffer{text: "love.graphics.print(s,)", cursor: 22}
	tr.OnTextChanged(buf, Change{Anchor: 20, Text: "s"})

	buf.text, buf.cursor = "love.graphics.print(s,,)", 23
	tr.OnTextChanged(buf, Change{Anchor: 22, Text: ","})

	assert.Equal(t, []string{"show", "hide", "show"}, surface.Events())
	h, _ := surface.Last()
	assert.Equal(t, 2, h.Active)
}

func TestTrackerDefersInvisibleInsert(t *testing.T) {
	tr, surface, timers := newTestTracker(t)
	buf := &testBuffer{text: "love.graphics.print(s, )", cursor: 23}

	tr.OnTextChanged(buf, Change{Anchor: 22, Text: " "})
	assert.Empty(t, surface.Events())
	require.Len(t, timers.pending, 1)

	timers.runAll()
	require.Equal(t, []string{"show"}, surface.Events())
	h, _ := surface.Last()
	assert.Equal(t, 1, h.Active)
}

func TestTrackerDefersBulkInsert(t *testing.T) {
	t.Run("anchor before open paren", func(t *testing.T) {
		tr, surface, timers := newTestTracker(t)
		buf := &testBuffer{text: "love.graphics.print()", cursor: 20}

		tr.OnTextChanged(buf, Change{Anchor: 0, Text: "love.graphics.print("})
		assert.Empty(t, surface.Events())
		require.Len(t, timers.pending, 1)

		timers.runAll()
		require.Equal(t, []string{"show"}, surface.Events())
		h, _ := surface.Last()
		assert.Equal(t, "love.graphics.print", h.Key)
		assert.Equal(t, 0, h.Active)
	})
	t.Run("insertion ending past the call", func(t *testing.T) {
		tr, surface, timers := newTestTracker(t)
		buf := &testBuffer{text: "love.graphics.print()", cursor: 21}

		tr.OnTextChanged(buf, Change{Anchor: 0, Text: "love.graphics.print()"})
		require.Len(t, timers.pending, 1)

		// The host moves the cursor inside the parentheses before the
		// delayed scan runs.
		buf.cursor = 20
		timers.runAll()
		assert.Equal(t, []string{"show"}, surface.Events())
	})
}

func TestTrackerDropsStaleCallbacks(t *testing.T) {
	tr, surface, timers := newTestTracker(t)
	buf := &testBuffer{text: "love.graphics.print( )", cursor: 21}
	tr.OnTextChanged(buf, Change{Anchor: 20, Text: " "})
	require.Len(t, timers.pending, 1)

	buf.text, buf.cursor = "love.graphics.print( s,)", 23
	tr.OnTextChanged(buf, Change{Anchor: 22, Text: ","})
	require.Equal(t, []string{"show"}, surface.Events())

	timers.runAll()
	assert.Equal(t, []string{"show"}, surface.Events(), "superseded re-scan does nothing")

	tr.OnTextChanged(buf, Change{Anchor: 22, Text: "\n"})
	tr.Stop()
	timers.runAll()
	assert.Equal(t, []string{"show"}, surface.Events())
}

func TestTrackerIgnoresNonFunctions(t *testing.T) {
	tr, surface, _ := newTestTracker(t)
	for _, text := range []string{
		"love.graphics.Image()",
		"love.graphics.DrawMode()",
		"love.audio.play()",
	} {
		buf := &testBuffer{text: text, cursor: len(text) - 1}
		tr.OnTextChanged(buf, Change{Anchor: len(text) - 2, Text: "("})
		assert.Equal(t, InsideCall, tr.State())
	}
	assert.Empty(t, surface.Events())
}

func TestTrackerLeavesCall(t *testing.T) {
	tr, surface, _ := newTestTracker(t)
	buf := &testBuffer{text: "love.draw()", cursor: 10}
	tr.OnTextChanged(buf, Change{Anchor: 9, Text: "("})
	require.Equal(t, InsideCall, tr.State())

	buf.text, buf.cursor = "love.draw() x", 13
	tr.OnTextChanged(buf, Change{Anchor: 12, Text: "x"})
	assert.Equal(t, Outside, tr.State())
	assert.Equal(t, []string{"show", "hide"}, surface.Events())

	tr.OnTextChanged(buf, Change{Anchor: 12, Text: "x"})
	assert.Equal(t, []string{"show", "hide"}, surface.Events(), "hidden popup is not hidden again")
}

func TestTrackerRecoversCallbackPanic(t *testing.T) {
	tr, surface, timers := newTestTracker(t)
	surface.panics = true
	buf := &testBuffer{text: "love.graphics.print( )", cursor: 21}
	tr.OnTextChanged(buf, Change{Anchor: 20, Text: " "})

	assert.NotPanics(t, timers.runAll)

	surface.mu.Lock()
	surface.panics = false
	surface.mu.Unlock()
	buf.text, buf.cursor = "love.graphics.print( s)", 22
	tr.OnTextChanged(buf, Change{Anchor: 21, Text: "s"})
	assert.Equal(t, []string{"show"}, surface.Events(), "tracker keeps working")
}

func TestTrackerAt(t *testing.T) {
	tr, surface, _ := newTestTracker(t)

	h, ok := tr.At("x = love.physics.Body:setPosition(1, )", 37)
	require.True(t, ok)
	assert.Equal(t, "love.physics.Body:setPosition", h.Key)
	assert.Equal(t, 1, h.Active)
	require.NotNil(t, h.Entry)
	assert.Equal(t, "setPosition", h.Entry.Name)

	p := tr.Popup(h)
	assert.Equal(t, 33, p.Anchor)
	assert.Contains(t, p.Content, "**y: number**")

	_, ok = tr.At("love.graphics.Image()", 20)
	assert.False(t, ok)
	_, ok = tr.At("love.draw", 9)
	assert.False(t, ok)
	assert.Empty(t, surface.Events())
}

func TestTrackerDebounceTimer(t *testing.T) {
	docs := &render.Renderer{Format: render.Plain}
	surface := &testSurface{}
	tr := NewTracker(lovelstest.Catalog(t), docs, surface, WithDelay(time.Millisecond))
	buf := &testBuffer{text: "love.update()", cursor: 12}

	tr.OnTextChanged(buf, Change{Anchor: 0, Text: "love.update("})
	require.Eventually(t, func() bool {
		return len(surface.Events()) == 1
	}, time.Second, time.Millisecond)
	_, p := surface.Last()
	assert.Equal(t, "love.update(*dt: number*) -> nil", p.Content)
}
