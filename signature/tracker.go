// Copyright © 2026 The lovels authors

package signature

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/locator"
	"github.com/lovely2d/lovels/render"
	"github.com/tliron/commonlog"
)

// log returns the package logger. It is looked up on use so that the
// backend installed by the command line is picked up.
func log() commonlog.Logger { return commonlog.GetLogger("lovels.signature") }

// DefaultDelay is how long the tracker lets the buffer settle after a
// bulk edit before scanning it again.
const DefaultDelay = 50 * time.Millisecond

// State of a Tracker.
type State int

const (
	Outside State = iota
	InsideCall
)

func (s State) String() string {
	if s == InsideCall {
		return "inside-call"
	}
	return "outside"
}

// Surface is the host popup that displays signature help.
type Surface interface {
	Visible() bool
	Show(h Help, p render.Popup)
	Hide()
}

// Buffer gives the tracker the current text and cursor of the edited
// document.
type Buffer interface {
	Snapshot() (text string, cursor int)
}

// Tracker re-evaluates signature help on every text change and drives a
// Surface. A Tracker is safe for concurrent use; delayed re-scans run on
// timer goroutines.
type Tracker struct {
	catalog *catalog.Catalog
	docs    render.Documenter
	surface Surface
	delay   time.Duration

	// after schedules f once d has elapsed.
	after func(d time.Duration, f func())

	mu    sync.Mutex
	state State
	// gen is bumped by every text change; a delayed re-scan only runs
	// when no newer change arrived in the meantime.
	gen uint64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithDelay sets the settle delay used after bulk edits.
func WithDelay(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.delay = d
		}
	}
}

// NewTracker creates a Tracker rendering entries of c through docs onto
// surface.
func NewTracker(c *catalog.Catalog, docs render.Documenter, surface Surface, opts ...Option) *Tracker {
	t := &Tracker{
		catalog: c,
		docs:    docs,
		surface: surface,
		delay:   DefaultDelay,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// State returns the state reached by the last evaluation.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// OnTextChanged evaluates change against the buffer. Typed edits inside
// a call render immediately. Edits anchored before the enclosing '(',
// edits that inserted no visible character, and bulk insertions that
// left the cursor past the call they opened are re-scanned after the
// settle delay instead.
func (t *Tracker) OnTextChanged(buf Buffer, change Change) {
	text, _ := buf.Snapshot()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++

	call, inside := EnclosingCall(locator.String(text), change.End())
	switch {
	case !hasVisible(change.Text):
		t.schedule(buf)
		return
	case inside && change.Anchor < call.Open:
		t.schedule(buf)
		return
	case !inside && len(change.Text) > 1 && strings.Contains(change.Text, "("):
		t.schedule(buf)
		return
	case !inside:
		t.leave()
		return
	}
	h, ok := Locate(locator.String(text), change)
	if !ok {
		t.leave()
		return
	}
	t.show(h)
}

// Stop invalidates pending delayed re-scans.
func (t *Tracker) Stop() {
	t.mu.Lock()
	t.gen++
	t.mu.Unlock()
}

// At resolves signature help for a cursor without touching the surface.
// Only catalog functions resolve.
func (t *Tracker) At(text string, cursor int) (Help, bool) {
	h, ok := Locate(locator.String(text), Change{Anchor: cursor})
	if !ok {
		return Help{}, false
	}
	return t.resolve(h)
}

// Popup renders h as a popup anchored at its opening parenthesis.
func (t *Tracker) Popup(h Help) render.Popup {
	return render.Popup{
		Key:      h.Key,
		Content:  t.docs.Render(h.Entry, render.Signature, h.Active),
		Anchor:   h.Call.Open,
		Behavior: render.CoexistWithCompletion,
	}
}

func (t *Tracker) resolve(h Help) (Help, bool) {
	e, ok := t.catalog.Lookup(h.Key)
	if !ok || !e.IsFunction() {
		log().Debugf("no signature for %q", h.Key)
		return Help{}, false
	}
	h.Entry = e
	return h, true
}

// schedule re-scans the buffer once the settle delay has elapsed. The
// caller holds t.mu.
func (t *Tracker) schedule(buf Buffer) {
	gen := t.gen
	t.after(t.delay, func() {
		defer func() {
			if r := recover(); r != nil {
				log().Errorf("signature re-scan panic: %v", r)
			}
		}()
		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.gen {
			return
		}
		text, cursor := buf.Snapshot()
		h, ok := Locate(locator.String(text), Change{Anchor: cursor})
		if !ok {
			t.leave()
			return
		}
		t.show(h)
	})
}

// show displays h when it names a catalog function. The caller holds
// t.mu.
func (t *Tracker) show(h Help) {
	t.state = InsideCall
	h, ok := t.resolve(h)
	if !ok {
		return
	}
	if t.surface.Visible() {
		t.surface.Hide()
	}
	t.surface.Show(h, t.Popup(h))
}

// leave moves to Outside and hides a visible popup. The caller holds
// t.mu.
func (t *Tracker) leave() {
	t.state = Outside
	if t.surface.Visible() {
		t.surface.Hide()
	}
}

func hasVisible(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
