// Copyright © 2026 The lovels authors

package provider

import (
	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/locator"
	"github.com/lovely2d/lovels/render"
)

// Hoverer resolves the token under a position to catalog documentation.
type Hoverer struct {
	Catalog *catalog.Catalog
	Root    string
	Docs    render.Documenter
}

// NewHoverer creates a Hoverer for the catalog.
func NewHoverer(c *catalog.Catalog, root string, docs render.Documenter) *Hoverer {
	return &Hoverer{Catalog: c, Root: root, Docs: docs}
}

// Resolve returns the catalog key under pos. The word under the cursor is
// qualified with the namespace written before it, and the result must
// start with the root identifier and exist verbatim in the catalog.
func (h *Hoverer) Resolve(text locator.Text, pos int) (string, bool) {
	key := locator.QualifiedAt(text, pos)
	if key == "" || !locator.HasRoot(key, h.Root) {
		return "", false
	}
	if _, ok := h.Catalog.Lookup(key); !ok {
		log().Debugf("no catalog entry for %q", key)
		return "", false
	}
	return key, true
}

// Hover renders the documentation of the key under pos as a popup
// anchored at pos that hides when the pointer moves away.
func (h *Hoverer) Hover(text locator.Text, pos int) (render.Popup, bool) {
	key, ok := h.Resolve(text, pos)
	if !ok {
		return render.Popup{}, false
	}
	return h.Show(key, pos, render.HideOnMouseMove)
}

// Show renders the documentation of key. It is also the target of deep
// links, which open with CoexistWithCompletion behaviour.
func (h *Hoverer) Show(key string, anchor int, behavior render.Behavior) (render.Popup, bool) {
	e, ok := h.Catalog.Lookup(key)
	if !ok {
		return render.Popup{}, false
	}
	return render.Popup{
		Key:      key,
		Content:  h.Docs.Render(e, render.Hover, render.NoHighlight),
		Anchor:   anchor,
		Behavior: behavior,
	}, true
}
