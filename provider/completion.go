// Copyright © 2026 The lovels authors

// Package provider answers completion and hover queries against the API
// catalog. Providers are constructed with the catalog they serve and hold
// no other state, apart from the render cache behind their Documenter.
package provider

import (
	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/locator"
	"github.com/lovely2d/lovels/render"
	"github.com/tliron/commonlog"
)

// log returns the package logger. It is looked up on use so that the
// backend installed by the command line is picked up.
func log() commonlog.Logger { return commonlog.GetLogger("lovels.provider") }

// Kind is the editor-facing kind of a suggestion.
type Kind int

const (
	KindVariable Kind = iota
	KindFunction
	KindType
	KindModule
)

// KindOf maps a catalog prop type to a suggestion kind.
func KindOf(pt catalog.PropType) Kind {
	switch pt {
	case catalog.Function:
		return KindFunction
	case catalog.Type:
		return KindType
	case catalog.Module:
		return KindModule
	default:
		return KindVariable
	}
}

// SnippetCursor marks where the editor leaves the cursor after inserting
// a snippet.
const SnippetCursor = "$0"

// Suggestion is one completion item.
type Suggestion struct {
	// Label is the qualified key shown in the completion list.
	Label string
	Kind  Kind
	// Detail is the prop type of the entry.
	Detail string
	// InsertText is "key($0)" for functions and the bare key otherwise.
	InsertText string
	// Snippet reports whether InsertText contains a cursor placeholder.
	Snippet bool
	// Description is the short rendered description.
	Description string
}

// Completer produces completion suggestions.
type Completer struct {
	Catalog *catalog.Catalog
	Root    string
	Docs    render.Documenter
}

// NewCompleter creates a Completer for the catalog.
func NewCompleter(c *catalog.Catalog, root string, docs render.Documenter) *Completer {
	return &Completer{Catalog: c, Root: root, Docs: docs}
}

// Complete returns a suggestion for every catalog entry, in catalog
// order, when prefix starts with the root identifier. Any other prefix
// yields no suggestions. Suggestions are not filtered by the rest of the
// prefix; the editor does its own fuzzy filtering.
func (c *Completer) Complete(prefix string) []Suggestion {
	if !locator.HasRoot(prefix, c.Root) {
		log().Debugf("ignoring completion prefix %q", prefix)
		return nil
	}
	entries := c.Catalog.Entries()
	out := make([]Suggestion, 0, len(entries))
	for _, e := range entries {
		s := Suggestion{
			Label:      e.Key,
			Kind:       KindOf(e.PropType),
			Detail:     string(e.PropType),
			InsertText: e.Key,
		}
		if e.IsFunction() {
			s.InsertText = e.Key + "(" + SnippetCursor + ")"
			s.Snippet = true
		}
		if c.Docs != nil {
			s.Description = c.Docs.Render(e, render.Completion, render.NoHighlight)
		}
		out = append(out, s)
	}
	return out
}
