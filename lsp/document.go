// Copyright © 2026 The lovels authors

package lsp

import (
	"sync"

	"github.com/lovely2d/lovels/render"
	"github.com/lovely2d/lovels/signature"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document represents an open text document tracked by the LSP server.
type Document struct {
	mu      sync.Mutex
	URI     string
	Version int32
	Content string
	// cursor is the offset right after the last applied edit.
	cursor int

	tracker *signature.Tracker
	slot    signatureSlot
}

// Snapshot implements signature.Buffer.
func (d *Document) Snapshot() (string, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Content, d.cursor
}

// apply applies content changes in order and returns the edits that were
// made at a known position. A change without a range replaces the whole
// document and yields no edit.
func (d *Document) apply(changes []any) []signature.Change {
	var edits []signature.Change
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			d.Content = c.Text
			d.cursor = len(c.Text)
			edits = nil
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				d.Content = c.Text
				d.cursor = len(c.Text)
				edits = nil
				continue
			}
			start, end := c.Range.IndexesIn(d.Content)
			start, end = clampSpan(start, end, len(d.Content))
			d.Content = d.Content[:start] + c.Text + d.Content[end:]
			d.cursor = start + len(c.Text)
			edits = append(edits, signature.Change{Anchor: start, Text: c.Text})
		}
	}
	return edits
}

func clampSpan(start, end, n int) (int, int) {
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return start, end
}

// signatureSlot is the signature popup of a document. It implements
// signature.Surface; the signatureHelp request reads it back.
type signatureSlot struct {
	mu      sync.Mutex
	visible bool
	help    signature.Help
	popup   render.Popup
	// cursor is the document cursor the popup was computed for.
	cursor int
	doc     *Document
}

func (s *signatureSlot) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *signatureSlot) Show(h signature.Help, p render.Popup) {
	_, cursor := s.doc.Snapshot()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	s.help = h
	s.popup = p
	s.cursor = cursor
}

func (s *signatureSlot) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
}

// current returns the visible popup if it was computed for cursor.
func (s *signatureSlot) current(cursor int) (signature.Help, render.Popup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.visible || s.cursor != cursor {
		return signature.Help{}, render.Popup{}, false
	}
	return s.help, s.popup, true
}

// DocumentStore manages open documents with thread-safe access.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open adds a document to the store. track creates the signature tracker
// of the document from its popup slot.
func (s *DocumentStore) Open(uri string, version int32, content string, track func(signature.Surface) *signature.Tracker) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Content: content,
	}
	doc.slot.doc = doc
	doc.tracker = track(&doc.slot)
	s.mu.Lock()
	if old, ok := s.docs[uri]; ok {
		old.tracker.Stop()
	}
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change applies incremental changes to a document. It returns nil when
// the document is not open.
func (s *DocumentStore) Change(uri string, version int32, changes []any) (*Document, []signature.Change) {
	doc := s.Get(uri)
	if doc == nil {
		return nil, nil
	}
	doc.mu.Lock()
	doc.Version = version
	edits := doc.apply(changes)
	doc.mu.Unlock()
	return doc, edits
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	delete(s.docs, uri)
	s.mu.Unlock()
	if ok {
		doc.tracker.Stop()
	}
}

// Get retrieves a document by URI. Returns nil if not found.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns the open documents.
func (s *DocumentStore) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs
}
