// Copyright © 2026 The lovels authors

package lsp

import (
	"github.com/lovely2d/lovels/signature"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDidOpen handles the textDocument/didOpen notification.
func (s *Server) textDocumentDidOpen(_ *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.Open(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.TextDocument.Text,
		s.newTracker,
	)
	return nil
}

// textDocumentDidChange handles the textDocument/didChange notification.
// The last positioned edit drives the signature tracker of the document.
func (s *Server) textDocumentDidChange(_ *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc, edits := s.docs.Change(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.ContentChanges,
	)
	if doc == nil {
		log().Warningf("change for unknown document %s", params.TextDocument.URI)
		return nil
	}
	if len(edits) > 0 {
		doc.tracker.OnTextChanged(doc, edits[len(edits)-1])
	}
	return nil
}

// textDocumentDidClose handles the textDocument/didClose notification.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(params.TextDocument.URI)
	return nil
}

func (s *Server) newTracker(surface signature.Surface) *signature.Tracker {
	return signature.NewTracker(s.catalog, s.renderer, surface, signature.WithDelay(s.settings.Debounce))
}
