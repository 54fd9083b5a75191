// Copyright © 2026 The lovels authors

package lsp

import (
	"github.com/lovely2d/lovels/locator"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	span := s.startSpan("textDocument/hover", params.TextDocument.URI)
	defer span.End()

	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	content, _ := doc.Snapshot()
	offset := offsetOf(content, params.Position)

	text := locator.String(content)
	popup, ok := s.hoverer.Hover(text, offset)
	if !ok {
		return nil, nil
	}
	setKey(span, popup.Key)

	start, end := locator.WordAt(text, offset)
	r := rangeAt(content, start, end)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: popup.Content,
		},
		Range: &r,
	}, nil
}
