// Copyright © 2026 The lovels authors

package lsp

import (
	"github.com/lovely2d/lovels/render"
	"github.com/lovely2d/lovels/signature"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentSignatureHelp handles textDocument/signatureHelp requests.
// The popup maintained by the document's tracker is returned when it was
// computed for the requested position; otherwise the enclosing call is
// located and rendered on demand.
func (s *Server) textDocumentSignatureHelp(_ *glsp.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	span := s.startSpan("textDocument/signatureHelp", params.TextDocument.URI)
	defer span.End()

	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	content, _ := doc.Snapshot()
	offset := offsetOf(content, params.Position)

	h, popup, ok := doc.slot.current(offset)
	if !ok {
		h, ok = doc.tracker.At(content, offset)
		if !ok {
			return nil, nil
		}
		popup = doc.tracker.Popup(h)
	}
	setKey(span, h.Key)
	return buildSignatureHelp(h, popup), nil
}

// buildSignatureHelp constructs an LSP SignatureHelp with offset-based
// parameter labels. The signature popup, with the active argument
// emphasised, heads the documentation. Clients highlight parameter 0 for
// an out-of-range active index, so a cursor past the last argument gets
// a signature without parameters.
func buildSignatureHelp(h signature.Help, popup render.Popup) *protocol.SignatureHelp {
	e := h.Entry
	label := render.SignatureLine(e, render.NoHighlight, true, nil, nil)

	params := []protocol.ParameterInformation{}
	offset := len(e.Key) + len("(")
	for _, arg := range e.Arguments {
		start := offset
		end := offset + len(render.ParamLabel(arg))
		pi := protocol.ParameterInformation{
			Label: []protocol.UInteger{safeUint(start), safeUint(end)},
		}
		if arg.Description != "" {
			pi.Documentation = arg.Description
		}
		params = append(params, pi)
		offset = end + len(", ")
	}

	if h.Active < 0 || h.Active >= len(params) {
		params = []protocol.ParameterInformation{}
	}

	doc := popup.Content
	if e.Description != "" {
		doc += "\n\n" + e.Description
	}
	sigInfo := protocol.SignatureInformation{
		Label:      label,
		Parameters: params,
		Documentation: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: doc,
		},
	}

	sh := &protocol.SignatureHelp{
		Signatures:      []protocol.SignatureInformation{sigInfo},
		ActiveSignature: uintPtr(0),
	}
	if len(params) > 0 {
		active := safeUint(h.Active)
		sh.ActiveParameter = &active
	}
	return sh
}

func uintPtr(v uint32) *uint32 {
	return &v
}
