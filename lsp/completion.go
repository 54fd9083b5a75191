// Copyright © 2026 The lovels authors

package lsp

import (
	"fmt"

	"github.com/lovely2d/lovels/locator"
	"github.com/lovely2d/lovels/provider"
	"github.com/tliron/glsp"
	"go.opentelemetry.io/otel/attribute"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentCompletion handles the textDocument/completion request. The
// list is always incomplete so that the client asks again as the prefix
// grows.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	span := s.startSpan("textDocument/completion", params.TextDocument.URI)
	defer span.End()

	list := &protocol.CompletionList{IsIncomplete: true, Items: []protocol.CompletionItem{}}
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return list, nil
	}
	content, _ := doc.Snapshot()
	offset := offsetOf(content, params.Position)
	text := locator.String(content)

	// A call was just opened, typically by accepting a completion. Signature
	// help takes over from here.
	if c, ok := text.At(offset - 1); ok && c == '(' {
		return list, nil
	}

	prefix := locator.IdentifierBefore(text, offset)
	suggestions := s.completer.Complete(prefix)
	if len(suggestions) == 0 {
		return list, nil
	}
	span.SetAttributes(attribute.String("lovels.prefix", prefix))

	replace := rangeAt(content, offset-len(prefix), offset)
	for i, sug := range suggestions {
		list.Items = append(list.Items, completionItem(sug, i, replace))
	}
	return list, nil
}

// completionItem converts a suggestion to an LSP completion item that
// replaces the whole typed identifier.
func completionItem(sug provider.Suggestion, index int, replace protocol.Range) protocol.CompletionItem {
	kind := mapCompletionItemKind(sug.Kind)
	format := protocol.InsertTextFormatPlainText
	if sug.Snippet {
		format = protocol.InsertTextFormatSnippet
	}
	detail := sug.Detail
	sortText := fmt.Sprintf("%05d", index)
	filterText := sug.Label
	item := protocol.CompletionItem{
		Label:            sug.Label,
		Kind:             &kind,
		Detail:           &detail,
		SortText:         &sortText,
		FilterText:       &filterText,
		InsertTextFormat: &format,
		TextEdit: protocol.TextEdit{
			Range:   replace,
			NewText: sug.InsertText,
		},
	}
	if sug.Description != "" {
		item.Documentation = &protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sug.Description,
		}
	}
	return item
}

// mapCompletionItemKind converts a suggestion kind to an LSP
// CompletionItemKind.
func mapCompletionItemKind(kind provider.Kind) protocol.CompletionItemKind {
	switch kind {
	case provider.KindFunction:
		return protocol.CompletionItemKindFunction
	case provider.KindType:
		return protocol.CompletionItemKindClass
	case provider.KindModule:
		return protocol.CompletionItemKindModule
	default:
		return protocol.CompletionItemKindVariable
	}
}
