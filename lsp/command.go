// Copyright © 2026 The lovels authors

package lsp

import (
	"fmt"

	"github.com/lovely2d/lovels/render"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// workspaceExecuteCommand handles workspace/executeCommand. The only
// command resolves a documentation deep link: its argument is a catalog
// key, or a complete deep link, and the result is the hover markdown of
// that key.
func (s *Server) workspaceExecuteCommand(_ *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	span := s.startSpan("workspace/executeCommand", "")
	defer span.End()

	if params.Command != render.ShowDocumentationCommand {
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
	if len(params.Arguments) != 1 {
		return nil, fmt.Errorf("%s: expected one argument, got %d", params.Command, len(params.Arguments))
	}
	key, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: argument must be a string", params.Command)
	}
	if k, ok := render.ParseDeepLink(key); ok {
		key = k
	}
	setKey(span, key)

	popup, ok := s.hoverer.Show(key, -1, render.CoexistWithCompletion)
	if !ok {
		return nil, nil
	}
	return protocol.MarkupContent{
		Kind:  protocol.MarkupKindMarkdown,
		Value: popup.Content,
	}, nil
}
