// Copyright © 2026 The lovels authors

// Package lsp implements a Language Server Protocol server for the LÖVE
// API. It provides completion, hover, signature help and a command that
// resolves documentation deep links.
package lsp

import (
	"context"
	"os"
	"sync"

	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/provider"
	"github.com/lovely2d/lovels/render"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	glspserver "github.com/tliron/glsp/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const (
	serverName    = "lovels"
	serverVersion = "0.1.0"
	tracerName    = "lovels/lsp"
)

func log() commonlog.Logger { return commonlog.GetLogger("lovels.lsp") }

// Server is the LÖVE API language server.
type Server struct {
	handler protocol.Handler
	glspSrv *glspserver.Server
	docs    *DocumentStore

	catalog   *catalog.Catalog
	settings  Settings
	renderer  *render.CachedRenderer
	completer *provider.Completer
	hoverer   *provider.Hoverer
	tracer    trace.Tracer
	tp        trace.TracerProvider

	shutdownOnce sync.Once

	// exitFn is called on the LSP exit notification. Defaults to os.Exit.
	// Overridable for testing.
	exitFn func(int)
}

// Option configures the LSP server.
type Option func(*Server)

// WithCatalog serves c instead of the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Server) { s.catalog = c }
}

// WithSettings overrides the default settings.
func WithSettings(settings Settings) Option {
	return func(s *Server) { s.settings = settings }
}

// WithTracerProvider traces requests with tp instead of the global
// provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tp = tp }
}

// New creates a new language server.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		docs:     NewDocumentStore(),
		settings: DefaultSettings(),
		exitFn:   os.Exit,
	}
	for _, o := range opts {
		o(s)
	}
	if s.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		s.catalog = c
	}
	if s.tp == nil {
		s.tp = otel.GetTracerProvider()
	}
	s.tracer = s.tp.Tracer(tracerName)

	settings := s.settings.WithDefaults()
	s.settings = settings
	s.renderer = render.NewCachedRenderer(&render.Renderer{
		Format: render.Markdown,
		Links:  settings.Links(),
	}, settings.CacheSize)
	s.completer = provider.NewCompleter(s.catalog, settings.Root, s.renderer)
	s.hoverer = provider.NewHoverer(s.catalog, settings.Root, s.renderer)

	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		Exit:        s.exit,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentHover:         s.textDocumentHover,
		TextDocumentCompletion:    s.textDocumentCompletion,
		TextDocumentSignatureHelp: s.textDocumentSignatureHelp,
		WorkspaceExecuteCommand:   s.workspaceExecuteCommand,
	}

	s.glspSrv = glspserver.NewServer(&s.handler, serverName, false)
	return s, nil
}

// RunStdio starts the server using stdio transport.
func (s *Server) RunStdio() error {
	return s.glspSrv.RunStdio()
}

// RunTCP starts the server listening on the given address.
func (s *Server) RunTCP(addr string) error {
	return s.glspSrv.RunTCP(addr)
}

// initialize handles the LSP initialize request.
func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		log().Infof("initializing for %s", params.ClientInfo.Name)
	}

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", ":"},
	}

	capabilities.SignatureHelpProvider = &protocol.SignatureHelpOptions{
		TriggerCharacters:   []string{"(", ","},
		RetriggerCharacters: []string{" "},
	}

	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{render.ShowDocumentationCommand},
	}

	version := serverVersion
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

// initialized handles the initialized notification.
func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	log().Infof("serving %d catalog entries under %q", s.catalog.Len(), s.settings.Root)
	return nil
}

// shutdown handles the LSP shutdown request.
func (s *Server) shutdown(_ *glsp.Context) error {
	s.shutdownOnce.Do(func() {
		// Pending signature re-scans must not fire after shutdown.
		for _, doc := range s.docs.All() {
			doc.tracker.Stop()
		}
	})
	return nil
}

// exit handles the LSP exit notification by terminating the process.
func (s *Server) exit(_ *glsp.Context) error {
	s.exitFn(0)
	return nil
}

// setTrace handles the $/setTrace notification (required by some clients).
func (s *Server) setTrace(_ *glsp.Context, _ *protocol.SetTraceParams) error {
	return nil
}

// startSpan starts the span of one request.
func (s *Server) startSpan(method string, uri protocol.DocumentUri) trace.Span {
	_, span := s.tracer.Start(context.Background(), method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			semconv.RPCMethod(method),
			attribute.String("lovels.uri", string(uri)),
		))
	return span
}

// setKey records the catalog key a request resolved to.
func setKey(span trace.Span, key string) {
	span.SetAttributes(attribute.String("lovels.key", key))
}

func boolPtr(b bool) *bool {
	return &b
}
