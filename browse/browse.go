// Copyright © 2026 The lovels authors

// Package browse implements an interactive documentation browser over a
// catalog. Each line entered is either a catalog key, whose hover
// documentation is printed, a prefix, whose matching keys are listed, or
// a partial call such as "love.graphics.print(text, ", whose signature
// is printed with the active argument emphasised.
package browse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/locator"
	"github.com/lovely2d/lovels/render"
	"github.com/lovely2d/lovels/signature"
)

// DefaultPrompt is the prompt shown by the browser.
const DefaultPrompt = "love> "

// maxListed bounds the number of keys listed for a prefix.
const maxListed = 20

type config struct {
	stdin   io.ReadCloser
	stderr  io.WriteCloser
	docs    render.Documenter
	history string
}

func newConfig(opts ...Option) *config {
	config := &config{history: historyPath()}
	for _, opt := range opts {
		opt(config)
	}
	if config.docs == nil {
		config.docs = &render.Renderer{Format: render.Plain}
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the browser.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the browser.
func WithStderr(stderr io.WriteCloser) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithDocumenter sets the renderer used for entries. It should produce
// plain text.
func WithDocumenter(docs render.Documenter) Option {
	return func(c *config) {
		c.docs = docs
	}
}

// WithHistoryFile overrides the history file. An empty path disables
// history.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.history = path
	}
}

// Run reads lines until end of input, printing documentation for each.
func Run(c *catalog.Catalog, prompt string, opts ...Option) error {
	cfg := newConfig(opts...)
	var out io.Writer = os.Stderr
	if cfg.stderr != nil {
		out = cfg.stderr
	}
	ensureHistoryFilePermissions(cfg.history)

	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       cfg.history,
		HistorySearchFold: true,
		AutoComplete:      &keyCompleter{catalog: c},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	b := &browser{catalog: c, docs: cfg.docs, out: out}
	for {
		line, err := rl.ReadSlice()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		b.lookup(string(line))
	}
}

type browser struct {
	catalog *catalog.Catalog
	docs    render.Documenter
	out     io.Writer
}

func (b *browser) lookup(line string) {
	if strings.Contains(line, "(") {
		b.signature(line)
		return
	}
	if e, ok := b.catalog.Lookup(line); ok {
		b.println(b.docs.Render(e, render.Hover, render.NoHighlight))
		return
	}
	keys := (&keyCompleter{catalog: b.catalog}).collectKeys(line)
	switch {
	case len(keys) == 0:
		b.println(fmt.Sprintf("no entry for %q", line))
	case len(keys) > maxListed:
		b.println(strings.Join(keys[:maxListed], "\n"))
		b.println(fmt.Sprintf("... and %d more", len(keys)-maxListed))
	default:
		b.println(strings.Join(keys, "\n"))
	}
}

// signature treats line as a call typed up to the cursor. The closing
// parenthesis is supplied so that the call is complete on its line.
func (b *browser) signature(line string) {
	text := line
	if !strings.HasSuffix(text, ")") {
		text += ")"
	}
	cursor := len(line)
	if strings.HasSuffix(line, ")") {
		cursor--
	}
	h, ok := signature.Locate(locator.String(text), signature.Change{Anchor: cursor})
	if !ok {
		b.println(fmt.Sprintf("no call in %q", line))
		return
	}
	e, ok := b.catalog.Lookup(h.Key)
	if !ok || !e.IsFunction() {
		b.println(fmt.Sprintf("no function %q", h.Key))
		return
	}
	b.println(b.docs.Render(e, render.Signature, h.Active))
}

func (b *browser) println(s string) {
	fmt.Fprintln(b.out, s) //nolint:errcheck // best-effort output
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lovels_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to the owner.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return
	}
	f.Close()                 //nolint:errcheck,gosec // only created for its mode
	_ = os.Chmod(path, 0o600) //nolint:gosec // owner-only history
}
