// Copyright © 2026 The lovels authors

// Package render turns catalog entries into documentation fragments for
// completion items, hover popups and signature popups. Rendering is pure:
// the same entry, mode and highlight always produce the same content.
package render

import (
	"fmt"
	"strings"

	"github.com/lovely2d/lovels/catalog"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Mode selects which fragment is rendered.
type Mode int

const (
	// Completion renders the short description attached to a completion
	// item.
	Completion Mode = iota
	// Hover renders the full documentation of an entry.
	Hover
	// Signature renders the compact signature line with one argument
	// emphasised.
	Signature
)

func (m Mode) String() string {
	switch m {
	case Completion:
		return "completion"
	case Hover:
		return "hover"
	case Signature:
		return "signature"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the name of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "completion":
		return Completion, nil
	case "hover", "":
		return Hover, nil
	case "signature":
		return Signature, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

// Format is the markup of rendered content.
type Format int

const (
	Markdown Format = iota
	Plain
)

// ParseFormat parses "markdown" or "plain".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md":
		return Markdown, nil
	case "plain", "text", "":
		return Plain, nil
	}
	return 0, fmt.Errorf("unknown render format %q", s)
}

// NoHighlight renders a signature without an emphasised argument.
const NoHighlight = -1

// Documenter renders documentation for catalog entries.
type Documenter interface {
	Render(e *catalog.Entry, mode Mode, highlight int) string
}

// Renderer renders catalog entries in one format.
type Renderer struct {
	Format Format
	Links  Links
	// Palette colours plain output. The zero palette emits no escape
	// sequences.
	Palette Palette
	// Width wraps plain descriptions; zero disables wrapping.
	Width int
}

var _ Documenter = (*Renderer)(nil)

// Render renders e in the given mode. highlight is only used by the
// Signature mode; an index outside the declared arguments emphasises
// nothing. Missing entry fields render as empty strings.
func (r *Renderer) Render(e *catalog.Entry, mode Mode, highlight int) string {
	if e == nil {
		return ""
	}
	switch mode {
	case Completion:
		return r.completion(e)
	case Signature:
		return r.signature(e, highlight)
	default:
		return r.hover(e)
	}
}

// FirstSentence returns the text up to the first '.', terminated with a
// '.'. An empty description yields an empty string.
func FirstSentence(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	first, _, _ := strings.Cut(desc, ".")
	return first + "."
}

func (r *Renderer) completion(e *catalog.Entry) string {
	summary := FirstSentence(e.Description)
	if summary == "" {
		return ""
	}
	if r.Format == Plain {
		return summary
	}
	return fmt.Sprintf("[%s](%s)", escapeMarkdown(summary), DeepLink(e.Key))
}

// SignatureLine formats the signature of e. Functions render as
// key(arg: type = default, ...), followed by "-> ret: type, ..." or
// "-> nil" when withReturns is set. Other entries render as their bare
// key. The argument at highlight is passed through emph.
func SignatureLine(e *catalog.Entry, highlight int, withReturns bool, text, emph func(string) string) string {
	if text == nil {
		text = identity
	}
	if emph == nil {
		emph = text
	}
	if !e.IsFunction() {
		return text(e.Key)
	}
	var sb strings.Builder
	sb.WriteString(text(e.Key + "("))
	for i, arg := range e.Arguments {
		if i > 0 {
			sb.WriteString(text(", "))
		}
		param := ParamLabel(arg)
		if i == highlight {
			sb.WriteString(emph(param))
		} else {
			sb.WriteString(text(param))
		}
	}
	sb.WriteString(text(")"))
	if withReturns {
		sb.WriteString(text(" -> " + returnList(e.Returns)))
	}
	return sb.String()
}

// ParamLabel formats one argument of a signature line as
// "name: type" or "name: type = default".
func ParamLabel(arg catalog.Argument) string {
	if arg.Default != nil {
		return arg.Name + ": " + arg.Type + " = " + *arg.Default
	}
	return arg.Name + ": " + arg.Type
}

func returnList(rets []catalog.Return) string {
	if len(rets) == 0 {
		return "nil"
	}
	parts := make([]string, len(rets))
	for i, ret := range rets {
		parts[i] = ret.Name + ": " + ret.Type
	}
	return strings.Join(parts, ", ")
}

func identity(s string) string { return s }

func (r *Renderer) signature(e *catalog.Entry, highlight int) string {
	if r.Format == Plain {
		emph := func(s string) string { return "*" + s + "*" }
		if r.Palette.enabled() {
			emph = func(s string) string { return r.Palette.Emphasis + s + r.Palette.Reset }
		}
		return SignatureLine(e, highlight, true, nil, emph)
	}
	return SignatureLine(e, highlight, true, escapeMarkdown, func(s string) string {
		return "**" + escapeMarkdown(s) + "**"
	})
}

func (r *Renderer) hover(e *catalog.Entry) string {
	if r.Format == Plain {
		return r.hoverPlain(e)
	}
	var sb strings.Builder

	fmt.Fprintf(&sb, "```lua\n%s\n```\n\n", SignatureLine(e, NoHighlight, true, nil, nil))
	fmt.Fprintf(&sb, "**%s** %s", e.PropType, escapeMarkdown(displayName(e)))

	if len(e.Arguments) > 0 {
		sb.WriteString("\n")
		for _, arg := range e.Arguments {
			def := ""
			if arg.Default != nil {
				def = fmt.Sprintf(" [default: `%s`]", *arg.Default)
			}
			fmt.Fprintf(&sb, "\n- *@param* `%s` **%s** —%s %s", arg.Name, arg.Type, def, arg.Description)
		}
	}
	if len(e.Returns) > 0 {
		sb.WriteString("\n")
		for _, ret := range e.Returns {
			fmt.Fprintf(&sb, "\n- *@returns* `%s` **%s** — %s", ret.Name, ret.Type, ret.Description)
		}
	}
	if e.Description != "" {
		fmt.Fprintf(&sb, "\n\n%s", e.Description)
	}
	if wiki, api, ok := r.Links.For(e); ok {
		fmt.Fprintf(&sb, "\n\n[Wiki](%s) | [API](%s)", wiki, api)
	}
	return sb.String()
}

func (r *Renderer) hoverPlain(e *catalog.Entry) string {
	p := r.Palette
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s%s%s\n", p.Bold, SignatureLine(e, NoHighlight, true, nil, nil), p.Reset)
	fmt.Fprintf(&sb, "%s%s%s %s\n", p.Dim, e.PropType, p.Reset, displayName(e))

	if len(e.Arguments) > 0 {
		sb.WriteString("\n")
		for _, arg := range e.Arguments {
			def := ""
			if arg.Default != nil {
				def = fmt.Sprintf(" [default: %s]", *arg.Default)
			}
			fmt.Fprintf(&sb, "  @param %s %s —%s %s\n", arg.Name, arg.Type, def, arg.Description)
		}
	}
	if len(e.Returns) > 0 {
		sb.WriteString("\n")
		for _, ret := range e.Returns {
			fmt.Fprintf(&sb, "  @returns %s %s — %s\n", ret.Name, ret.Type, ret.Description)
		}
	}
	if e.Description != "" {
		desc := e.Description
		if r.Width > 0 {
			desc = wordwrap.String(desc, r.Width)
		}
		fmt.Fprintf(&sb, "\n%s\n", indent.String(desc, 2))
	}
	if wiki, api, ok := r.Links.For(e); ok {
		fmt.Fprintf(&sb, "\n  Wiki: %s\n  API:  %s\n", wiki, api)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// displayName is the short name of e, falling back to the last component
// of its key.
func displayName(e *catalog.Entry) string {
	if e.Name != "" {
		return e.Name
	}
	key := e.Key
	if i := strings.LastIndexAny(key, ".:"); i >= 0 {
		return key[i+1:]
	}
	return key
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
