// Copyright © 2026 The lovels authors

// Package signature tracks whether the cursor sits inside the argument
// list of a call and which positional argument it is editing. Locating a
// call is a pure scan over the buffer text; the Tracker adds the popup
// state and the debounced re-scan after bulk edits.
package signature

import (
	"regexp"
	"strings"

	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/locator"
)

// Change is a text edit: Text was inserted at Anchor. The cursor after
// the edit is Anchor+len(Text).
type Change struct {
	Anchor int
	Text   string
}

// End returns the cursor position after the edit.
func (c Change) End() int { return c.Anchor + len(c.Text) }

// Call is an enclosing call found around a cursor. Open and Close are the
// offsets of its parentheses.
type Call struct {
	Open  int
	Close int
	Name  string
}

// Help is the signature help for a cursor position.
type Help struct {
	Key    string
	Call   Call
	Active int
	// Entry is set once the key has been resolved against a catalog.
	Entry *catalog.Entry
}

// EnclosingCall finds the call whose argument list contains cursor. The
// backward scan counts closing parentheses so that complete nested calls
// are skipped, and gives up at a newline, a tab or the start of the text.
// The forward scan looks for the matching ')' and never leaves the
// current line.
func EnclosingCall(text locator.Text, cursor int) (Call, bool) {
	open := -1
	depth := 0
	for pos := cursor - 1; ; pos-- {
		c, ok := text.At(pos)
		if !ok || c == '\n' || c == '\t' {
			return Call{}, false
		}
		if c == ')' {
			depth++
		} else if c == '(' {
			if depth == 0 {
				open = pos
				break
			}
			depth--
		}
	}

	closing := -1
	depth = 0
	for pos := cursor; ; pos++ {
		c, ok := text.At(pos)
		if !ok || c == '\n' {
			return Call{}, false
		}
		if c == '(' {
			depth++
		} else if c == ')' {
			if depth == 0 {
				closing = pos
				break
			}
			depth--
		}
	}

	return Call{
		Open:  open,
		Close: closing,
		Name:  locator.NameBefore(text, open),
	}, true
}

// nestedCall matches an innermost parenthesised group together with the
// callee written right before it.
var nestedCall = regexp.MustCompile(`[\w.:]*\([^()]*\)`)

// StripNestedCalls removes complete nested calls from an argument list,
// innermost first, so that their commas are not counted.
func StripNestedCalls(args string) string {
	for {
		stripped := nestedCall.ReplaceAllString(args, "")
		if stripped == args {
			return args
		}
		args = stripped
	}
}

// ArgumentIndex returns the zero-based index of the argument being edited
// at the end of args. Commas inside string literals are counted like any
// other comma.
func ArgumentIndex(args string) int {
	return strings.Count(StripNestedCalls(args), ",")
}

// Locate returns the signature help for the cursor left by change. The
// argument span runs from the enclosing '(' to the cursor, so a comma
// that was just typed is counted.
func Locate(text locator.Text, change Change) (Help, bool) {
	cursor := change.End()
	call, ok := EnclosingCall(text, cursor)
	if !ok || call.Name == "" {
		return Help{}, false
	}
	args := locator.Slice(text, call.Open+1, cursor)
	return Help{
		Key:    call.Name,
		Call:   call,
		Active: ArgumentIndex(args),
	}, true
}
