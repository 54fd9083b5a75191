// Copyright © 2026 The lovels authors

package locator

import "strings"

// Identifier runs end at whitespace or at an opening parenthesis.
var identifierStop = StopAt(" \t\n(")

// IdentifierBefore returns the dotted identifier that ends right before
// pos. It scans backward from pos-1 and stops at a space, tab, newline,
// opening parenthesis or the start of the text. A single '(' directly
// before the cursor is a call that was just opened and is stepped over,
// so the identifier of that call is returned.
func IdentifierBefore(text Text, pos int) string {
	start := pos - 1
	if c, ok := text.At(start); ok && c == '(' {
		start--
	}
	from, to := ScanWhile(text, start, Backward, identifierStop)
	return Slice(text, from, to)
}

// NameBefore returns the identifier that ends at end (exclusive), with no
// special handling of the character before end.
func NameBefore(text Text, end int) string {
	from, to := ScanWhile(text, end-1, Backward, identifierStop)
	return Slice(text, from, to)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c >= 0x80
}

func notWordChar(c byte) bool { return !isWordChar(c) }

// WordAt returns the bounds of the word under pos. A cursor sitting just
// past the end of a word selects that word. The range is empty when pos
// is not on a word.
func WordAt(text Text, pos int) (start, end int) {
	if c, ok := text.At(pos); !ok || !isWordChar(c) {
		if c, ok := text.At(pos - 1); !ok || !isWordChar(c) {
			return pos, pos
		}
		pos--
	}
	start, _ = ScanWhile(text, pos, Backward, notWordChar)
	_, end = ScanWhile(text, pos, Forward, notWordChar)
	return start, end
}

// QualifiedAt returns the word under pos qualified with everything that
// precedes it up to the previous whitespace or '('. Hovering "graphics"
// in "love.graphics.rectangle" yields "love.graphics".
func QualifiedAt(text Text, pos int) string {
	start, end := WordAt(text, pos)
	if start == end {
		return ""
	}
	return NameBefore(text, start) + Slice(text, start, end)
}

// HasRoot reports whether the dotted token begins with the root
// identifier.
func HasRoot(token, root string) bool {
	first, _, _ := strings.Cut(token, ".")
	return root != "" && first == root
}
