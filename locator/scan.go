// Copyright © 2026 The lovels authors

// Package locator recovers identifiers from raw buffer text around a
// cursor. Every locator is a pure function of (text, position) built on
// one scanner, ScanWhile, parameterised by direction and stop characters.
package locator

// Text is read-by-offset access to a buffer. At reports false for
// positions outside [0, Len()), which scanners treat as a boundary.
type Text interface {
	At(pos int) (byte, bool)
	Len() int
}

// String adapts a plain string to Text.
type String string

// At implements Text.
func (s String) At(pos int) (byte, bool) {
	if pos < 0 || pos >= len(s) {
		return 0, false
	}
	return s[pos], true
}

// Len implements Text.
func (s String) Len() int { return len(s) }

// Direction of a scan.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// StopFunc reports whether a scan must stop at c. The character that
// stops a scan is not part of the scanned run.
type StopFunc func(c byte) bool

// StopAt returns a StopFunc matching any of chars.
func StopAt(chars string) StopFunc {
	var set [256]bool
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return func(c byte) bool { return set[c] }
}

// ScanWhile walks from start in dir while stop reports false, and returns
// the half-open range [from, to) of the characters it passed over. The
// walk ends at the first stop character or at a text boundary; it never
// reads outside the text. A start outside the text yields an empty range.
func ScanWhile(text Text, start int, dir Direction, stop StopFunc) (from, to int) {
	pos := start
	for {
		c, ok := text.At(pos)
		if !ok || stop(c) {
			break
		}
		pos += int(dir)
	}
	if dir == Backward {
		return pos + 1, start + 1
	}
	return start, pos
}

// Slice returns the text in [from, to), clamped to the text bounds.
func Slice(text Text, from, to int) string {
	if s, ok := text.(String); ok {
		from, to = clamp(from, to, len(s))
		return string(s[from:to])
	}
	from, to = clamp(from, to, text.Len())
	buf := make([]byte, 0, to-from)
	for i := from; i < to; i++ {
		c, _ := text.At(i)
		buf = append(buf, c)
	}
	return string(buf)
}

func clamp(from, to, n int) (int, int) {
	if from < 0 {
		from = 0
	}
	if from > n {
		from = n
	}
	if to > n {
		to = n
	}
	if to < from {
		to = from
	}
	return from, to
}
