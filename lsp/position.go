// Copyright © 2026 The lovels authors

package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// offsetOf converts an LSP position to a byte offset in content.
func offsetOf(content string, pos protocol.Position) int {
	return min(max(pos.IndexIn(content), 0), len(content))
}

// positionAt converts a byte offset in content to an LSP position.
// Characters are counted in UTF-16 code units.
func positionAt(content string, offset int) protocol.Position {
	offset = min(max(offset, 0), len(content))
	before := content[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col := 0
	for _, r := range before[lineStart:] {
		if r >= 0x10000 {
			col += 2
		} else {
			col++
		}
	}
	return protocol.Position{
		Line:      safeUint(line),
		Character: safeUint(col),
	}
}

// rangeAt converts a byte span of content to an LSP range.
func rangeAt(content string, start, end int) protocol.Range {
	return protocol.Range{Start: positionAt(content, start), End: positionAt(content, end)}
}

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- offsets are bounded by the document size
}
