// Copyright © 2026 The lovels authors

package browse

import (
	"strings"

	"github.com/lovely2d/lovels/catalog"
)

// keyCompleter implements readline.AutoCompleter by enumerating catalog
// keys that extend the identifier being typed.
type keyCompleter struct {
	catalog *catalog.Catalog
}

func (c *keyCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the key being typed (backwards from cursor to whitespace or open paren).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '(' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectKeys(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, key := range candidates {
		suffix := key[len(prefix):]
		result = append(result, []rune(suffix))
	}
	return result, len([]rune(prefix))
}

// collectKeys returns the keys starting with prefix in catalog order.
func (c *keyCompleter) collectKeys(prefix string) []string {
	var result []string
	for _, key := range c.catalog.Keys() {
		if strings.HasPrefix(key, prefix) {
			result = append(result, key)
		}
	}
	return result
}
