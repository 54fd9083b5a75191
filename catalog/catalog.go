// Copyright © 2026 The lovels authors

// Package catalog holds the static description of the LÖVE scripting API:
// modules, types, functions and variables keyed by their qualified name.
// A Catalog is built once at startup and never mutated afterwards, so it
// can be shared freely between providers.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// PropType classifies a catalog entry.
type PropType string

const (
	Function PropType = "function"
	Type     PropType = "type"
	Module   PropType = "module"
	Variable PropType = "variable"
)

// ParsePropType converts the source representation of a prop type. An
// empty value means variable.
func ParsePropType(s string) (PropType, error) {
	switch PropType(s) {
	case "":
		return Variable, nil
	case Function, Type, Module, Variable:
		return PropType(s), nil
	}
	return "", fmt.Errorf("unknown prop type %q", s)
}

// Argument describes one declared parameter of a callable entry.
type Argument struct {
	Name        string
	Type        string
	Description string
	// Default is the literal default value, rendered verbatim. Nil when
	// the argument has no default.
	Default *string
}

// Return describes one declared return value.
type Return struct {
	Name        string
	Type        string
	Description string
}

// Entry is the documentation metadata for one qualified key.
type Entry struct {
	Key         string
	PropType    PropType
	Name        string
	Description string
	Arguments   []Argument
	Returns     []Return
}

// IsFunction reports whether the entry is callable.
func (e *Entry) IsFunction() bool {
	return e != nil && e.PropType == Function
}

// Catalog is an ordered, read-only mapping from qualified key to Entry.
type Catalog struct {
	entries []*Entry
	index   map[string]*Entry
}

// ErrEmptyKey is returned when an entry has no key.
var ErrEmptyKey = errors.New("catalog entry has an empty key")

// New builds a catalog from entries, keeping their order. Entries without
// a prop type become variables.
func New(entries ...*Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]*Entry, 0, len(entries)),
		index:   make(map[string]*Entry, len(entries)),
	}
	for _, e := range entries {
		if e == nil || e.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, dup := c.index[e.Key]; dup {
			return nil, fmt.Errorf("duplicate catalog key %q", e.Key)
		}
		if e.PropType == "" {
			e.PropType = Variable
		}
		c.entries = append(c.entries, e)
		c.index[e.Key] = e
	}
	return c, nil
}

// Lookup returns the entry stored under key.
func (c *Catalog) Lookup(key string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.index[key]
	return e, ok
}

// Entries returns the entries in catalog order. The slice is a copy; the
// entries themselves must not be modified.
func (c *Catalog) Entries() []*Entry {
	if c == nil {
		return nil
	}
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the keys in catalog order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// SortByDepth returns a copy of the catalog whose entries are ordered by
// the number of dotted components in their key: two-part keys first, then
// three, then four. Keys of any other depth keep their relative order and
// follow at the end. Ordering within a depth is stable.
func (c *Catalog) SortByDepth() *Catalog {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return depthRank(entries[i].Key) < depthRank(entries[j].Key)
	})
	out := &Catalog{entries: entries, index: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		out.index[e.Key] = e
	}
	return out
}

func depthRank(key string) int {
	n := len(strings.Split(key, "."))
	if n >= 2 && n <= 4 {
		return n
	}
	return 5
}

// Root returns the first component of a qualified token, splitting on
// '.' and ':'.
func Root(token string) string {
	if i := strings.IndexAny(token, ".:"); i >= 0 {
		return token[:i]
	}
	return token
}
