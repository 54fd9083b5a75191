// Copyright © 2026 The lovels authors

package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sourceItem mirrors one value of the API description file:
//
//	"love.graphics.rectangle": { "meta": { "prop_type": "function", ... } }
type sourceItem struct {
	Meta sourceMeta `json:"meta" yaml:"meta"`
}

type sourceMeta struct {
	PropType    *string          `json:"prop_type" yaml:"prop_type"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Arguments   []sourceArgument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Returns     []sourceReturn   `json:"returns,omitempty" yaml:"returns,omitempty"`
}

type sourceArgument struct {
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type" yaml:"type"`
	Description string  `json:"description" yaml:"description"`
	Default     *string `json:"default,omitempty" yaml:"default,omitempty"`
}

type sourceReturn struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

func (item *sourceItem) entry(key string) (*Entry, error) {
	var pt string
	if item.Meta.PropType != nil {
		pt = *item.Meta.PropType
	}
	propType, err := ParsePropType(pt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	e := &Entry{
		Key:         key,
		PropType:    propType,
		Name:        item.Meta.Name,
		Description: item.Meta.Description,
	}
	for _, a := range item.Meta.Arguments {
		e.Arguments = append(e.Arguments, Argument(a))
	}
	for _, r := range item.Meta.Returns {
		e.Returns = append(e.Returns, Return(r))
	}
	return e, nil
}

func sourceFromEntry(e *Entry) sourceItem {
	pt := string(e.PropType)
	item := sourceItem{Meta: sourceMeta{
		PropType:    &pt,
		Name:        e.Name,
		Description: e.Description,
	}}
	for _, a := range e.Arguments {
		item.Meta.Arguments = append(item.Meta.Arguments, sourceArgument(a))
	}
	for _, r := range e.Returns {
		item.Meta.Returns = append(item.Meta.Returns, sourceReturn(r))
	}
	return item
}

// Load reads a JSON API description. The order of keys in the source
// object becomes the catalog order.
func Load(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("reading catalog: expected object, got %v", tok)
	}
	var entries []*Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading catalog key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("reading catalog: unexpected token %v", tok)
		}
		var item sourceItem
		if err := dec.Decode(&item); err != nil {
			return nil, fmt.Errorf("reading catalog entry %q: %w", key, err)
		}
		e, err := item.entry(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return New(entries...)
}

// LoadFile reads a catalog from path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return Load(f)
	}
}

// WriteJSON writes the catalog in the source JSON shape, preserving
// catalog order.
func (c *Catalog) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("{"); err != nil {
		return err
	}
	for i, e := range c.Entries() {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(sourceFromEntry(e))
		if err != nil {
			return fmt.Errorf("encoding %q: %w", e.Key, err)
		}
		if _, err := fmt.Fprintf(bw, "%s:%s", k, v); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}
	return bw.Flush()
}
