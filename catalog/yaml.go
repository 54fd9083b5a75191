// Copyright © 2026 The lovels authors

package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads an API description written as YAML. It accepts the same
// shape as Load and preserves mapping order.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return New()
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("reading catalog: line %d: expected mapping", root.Line)
	}
	var entries []*Entry
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		var item sourceItem
		if err := valNode.Decode(&item); err != nil {
			return nil, fmt.Errorf("reading catalog entry %q: %w", keyNode.Value, err)
		}
		e, err := item.entry(keyNode.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return New(entries...)
}
