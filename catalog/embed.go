// Copyright © 2026 The lovels authors

package catalog

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed love_api.json
var defaultJSON []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog compiled into the binary. It is used when no
// catalog file is configured.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(defaultJSON))
	})
	return defaultCat, defaultErr
}
