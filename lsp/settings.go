// Copyright © 2026 The lovels authors

package lsp

import (
	"time"

	"github.com/lovely2d/lovels/render"
	"github.com/lovely2d/lovels/signature"
)

// Settings are the server options read from the configuration file,
// environment and flags.
type Settings struct {
	// Root is the top-level namespace that gates completion and hover.
	Root     string `mapstructure:"root"`
	WikiBase string `mapstructure:"wiki-base"`
	APIBase  string `mapstructure:"api-base"`
	// CacheSize bounds the number of cached hover renders.
	CacheSize int `mapstructure:"cache-size"`
	// Debounce is the settle delay of signature help after bulk edits.
	Debounce time.Duration `mapstructure:"debounce"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Root:      render.DefaultRoot,
		WikiBase:  render.DefaultWikiBase,
		APIBase:   render.DefaultAPIBase,
		CacheSize: render.DefaultCacheSize,
		Debounce:  signature.DefaultDelay,
	}
}

// WithDefaults fills zero fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.Root == "" {
		s.Root = d.Root
	}
	if s.WikiBase == "" {
		s.WikiBase = d.WikiBase
	}
	if s.APIBase == "" {
		s.APIBase = d.APIBase
	}
	if s.CacheSize <= 0 {
		s.CacheSize = d.CacheSize
	}
	if s.Debounce <= 0 {
		s.Debounce = d.Debounce
	}
	return s
}

// Links returns the outbound link configuration.
func (s Settings) Links() render.Links {
	return render.Links{WikiBase: s.WikiBase, APIBase: s.APIBase, Root: s.Root}
}
