// Copyright © 2026 The lovels authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lovely2d/lovels/catalog"
	"github.com/lovely2d/lovels/lsp"
	"github.com/lovely2d/lovels/render"
	"github.com/spf13/viper"
)

// Option configures an exported command factory (LSPCommand, DocCommand,
// ...).
type Option func(*cmdConfig)

type cmdConfig struct {
	catalog *catalog.Catalog
}

// WithCatalog injects the catalog served by the command. Without it the
// catalog is loaded from the "catalog" configuration key, falling back to
// the built-in API.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *cmdConfig) { cfg.catalog = c }
}

func newCmdConfig(opts ...Option) *cmdConfig {
	var cfg cmdConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &cfg
}

// resolveCatalog returns the injected catalog or loads the configured one,
// applying the configured order.
func (c *cmdConfig) resolveCatalog() (*catalog.Catalog, error) {
	cat := c.catalog
	if cat == nil {
		var err error
		if path := viper.GetString("catalog"); path != "" {
			cat, err = catalog.LoadFile(path)
		} else {
			cat, err = catalog.Default()
		}
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}
	switch order := viper.GetString("catalog-order"); order {
	case "", "source":
		return cat, nil
	case "depth":
		return cat.SortByDepth(), nil
	default:
		return nil, fmt.Errorf("invalid catalog-order %q: want source or depth", order)
	}
}

// loadSettings decodes the server settings from the configuration.
func loadSettings() (lsp.Settings, error) {
	settings := lsp.DefaultSettings()
	if err := viper.Unmarshal(&settings); err != nil {
		return lsp.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return settings.WithDefaults(), nil
}

// terminalRenderer builds a renderer for command output written to w.
// Plain output is coloured according to the "color" key.
func terminalRenderer(settings lsp.Settings, format render.Format, width int, w io.Writer) (*render.Renderer, error) {
	mode, err := render.ParseColorMode(viper.GetString("color"))
	if err != nil {
		return nil, err
	}
	r := &render.Renderer{
		Format: format,
		Links:  settings.Links(),
		Width:  width,
	}
	if format == render.Plain {
		f, _ := w.(*os.File)
		r.Palette = render.ChoosePalette(mode, f)
	}
	return r, nil
}
