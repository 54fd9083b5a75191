// Copyright © 2026 The lovels authors

package cmd

import (
	"os"

	"github.com/lovely2d/lovels/browse"
	"github.com/lovely2d/lovels/render"
	"github.com/spf13/cobra"
)

// BrowseCommand creates the "browse" cobra command.
func BrowseCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)

	var width int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the LÖVE API interactively",
		Long: `Start an interactive documentation browser.

Enter a key to show its documentation, a prefix to list matching keys, or
a partial call to show its signature with the current argument
emphasised. Tab completes keys. Use Ctrl-D to exit.

Example session:
  love> love.graphics.rect
  love.graphics.rectangle
  love> love.graphics.rectangle("fill", 10,
  love.graphics.rectangle(mode: DrawMode, x: number, *y: number*, ...) -> nil`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := cfg.resolveCatalog()
			if err != nil {
				return err
			}
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			r, err := terminalRenderer(settings, render.Plain, width, os.Stderr)
			if err != nil {
				return err
			}
			return browse.Run(cat, browse.DefaultPrompt, browse.WithDocumenter(r))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80,
		"Wrap descriptions at this width (0 disables wrapping).")

	return cmd
}

func init() {
	rootCmd.AddCommand(BrowseCommand())
}
