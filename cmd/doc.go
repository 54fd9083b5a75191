// Copyright © 2026 The lovels authors

package cmd

import (
	"fmt"

	"github.com/lovely2d/lovels/render"
	"github.com/spf13/cobra"
)

// DocCommand creates the "doc" cobra command.
func DocCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)

	var (
		mode   string
		arg    int
		format string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "doc [flags] KEY",
		Short: "Show documentation for a LÖVE API entry",
		Long: `Show the documentation of a catalog entry, rendered the way the
language server shows it.

Modes:
  hover        Full documentation (default)
  completion   First sentence of the description
  signature    Signature line with the argument at --arg emphasised

Examples:
  lovels doc love.graphics.rectangle
  lovels doc --format markdown love.graphics.Image
  lovels doc --mode signature --arg 1 love.graphics.print`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := render.ParseMode(mode)
			if err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			cat, err := cfg.resolveCatalog()
			if err != nil {
				return err
			}
			e, ok := cat.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no entry for %q", args[0])
			}
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			r, err := terminalRenderer(settings, f, width, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Render(e, m, arg))
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "hover",
		`Render mode: "hover", "completion", or "signature".`)
	cmd.Flags().IntVarP(&arg, "arg", "a", render.NoHighlight,
		"Index of the argument emphasised in signature mode.")
	cmd.Flags().StringVarP(&format, "format", "f", "plain",
		`Output format: "plain" or "markdown".`)
	cmd.Flags().IntVarP(&width, "width", "w", 80,
		"Wrap plain descriptions at this width (0 disables wrapping).")

	return cmd
}

func init() {
	rootCmd.AddCommand(DocCommand())
}
