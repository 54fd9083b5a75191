// Copyright © 2026 The lovels authors

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lovely2d/lovels/provider"
	"github.com/spf13/cobra"
)

// CompleteCommand creates the "complete" cobra command.
func CompleteCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)

	var all bool

	cmd := &cobra.Command{
		Use:   "complete PREFIX",
		Short: "List completions for a typed identifier",
		Long: `List the completions the language server offers for an identifier
typed before the cursor. Nothing is listed unless the identifier starts
with the configured root namespace. The server leaves filtering to the
client; this command keeps only labels extending PREFIX unless --all is
given.

Example:
  lovels complete love.graphics.re`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.resolveCatalog()
			if err != nil {
				return err
			}
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			completer := provider.NewCompleter(cat, settings.Root, nil)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, sug := range completer.Complete(args[0]) {
				if !all && !strings.HasPrefix(sug.Label, args[0]) {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", sug.Label, sug.Detail) //nolint:errcheck // flushed below
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false,
		"List every suggestion the server would send.")

	return cmd
}

func init() {
	rootCmd.AddCommand(CompleteCommand())
}
