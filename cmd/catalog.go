// Copyright © 2026 The lovels authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/lovely2d/lovels/catalog"
	"github.com/spf13/cobra"
)

// CatalogCommand creates the "catalog" cobra command and its
// subcommands.
func CatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain API catalog files",
	}
	cmd.AddCommand(reorderCommand())
	return cmd
}

func reorderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reorder [flags] FILE",
		Short: "Reorder a catalog by key depth",
		Long: `Rewrite a catalog so that two-part keys (love.graphics) come first,
followed by three-part and four-part keys. Keys of any other depth follow
at the end. Order within a depth is preserved. The result is written as
JSON.

Examples:
  lovels catalog reorder love_api.json -o love_api.sorted.json
  lovels catalog reorder love_api.yaml > love_api.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			sorted := cat.SortByDepth()
			if output == "" {
				return sorted.WriteJSON(cmd.OutOrStdout())
			}
			return writeFile(output, sorted.WriteJSON)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Write the result to this file instead of stdout.")

	return cmd
}

// writeFile creates path and passes it to write, reporting the first
// error from writing or closing.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path from the command line
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func init() {
	rootCmd.AddCommand(CatalogCommand())
}
