// Copyright © 2026 The lovels authors

package cmd

import (
	"fmt"

	"github.com/lovely2d/lovels/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

// LSPCommand creates the "lsp" cobra command with optional embedder
// configuration. Embedders can pass WithCatalog to serve their own API
// description.
func LSPCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)

	var (
		stdio bool
		port  int
	)

	cmd := &cobra.Command{
		Use:   "lsp [flags]",
		Short: "Start the lovels Language Server Protocol server",
		Long: `Start an LSP server for Lua programs using the LÖVE API.

The language server provides completion of qualified API names, hover
documentation with links to the wiki and API reference, and signature
help that tracks the argument under the cursor.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Examples:
  lovels lsp                           Start with stdio transport
  lovels lsp --stdio                   Same as above (explicit)
  lovels lsp --port 7998               Start with TCP on port 7998

Editor configuration (VS Code):
  Install a generic LSP client extension and configure it to run
  "lovels lsp --stdio" for .lua files.`,
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
			srv, err := lsp.New(lsp.WithCatalog(cat), lsp.WithSettings(settings))
			if err != nil {
				return err
			}

			if !stdio && port > 0 {
				addr := fmt.Sprintf("localhost:%d", port)
				commonlog.GetLogger("lovels.cmd").Noticef("lovels LSP server listening on %s", addr)
				if err := srv.RunTCP(addr); err != nil {
					return fmt.Errorf("lsp server error: %w", err)
				}
				return nil
			}
			if err := srv.RunStdio(); err != nil {
				return fmt.Errorf("lsp server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	cmd.Flags().IntVar(&port, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")

	return cmd
}

func init() {
	rootCmd.AddCommand(LSPCommand())
}
