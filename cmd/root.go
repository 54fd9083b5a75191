// Copyright © 2026 The lovels authors

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lovels",
	Short: "lovels — LÖVE API completion, hover and signature help",
	Long: `lovels provides editor assistance for programs written against the
LÖVE game framework API: completion of qualified names such as
love.graphics.rectangle, hover documentation and signature help that
follows the argument being typed.

Getting started:
  lovels lsp                            Start the language server on stdio
  lovels doc love.graphics.rectangle    Show documentation for an entry
  lovels doc --mode signature --arg 2 love.graphics.rectangle
  lovels complete love.graphics.re      List completions for a prefix
  lovels browse                         Browse the API interactively
  lovels catalog reorder api.json       Reorder a catalog by key depth

Configuration is read from $HOME/.lovels.yaml (or --config) and from
LOVELS_* environment variables, e.g. LOVELS_ROOT or LOVELS_CACHE_SIZE.

Keys:
  catalog         Catalog file (JSON or YAML); empty uses the built-in API
  catalog-order   "source" or "depth"
  root            Namespace that gates completion and hover (love)
  wiki-base       Base of wiki links
  api-base        Base of API reference links
  cache-size      Number of hover renders kept (10)
  debounce        Signature help delay after bulk edits (50ms)
  color           "auto", "always" or "never"
  verbosity       Log verbosity
  log-file        Log to a file instead of stderr`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lovels.yaml)")
	flags.String("color", "auto", `Control colored output: "auto", "always", or "never".`)
	flags.String("catalog", "", "Catalog file to load instead of the built-in API.")
	flags.String("catalog-order", "source", `Catalog order: "source" or "depth".`)
	flags.String("root", "", "Top-level namespace of the API (default love).")
	flags.CountP("verbose", "v", "Increase log verbosity (repeatable).")
	flags.String("log-file", "", "Write logs to a file instead of stderr.")

	bindFlags(flags, map[string]string{
		"color":         "color",
		"catalog":       "catalog",
		"catalog-order": "catalog-order",
		"root":          "root",
		"verbosity":     "verbose",
		"log-file":      "log-file",
	})
}

// bindFlags binds configuration keys to the flags named by keys.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lovels" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lovels")
	}

	viper.SetEnvPrefix("LOVELS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		commonlog.GetLogger("lovels.cmd").Infof("using config file %s", viper.ConfigFileUsed())
	}
}

// configureLogging installs the log verbosity and destination. The
// language server speaks on stdout, so logs never go there.
func configureLogging() {
	var path *string
	if p := viper.GetString("log-file"); p != "" {
		path = &p
	}
	commonlog.Configure(viper.GetInt("verbosity"), path)
}
