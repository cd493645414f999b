// Package main provides the zotbib CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/zotbib/internal/action"
	"github.com/matsen/zotbib/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool
)

// v holds the resolved inputs: flags, action inputs, env and global config.
var v = config.NewViper()

// gha emits workflow commands when running under GitHub Actions.
// It is nil, and every call a no-op, until a command starts.
var gha *action.Runner

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		msg := err.Error()
		if hint := errorHint(err); hint != "" {
			msg += " (" + hint + ")"
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		gha.Error(msg)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "zotbib",
	Short: "Export a Zotero collection to a normalized BibTeX file",
	Long: `zotbib fetches every top-level item of a Zotero collection, applies
citation keys pinned in item notes ("Citation Key: <key>"), remaps entry
types and writes a BibTeX file.

Inputs come from flags, GitHub Actions inputs (INPUT_*), ZOTERO_* environment
variables, a .env file, or ~/.config/zotbib/config.yml, in that order.

Examples:
  zotbib --api-key $KEY --library-id 12345 --coll-key ABCD1234
  zotbib --library-id 999 --is-group true --coll-key ABCD1234 --out-bib-path docs/refs.bib
  zotbib --out-bib-path - > refs.bib`,
	Args:          cobra.NoArgs,
	RunE:          runExport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for ZOTERO_API_KEY)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output")
	rootCmd.Version = Version
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		gha = action.FromEnv(cmd.OutOrStdout())
	}

	for _, in := range config.Inputs {
		rootCmd.Flags().String(in.Name, in.Default, in.Usage)
		_ = v.BindPFlag(in.Name, rootCmd.Flags().Lookup(in.Name))
	}
}

// newLogger builds the stderr logger for a run.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
