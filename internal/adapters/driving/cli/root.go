// Package cli implements the pagepress command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pagepress-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgPath string
	verbose bool

	// cfg is loaded by the persistent pre-run and shared by all commands.
	cfg *file.Config
)

var rootCmd = &cobra.Command{
	Use:   "pagepress",
	Short: "Compress PDFs to a byte budget",
	Long: `pagepress recompresses PDF documents to fit a byte budget.

Pages are rasterised and composed onto fixed-size canvases, then
re-encoded as JPEG pages at progressively lower quality and resolution
until the document fits the budget or the configured floors are reached.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := file.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if verbose {
			cfg.Verbose = true
		}
		logger.SetVerbose(cfg.Verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.pagepress/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
