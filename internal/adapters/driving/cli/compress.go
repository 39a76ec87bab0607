package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/encoder/pdfcpu"
	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/raster/fitz"
	"github.com/custodia-labs/pagepress-cli/internal/core/services"
)

var compressOutput string

var compressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Compress a local PDF to the configured byte budget",
	Long: `Compresses a single PDF file on disk.
The result is written next to the input as <name>.compressed.pdf
unless --output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "output file path")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	input := args[0]

	doc, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	settings := cfg.Settings()
	encoder, err := pdfcpu.NewEncoder(settings.TargetWidthPt, settings.TargetHeightPt)
	if err != nil {
		return err
	}
	compressor, err := services.NewSizeCompressor(fitz.NewRasterizer(), encoder, settings)
	if err != nil {
		return err
	}

	result, err := compressor.Compress(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	output := compressOutput
	if output == "" {
		output = strings.TrimSuffix(input, ".pdf") + ".compressed.pdf"
	}
	if err := os.WriteFile(output, result.Bytes, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	cmd.Printf("Wrote %s (%d bytes, %d dpi, quality %d, %d attempts)\n",
		output, result.Size, result.DPI, result.Quality, result.Attempts)
	if !result.WithinBudget {
		cmd.Printf("Warning: budget of %d bytes not met at minimum settings.\n", settings.ByteBudget)
	}
	return nil
}
