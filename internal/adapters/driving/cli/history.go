package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/storage/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently processed jobs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for _, e := range entries {
		outcome := "done"
		if !e.WithinBudget {
			outcome = "best effort"
		}
		cmd.Printf("%s  %-11s  %s\n", e.ProcessedAt.Format("2006-01-02 15:04"), outcome, e.Label)
		cmd.Printf("  %d bytes at %d dpi / quality %d", e.Size, e.DPI, e.Quality)
		if e.OutputRef != "" {
			cmd.Printf("  %s", e.OutputRef)
		}
		cmd.Println()
	}
	return nil
}
