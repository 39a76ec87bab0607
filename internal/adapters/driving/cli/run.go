package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/encoder/pdfcpu"
	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/raster/fitz"
	"github.com/custodia-labs/pagepress-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pagepress-cli/internal/connectors/dropbox"
	"github.com/custodia-labs/pagepress-cli/internal/connectors/google"
	gdrive "github.com/custodia-labs/pagepress-cli/internal/connectors/google/drive"
	gsheets "github.com/custodia-labs/pagepress-cli/internal/connectors/google/sheets"
	"github.com/custodia-labs/pagepress-cli/internal/connectors/httpsrc"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagepress-cli/internal/core/services"
	"github.com/custodia-labs/pagepress-cli/internal/logger"
)

var runOnce bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process pending jobs from the ledger spreadsheet",
	Long: `Reads pending rows from the configured Google Sheets ledger,
compresses each referenced document, uploads the result and writes the
outcome back to the sheet.

With poll_interval_seconds > 0 in the config, the worker keeps polling
until interrupted; --once forces a single sweep regardless.`,
	RunE: runWorker,
}

func init() {
	runCmd.Flags().BoolVar(&runOnce, "once", false, "run a single sweep and exit")
	rootCmd.AddCommand(runCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker, cleanup, err := buildWorker(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := worker.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("worker failed: %w", err)
	}

	cmd.Printf("Processed %d jobs (%d best-effort, %d failed)\n",
		stats.Processed, stats.BestEffort, stats.Failed)
	return nil
}

// buildWorker wires the full pipeline from the loaded configuration.
func buildWorker(ctx context.Context) (*services.JobWorker, func(), error) {
	g := cfg.Google
	if g.ClientID == "" || g.ClientSecret == "" || g.RefreshToken == "" {
		return nil, nil, errors.New("google credentials not configured (see config file or PAGEPRESS_GOOGLE_* environment variables)")
	}
	if g.SpreadsheetID == "" {
		return nil, nil, errors.New("google.spreadsheet_id not configured")
	}

	provider, err := google.NewRefreshTokenProvider(ctx, g.ClientID, g.ClientSecret, g.RefreshToken)
	if err != nil {
		return nil, nil, err
	}
	ts := provider.OAuth2TokenSource()

	sheetsSvc, err := google.NewSheetsService(ctx, ts)
	if err != nil {
		return nil, nil, err
	}
	driveSvc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, nil, err
	}

	ledger, err := gsheets.NewLedger(sheetsSvc, google.NewRateLimiter(google.ServiceSheets), gsheets.Config{
		SpreadsheetID: g.SpreadsheetID,
		Sheet:         g.Sheet,
		StartRow:      g.StartRow,
		StatusColumn:  g.StatusColumn,
	})
	if err != nil {
		return nil, nil, err
	}

	driveLimiter := google.NewRateLimiter(google.ServiceDrive)
	source := httpsrc.NewSource(gdrive.NewSource(driveSvc, driveLimiter))

	sink, err := buildSink(driveSvc, driveLimiter)
	if err != nil {
		return nil, nil, err
	}

	settings := cfg.Settings()
	encoder, err := pdfcpu.NewEncoder(settings.TargetWidthPt, settings.TargetHeightPt)
	if err != nil {
		return nil, nil, err
	}
	compressor, err := services.NewSizeCompressor(fitz.NewRasterizer(), encoder, settings)
	if err != nil {
		return nil, nil, err
	}

	history, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		// History is a convenience; the worker runs without it.
		logger.Warn("history store unavailable: %v", err)
		history = nil
	}
	cleanup := func() {
		if history != nil {
			_ = history.Close()
		}
	}

	interval := time.Duration(cfg.PollIntervalSeconds) * time.Second
	if runOnce {
		interval = 0
	}

	var historyStore driven.HistoryStore
	if history != nil {
		historyStore = history
	}
	return services.NewJobWorker(ledger, source, sink, compressor, historyStore, interval), cleanup, nil
}

func buildSink(driveSvc *drive.Service, limiter *google.RateLimiter) (driven.DocumentSink, error) {
	switch cfg.Sink {
	case "", file.SinkDrive:
		return gdrive.NewSink(driveSvc, limiter, cfg.Google.DriveFolderID), nil
	case file.SinkDropbox:
		return dropbox.NewSink(cfg.Dropbox.AccessToken, cfg.Dropbox.Folder)
	default:
		return nil, fmt.Errorf("unknown sink %q (want %q or %q)", cfg.Sink, file.SinkDrive, file.SinkDropbox)
	}
}
