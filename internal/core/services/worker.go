package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pagepress-cli/internal/logger"
)

// Ensure JobWorker implements the interface.
var _ driving.Worker = (*JobWorker)(nil)

// JobWorker drains the job ledger: for every pending item it fetches
// the source document, runs the size search, stores the result and
// writes the item's status back. Per-job failures are reported to the
// ledger and do not stop the sweep.
type JobWorker struct {
	ledger     driven.JobLedger
	source     driven.DocumentSource
	sink       driven.DocumentSink
	compressor driving.Compressor

	// history is optional; nil disables local job history.
	history driven.HistoryStore

	// interval > 0 enables polling mode: sweeps repeat until the
	// context is cancelled.
	interval time.Duration
}

// NewJobWorker creates a worker. history may be nil.
func NewJobWorker(
	ledger driven.JobLedger,
	source driven.DocumentSource,
	sink driven.DocumentSink,
	compressor driving.Compressor,
	history driven.HistoryStore,
	interval time.Duration,
) *JobWorker {
	return &JobWorker{
		ledger:     ledger,
		source:     source,
		sink:       sink,
		compressor: compressor,
		history:    history,
		interval:   interval,
	}
}

// Run processes pending ledger items. With a zero interval it returns
// after a single sweep; otherwise it polls until ctx is cancelled and
// returns the accumulated stats.
func (w *JobWorker) Run(ctx context.Context) (domain.WorkerStats, error) {
	var total domain.WorkerStats

	for {
		stats, err := w.sweep(ctx)
		total.Processed += stats.Processed
		total.BestEffort += stats.BestEffort
		total.Failed += stats.Failed
		if err != nil {
			return total, err
		}
		if w.interval <= 0 {
			return total, nil
		}

		select {
		case <-ctx.Done():
			return total, ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

// sweep runs one pass over the pending ledger items.
func (w *JobWorker) sweep(ctx context.Context) (domain.WorkerStats, error) {
	var stats domain.WorkerStats

	jobs, err := w.ledger.Pending(ctx)
	if err != nil {
		return stats, fmt.Errorf("list pending jobs: %w", err)
	}
	logger.Info("ledger sweep: %d pending job(s)", len(jobs))

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		status, bestEffort, err := w.process(ctx, job)
		if err != nil {
			stats.Failed++
			logger.Warn("job %q failed: %v", job.Label, err)
			status = domain.JobStatus{Outcome: domain.JobOutcomeError, Diagnostic: err.Error()}
		} else {
			stats.Processed++
			if bestEffort {
				stats.BestEffort++
			}
		}

		if err := w.ledger.SetStatus(ctx, job, status); err != nil {
			// The output may already be stored; losing the status
			// write only leaves the row pending for the next sweep.
			logger.Warn("job %q: status write failed: %v", job.Label, err)
		}
	}
	return stats, nil
}

// process handles one job end to end and returns the status to write.
func (w *JobWorker) process(ctx context.Context, job domain.Job) (domain.JobStatus, bool, error) {
	doc, err := w.source.Fetch(ctx, job.Locator)
	if err != nil {
		return domain.JobStatus{}, false, fmt.Errorf("fetch %q: %w", job.Locator, err)
	}

	result, err := w.compressor.Compress(ctx, doc)
	if err != nil {
		return domain.JobStatus{}, false, fmt.Errorf("compress: %w", err)
	}

	name := domain.SanitizeFilename(job.Label)
	ref, err := w.sink.Store(ctx, result.Bytes, name)
	if err != nil {
		return domain.JobStatus{}, false, fmt.Errorf("store %q: %w", name, err)
	}

	link := ref
	if linker, ok := w.sink.(driven.PublicLinker); ok {
		url, err := linker.MakePublic(ctx, ref)
		if err != nil {
			return domain.JobStatus{}, false, fmt.Errorf("make %q public: %w", ref, err)
		}
		link = url
	}

	status := domain.JobStatus{
		Outcome: domain.JobOutcomeDone,
		Diagnostic: fmt.Sprintf("%s (%d bytes, %d dpi, quality %d)",
			link, result.Size, result.DPI, result.Quality),
	}
	if !result.WithinBudget {
		status.Outcome = domain.JobOutcomeBestEffort
		status.Diagnostic += " - budget not met at minimum settings"
	}

	w.recordHistory(ctx, job, link, result)
	return status, !result.WithinBudget, nil
}

func (w *JobWorker) recordHistory(ctx context.Context, job domain.Job, link string, result *domain.SearchResult) {
	if w.history == nil {
		return
	}
	entry := domain.HistoryEntry{
		Label:        job.Label,
		Locator:      job.Locator,
		OutputRef:    link,
		Size:         result.Size,
		DPI:          result.DPI,
		Quality:      result.Quality,
		WithinBudget: result.WithinBudget,
		ProcessedAt:  time.Now().UTC(),
	}
	if err := w.history.Record(ctx, entry); err != nil {
		logger.Warn("history write failed for %q: %v", job.Label, err)
	}
}
