package domain

import "time"

// Job represents one pending work item from the job ledger:
// a source document to recompress and a label for the output.
type Job struct {
	// Row is the 1-based ledger row this job came from.
	// Zero for jobs that did not originate from the ledger.
	Row int

	// Locator identifies where to fetch the source document
	// (a URL or a Drive file reference).
	Locator string

	// Label is the human-readable name for the output document.
	Label string
}

// JobOutcome classifies how a job finished.
type JobOutcome string

// Job outcomes written back to the ledger.
const (
	// JobOutcomeDone means the output was produced within budget.
	JobOutcomeDone JobOutcome = "done"

	// JobOutcomeBestEffort means the output was produced but still
	// exceeds the byte budget at minimum DPI and quality.
	JobOutcomeBestEffort JobOutcome = "best_effort"

	// JobOutcomeError means the job failed and no output exists.
	JobOutcomeError JobOutcome = "error"
)

// JobStatus is the per-item status written back to the ledger.
type JobStatus struct {
	// Outcome classifies the result.
	Outcome JobOutcome

	// Diagnostic carries the output link on success or the failure
	// message on error.
	Diagnostic string
}

// SearchResult is the terminal output of one size search run.
// It is immutable once produced: either the first attempt within
// budget, or the attempt at both floors when the budget is unreachable.
type SearchResult struct {
	// Bytes is the encoded output document.
	Bytes []byte

	// Size is len(Bytes), recorded separately so callers that drop
	// the payload keep the measurement.
	Size int64

	// DPI is the rasterisation resolution of the returned attempt.
	DPI int

	// Quality is the lossy encoding quality of the returned attempt.
	Quality int

	// Attempts counts how many encode attempts the search performed.
	Attempts int

	// WithinBudget reports whether Size fits the configured budget.
	// False only when both search floors were reached.
	WithinBudget bool
}

// HistoryEntry records one processed job for the local history store.
type HistoryEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Label is the job label the output was named after.
	Label string

	// Locator is the source document locator.
	Locator string

	// OutputRef is the sink reference or link for the stored output.
	OutputRef string

	// Size is the encoded output size in bytes.
	Size int64

	// DPI and Quality are the parameters of the returned attempt.
	DPI     int
	Quality int

	// WithinBudget reports whether the output met the byte budget.
	WithinBudget bool

	// ProcessedAt is when the job finished.
	ProcessedAt time.Time
}

// WorkerStats summarises one worker pass over the ledger.
type WorkerStats struct {
	// Processed counts jobs that produced an output document.
	Processed int

	// BestEffort counts processed jobs whose output exceeds the budget.
	BestEffort int

	// Failed counts jobs that errored without producing output.
	Failed int
}
