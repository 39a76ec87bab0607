package driven

import (
	"context"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// HistoryStore persists a local record of processed jobs.
type HistoryStore interface {
	// Record appends one processed-job entry.
	Record(ctx context.Context, entry domain.HistoryEntry) error

	// List returns the most recent entries, newest first.
	// limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Close releases the underlying storage.
	Close() error
}
