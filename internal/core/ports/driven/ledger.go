package driven

import (
	"context"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// JobLedger exposes pending work items and accepts per-item status
// writes. The canonical implementation is a spreadsheet of
// (locator, label, status) rows, but the core does not care.
type JobLedger interface {
	// Pending returns the work items that have no status yet,
	// in ledger order.
	Pending(ctx context.Context) ([]domain.Job, error)

	// SetStatus writes the outcome and diagnostic for one item.
	SetStatus(ctx context.Context, job domain.Job, status domain.JobStatus) error
}
