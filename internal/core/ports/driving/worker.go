package driving

import (
	"context"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// Worker drains the job ledger: fetch, compress, store, report status.
type Worker interface {
	// Run processes pending ledger items. In single-pass mode it
	// returns after one sweep; in polling mode it repeats until ctx
	// is cancelled. Per-job failures are written to the ledger and
	// counted, they do not stop the run.
	Run(ctx context.Context) (domain.WorkerStats, error)
}
