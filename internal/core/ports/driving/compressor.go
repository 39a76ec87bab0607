package driving

import (
	"context"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// Compressor runs the size-constrained recompression search for one
// source document.
type Compressor interface {
	// Compress rasterises, composes and encodes doc across the
	// configured (DPI, quality) schedule and returns the first attempt
	// within budget, or the floor attempt when the budget is
	// unreachable (SearchResult.WithinBudget is false; this is a
	// result state, not an error).
	//
	// A decode failure aborts the whole search: no partial result is
	// ever returned alongside an error.
	Compress(ctx context.Context, doc []byte) (*domain.SearchResult, error)
}
