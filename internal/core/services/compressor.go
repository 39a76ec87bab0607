package services

import (
	"context"
	"fmt"
	"image"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pagepress-cli/internal/logger"
)

// Ensure SizeCompressor implements the interface.
var _ driving.Compressor = (*SizeCompressor)(nil)

// SizeCompressor is the size-constrained recompression search. It
// walks the precomputed (DPI, quality) schedule - quality degrades
// before resolution, quality resets on every resolution drop - and
// stops at the first attempt whose encoded size fits the byte budget,
// or at the floor attempt when the budget is unreachable.
type SizeCompressor struct {
	rasterizer driven.PageRasterizer
	encoder    driven.DocumentEncoder
	composer   *CanvasComposer
	settings   domain.Settings
}

// NewSizeCompressor creates a compressor for the given settings.
// Invalid settings (an empty search space, non-positive target size or
// budget) are rejected up front as a usage error.
func NewSizeCompressor(
	rasterizer driven.PageRasterizer,
	encoder driven.DocumentEncoder,
	settings domain.Settings,
) (*SizeCompressor, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &SizeCompressor{
		rasterizer: rasterizer,
		encoder:    encoder,
		composer:   NewCanvasComposer(),
		settings:   settings,
	}, nil
}

// Settings returns the immutable search configuration.
func (c *SizeCompressor) Settings() domain.Settings {
	return c.settings
}

// Compress runs the search for one source document.
//
// Rasters and canvases are transient per DPI level: quality-only
// transitions reuse the composed canvases and re-encode, since quality
// only affects the encode stage. Rasterisation failures abort the
// whole search with no partial result.
func (c *SizeCompressor) Compress(ctx context.Context, doc []byte) (*domain.SearchResult, error) {
	schedule := domain.NewSchedule(c.settings)

	var (
		canvases []*image.RGBA
		curDPI   = -1
		attempts int
		last     *domain.SearchResult
	)
	for _, p := range schedule {
		if p.DPI != curDPI {
			rasters, err := c.rasterizer.Rasterize(ctx, doc, p.DPI)
			if err != nil {
				return nil, fmt.Errorf("rasterize at %d dpi: %w", p.DPI, err)
			}
			canvases, err = c.composer.Compose(rasters, c.settings.TargetWidthPt, c.settings.TargetHeightPt, p.DPI)
			if err != nil {
				return nil, err
			}
			curDPI = p.DPI
		}

		data, err := c.encoder.Encode(canvases, p.Quality)
		if err != nil {
			return nil, fmt.Errorf("encode at quality %d: %w", p.Quality, err)
		}
		attempts++

		size := int64(len(data))
		logger.Debug("attempt %d: dpi=%d quality=%d size=%d budget=%d",
			attempts, p.DPI, p.Quality, size, c.settings.ByteBudget)

		last = &domain.SearchResult{
			Bytes:        data,
			Size:         size,
			DPI:          p.DPI,
			Quality:      p.Quality,
			Attempts:     attempts,
			WithinBudget: size <= c.settings.ByteBudget,
		}
		if last.WithinBudget {
			return last, nil
		}
	}

	// Both floors reached: best-effort result, not an error.
	logger.Info("budget unreachable: returning floor attempt (%d bytes over budget)",
		last.Size-c.settings.ByteBudget)
	return last, nil
}
