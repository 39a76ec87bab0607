// Package fitz implements the PageRasterizer port with MuPDF via
// gen2brain/go-fitz.
package fitz

import (
	"context"
	"fmt"
	"image"

	mupdf "github.com/gen2brain/go-fitz"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// Ensure Rasterizer implements the interface.
var _ driven.PageRasterizer = (*Rasterizer)(nil)

// Rasterizer renders PDF pages into RGBA rasters. It is stateless:
// every call opens the document fresh, so calls share nothing and
// rendering stays deterministic per (doc, dpi).
type Rasterizer struct{}

// NewRasterizer creates a MuPDF-backed rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize renders every page of doc at the given DPI, in page order.
func (r *Rasterizer) Rasterize(ctx context.Context, doc []byte, dpi int) ([]image.Image, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("%w: dpi must be positive, got %d", domain.ErrInvalidInput, dpi)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := mupdf.NewFromMemory(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	defer d.Close()

	n := d.NumPage()
	if n == 0 {
		return nil, domain.ErrEmptyDocument
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := d.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("%w: render page %d: %v", domain.ErrDecode, i+1, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}
