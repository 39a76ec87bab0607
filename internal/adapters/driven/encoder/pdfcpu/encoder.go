// Package pdfcpu implements the DocumentEncoder port: canvases are
// JPEG-compressed and assembled into one PDF with pdfcpu.
package pdfcpu

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.DocumentEncoder = (*Encoder)(nil)

// Encoder serialises canvases into a PDF, one full-page JPEG per page.
// The page media box is the physical target size, so the output prints
// at the intended dimensions regardless of the raster DPI.
type Encoder struct {
	widthPt  float64
	heightPt float64
}

// NewEncoder creates an encoder producing pages of the given physical
// size in PostScript points.
func NewEncoder(widthPt, heightPt float64) (*Encoder, error) {
	if widthPt <= 0 || heightPt <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %.1fx%.1f pt",
			domain.ErrInvalidInput, widthPt, heightPt)
	}
	return &Encoder{widthPt: widthPt, heightPt: heightPt}, nil
}

// Encode produces the output PDF with one page per canvas, in order,
// each compressed at the given JPEG quality.
func (e *Encoder) Encode(canvases []*image.RGBA, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: quality must be in [1,100], got %d", domain.ErrInvalidInput, quality)
	}
	if len(canvases) == 0 {
		return nil, fmt.Errorf("%w: no canvases to encode", domain.ErrInvalidInput)
	}

	pages := make([]io.Reader, 0, len(canvases))
	for i, canvas := range canvases {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("jpeg encode page %d: %w", i+1, err)
		}
		pages = append(pages, &buf)
	}

	// The page media box is dim:, not the image's pixel size (pos:full
	// would make pixels define the page). Relative scale 1.0 fits the
	// image to the page; canvas and page share the same aspect ratio,
	// so it fills the page exactly.
	desc := fmt.Sprintf("dim:%.2f %.2f, pos:c, scalefactor:1.0 rel", e.widthPt, e.heightPt)
	imp, err := pdfapi.Import(desc, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("import config: %w", err)
	}

	var out bytes.Buffer
	if err := pdfapi.ImportImages(nil, &out, pages, imp, nil); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return out.Bytes(), nil
}
