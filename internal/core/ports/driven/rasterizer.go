package driven

import (
	"context"
	"image"
)

// PageRasterizer renders the pages of a source document into RGB
// rasters at a given resolution.
type PageRasterizer interface {
	// Rasterize renders every page of doc at the given DPI, one raster
	// per page in page order. dpi must be positive.
	//
	// Rendering is deterministic: the same (doc, dpi) pair always
	// yields identical rasters. A document that cannot be parsed or a
	// page that cannot be rendered fails with an error wrapping
	// domain.ErrDecode; a zero-page document fails with an error
	// wrapping domain.ErrEmptyDocument.
	Rasterize(ctx context.Context, doc []byte, dpi int) ([]image.Image, error)
}
