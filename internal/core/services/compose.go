package services

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// CanvasComposer fits rasters onto fixed-size white canvases. It is a
// pure, stateless transform: canvas pixel dimensions are derived from
// the physical target and the DPI supplied per call, so they track the
// search as the DPI changes.
type CanvasComposer struct {
	scaler xdraw.Scaler
}

// NewCanvasComposer returns a composer using Catmull-Rom resampling.
func NewCanvasComposer() *CanvasComposer {
	return &CanvasComposer{scaler: xdraw.CatmullRom}
}

// Compose fits every raster onto its own canvas, same length and order
// as the input. Each raster is scaled uniformly by
// min(W_px/w, H_px/h) - never distorted, never cropped - and centred
// with integer-floor-division margins. Residual canvas area stays white.
func (c *CanvasComposer) Compose(
	rasters []image.Image, widthPt, heightPt float64, dpi int,
) ([]*image.RGBA, error) {
	if widthPt <= 0 || heightPt <= 0 {
		return nil, fmt.Errorf("%w: target size must be positive, got %.1fx%.1f pt",
			domain.ErrInvalidInput, widthPt, heightPt)
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("%w: dpi must be positive, got %d", domain.ErrInvalidInput, dpi)
	}

	wPx, hPx := CanvasSize(widthPt, heightPt, dpi)
	canvases := make([]*image.RGBA, 0, len(rasters))
	for i, raster := range rasters {
		canvas, err := c.composePage(raster, wPx, hPx)
		if err != nil {
			return nil, fmt.Errorf("compose page %d: %w", i+1, err)
		}
		canvases = append(canvases, canvas)
	}
	return canvases, nil
}

// CanvasSize converts the physical target to pixel dimensions at dpi:
// round(pt * dpi / 72) per axis.
func CanvasSize(widthPt, heightPt float64, dpi int) (int, int) {
	w := int(math.Round(widthPt * float64(dpi) / 72.0))
	h := int(math.Round(heightPt * float64(dpi) / 72.0))
	return w, h
}

func (c *CanvasComposer) composePage(raster image.Image, wPx, hPx int) (*image.RGBA, error) {
	rb := raster.Bounds()
	rw, rh := rb.Dx(), rb.Dy()
	if rw <= 0 || rh <= 0 {
		return nil, fmt.Errorf("%w: raster has no pixels", domain.ErrInvalidInput)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, wPx, hPx))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	ratio := math.Min(float64(wPx)/float64(rw), float64(hPx)/float64(rh))
	newW := int(math.Round(float64(rw) * ratio))
	newH := int(math.Round(float64(rh) * ratio))
	offX := (wPx - newW) / 2
	offY := (hPx - newH) / 2

	dst := image.Rect(offX, offY, offX+newW, offY+newH)
	c.scaler.Scale(canvas, dst, raster, rb, xdraw.Src, nil)

	return canvas, nil
}
