package services

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// solidRaster returns a w x h raster filled with the given colour.
func solidRaster(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var red = color.RGBA{R: 255, A: 255}

// TestCanvasSize tests the pt-to-pixel conversion at several DPIs.
func TestCanvasSize(t *testing.T) {
	tests := []struct {
		dpi          int
		wantW, wantH int
	}{
		{150, 1240, 1754}, // round(595*150/72), round(842*150/72)
		{72, 595, 842},
		{100, 826, 1169},
	}

	for _, tt := range tests {
		w, h := CanvasSize(595, 842, tt.dpi)
		assert.Equal(t, tt.wantW, w, "width at %d dpi", tt.dpi)
		assert.Equal(t, tt.wantH, h, "height at %d dpi", tt.dpi)
	}
}

// TestCompose_UniformDimensions tests every canvas in one call has the
// pixel dimensions derived from the call's DPI, regardless of raster size.
func TestCompose_UniformDimensions(t *testing.T) {
	rasters := []image.Image{
		solidRaster(200, 100, red),
		solidRaster(50, 400, red),
		solidRaster(595, 842, red),
	}

	canvases, err := NewCanvasComposer().Compose(rasters, 595, 842, 100)
	require.NoError(t, err)
	require.Len(t, canvases, len(rasters))

	wantW, wantH := CanvasSize(595, 842, 100)
	for i, c := range canvases {
		assert.Equal(t, wantW, c.Bounds().Dx(), "canvas %d width", i)
		assert.Equal(t, wantH, c.Bounds().Dy(), "canvas %d height", i)
	}
}

// TestCompose_TightFitAndCentring tests aspect preservation: the scaled
// raster touches the limiting canvas bound and is centred with
// floor-divided margins, the rest staying white.
func TestCompose_TightFitAndCentring(t *testing.T) {
	// A 2:1 landscape raster into a 200x300 canvas: width-limited,
	// scaled to 200x100, centred at y=(300-100)/2=100.
	raster := solidRaster(400, 200, red)

	canvases, err := NewCanvasComposer().Compose([]image.Image{raster}, 200, 300, 72)
	require.NoError(t, err)
	canvas := canvases[0]

	// Margins stay white.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, canvas.RGBAAt(100, 50))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, canvas.RGBAAt(100, 250))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, canvas.RGBAAt(0, 0))

	// Scaled content covers the full width and is centred vertically.
	assert.Equal(t, red, canvas.RGBAAt(0, 150))
	assert.Equal(t, red, canvas.RGBAAt(199, 150))
	assert.Equal(t, red, canvas.RGBAAt(100, 100))
	assert.Equal(t, red, canvas.RGBAAt(100, 199))
	// Just outside the fitted region.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, canvas.RGBAAt(100, 99))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, canvas.RGBAAt(100, 200))
}

// TestCompose_ExactFill tests a raster matching the canvas aspect fills
// it completely with no off-by-one margins.
func TestCompose_ExactFill(t *testing.T) {
	wPx, hPx := CanvasSize(595, 842, 72)
	raster := solidRaster(wPx, hPx, red)

	canvases, err := NewCanvasComposer().Compose([]image.Image{raster}, 595, 842, 72)
	require.NoError(t, err)
	canvas := canvases[0]

	for _, pt := range []image.Point{
		{0, 0}, {wPx - 1, 0}, {0, hPx - 1}, {wPx - 1, hPx - 1}, {wPx / 2, hPx / 2},
	} {
		assert.Equal(t, red, canvas.RGBAAt(pt.X, pt.Y), "pixel %v", pt)
	}
}

// TestCompose_SmallRasterScalesUpToFit tests undersized rasters are
// fitted, not pasted at native size.
func TestCompose_SmallRasterScalesUpToFit(t *testing.T) {
	raster := solidRaster(10, 10, red)

	canvases, err := NewCanvasComposer().Compose([]image.Image{raster}, 100, 100, 72)
	require.NoError(t, err)
	canvas := canvases[0]

	assert.Equal(t, red, canvas.RGBAAt(0, 0))
	assert.Equal(t, red, canvas.RGBAAt(99, 99))
}

// TestCompose_EmptyInput tests an empty raster slice yields an empty,
// non-nil result: page count is the rasterizer's concern.
func TestCompose_EmptyInput(t *testing.T) {
	canvases, err := NewCanvasComposer().Compose(nil, 595, 842, 72)
	require.NoError(t, err)
	assert.Empty(t, canvases)
}

// TestCompose_UsageErrors tests invalid target dimensions and DPI.
func TestCompose_UsageErrors(t *testing.T) {
	composer := NewCanvasComposer()
	rasters := []image.Image{solidRaster(10, 10, red)}

	_, err := composer.Compose(rasters, 0, 842, 72)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = composer.Compose(rasters, 595, -1, 72)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = composer.Compose(rasters, 595, 842, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = composer.Compose([]image.Image{image.NewRGBA(image.Rect(0, 0, 0, 0))}, 595, 842, 72)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
