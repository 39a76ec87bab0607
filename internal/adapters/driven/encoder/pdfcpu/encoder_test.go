package pdfcpu

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

func whiteCanvas(w, h int) *image.RGBA {
	c := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(c, c.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return c
}

// TestNewEncoder_RejectsInvalidPageSize tests page size validation.
func TestNewEncoder_RejectsInvalidPageSize(t *testing.T) {
	_, err := NewEncoder(0, 842)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewEncoder(595, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestEncode_UsageErrors tests out-of-range quality and empty input.
func TestEncode_UsageErrors(t *testing.T) {
	enc, err := NewEncoder(595, 842)
	require.NoError(t, err)

	canvases := []*image.RGBA{whiteCanvas(60, 80)}

	_, err = enc.Encode(canvases, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = enc.Encode(canvases, 101)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = enc.Encode(nil, 80)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestEncode_ProducesPDF tests the output is a self-contained PDF.
func TestEncode_ProducesPDF(t *testing.T) {
	enc, err := NewEncoder(595, 842)
	require.NoError(t, err)

	canvases := []*image.RGBA{whiteCanvas(60, 85), whiteCanvas(60, 85)}
	data, err := enc.Encode(canvases, 80)
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

// TestEncode_PageDimsMatchTarget tests that the physical page size is
// the configured target regardless of the canvas pixel size: a 150-dpi
// canvas for an A4 target must still come out as 595x842 pt pages.
func TestEncode_PageDimsMatchTarget(t *testing.T) {
	enc, err := NewEncoder(595, 842)
	require.NoError(t, err)

	canvas := whiteCanvas(1240, 1754)
	data, err := enc.Encode([]*image.RGBA{canvas, canvas}, 80)
	require.NoError(t, err)

	dims, err := pdfapi.PageDims(bytes.NewReader(data), nil)
	require.NoError(t, err)
	require.Len(t, dims, 2)
	for _, d := range dims {
		assert.InDelta(t, 595.0, d.Width, 1)
		assert.InDelta(t, 842.0, d.Height, 1)
	}
}

// TestEncode_PageDimsIndependentOfDPI tests that canvases rendered for
// different DPIs produce identical page dimensions.
func TestEncode_PageDimsIndependentOfDPI(t *testing.T) {
	enc, err := NewEncoder(595, 842)
	require.NoError(t, err)

	// 72-dpi and 150-dpi canvas sizes for the same A4 target.
	for _, px := range []struct{ w, h int }{{595, 842}, {1240, 1754}} {
		data, err := enc.Encode([]*image.RGBA{whiteCanvas(px.w, px.h)}, 80)
		require.NoError(t, err)

		dims, err := pdfapi.PageDims(bytes.NewReader(data), nil)
		require.NoError(t, err)
		require.Len(t, dims, 1)
		assert.InDelta(t, 595.0, dims[0].Width, 1)
		assert.InDelta(t, 842.0, dims[0].Height, 1)
	}
}

// TestEncode_LowerQualityNotLarger tests the size lever the search
// relies on: for non-trivial content, lower quality does not grow the
// document.
func TestEncode_LowerQualityNotLarger(t *testing.T) {
	enc, err := NewEncoder(595, 842)
	require.NoError(t, err)

	// A gradient compresses worse than a flat fill, so quality matters.
	canvas := image.NewRGBA(image.Rect(0, 0, 120, 170))
	for y := 0; y < 170; y++ {
		for x := 0; x < 120; x++ {
			canvas.SetRGBA(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}

	high, err := enc.Encode([]*image.RGBA{canvas}, 90)
	require.NoError(t, err)
	low, err := enc.Encode([]*image.RGBA{canvas}, 30)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(low), len(high))
}
