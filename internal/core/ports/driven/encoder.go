package driven

import "image"

// DocumentEncoder serialises an ordered sequence of same-size canvases
// into one self-contained output document.
type DocumentEncoder interface {
	// Encode produces the output document with one page per canvas,
	// in input order, each compressed at the given lossy quality.
	//
	// quality outside [1, 100] and an empty canvas slice are usage
	// errors wrapping domain.ErrInvalidInput. For a fixed input the
	// encoded byte count is deterministic; the size search relies on
	// this for its early-exit check.
	Encode(canvases []*image.RGBA, quality int) ([]byte, error)
}
