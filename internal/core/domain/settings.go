package domain

import "fmt"

// Default recompression settings. The physical target is A4 in
// PostScript points; the search ranges follow common scanner output.
const (
	DefaultTargetWidthPt  = 595.0
	DefaultTargetHeightPt = 842.0

	DefaultByteBudget = 1 << 20 // 1 MiB

	DefaultStartDPI = 150
	DefaultMinDPI   = 72
	DefaultDPIStep  = 10

	DefaultStartQuality = 85
	DefaultMinQuality   = 30
	DefaultQualityStep  = 5
)

// Settings is the immutable configuration for one size search.
// It is passed explicitly into the search entry point; there is
// no process-wide state.
type Settings struct {
	// TargetWidthPt and TargetHeightPt are the physical output page
	// size in PostScript points (1/72 inch).
	TargetWidthPt  float64
	TargetHeightPt float64

	// ByteBudget is the maximum acceptable encoded size of the whole
	// output document. Best effort: the search may return a larger
	// result when both floors are reached.
	ByteBudget int64

	// StartDPI, MinDPI and DPIStep define the resolution search range.
	StartDPI int
	MinDPI   int
	DPIStep  int

	// StartQuality, MinQuality and QualityStep define the lossy
	// quality search range. Quality is a JPEG-style 1-100 level.
	StartQuality int
	MinQuality   int
	QualityStep  int
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		TargetWidthPt:  DefaultTargetWidthPt,
		TargetHeightPt: DefaultTargetHeightPt,
		ByteBudget:     DefaultByteBudget,
		StartDPI:       DefaultStartDPI,
		MinDPI:         DefaultMinDPI,
		DPIStep:        DefaultDPIStep,
		StartQuality:   DefaultStartQuality,
		MinQuality:     DefaultMinQuality,
		QualityStep:    DefaultQualityStep,
	}
}

// Validate checks that the settings describe a non-empty search space.
// All failures wrap ErrInvalidInput: they are caller bugs, not runtime
// conditions.
func (s Settings) Validate() error {
	if s.TargetWidthPt <= 0 || s.TargetHeightPt <= 0 {
		return fmt.Errorf("%w: target size must be positive, got %.1fx%.1f pt",
			ErrInvalidInput, s.TargetWidthPt, s.TargetHeightPt)
	}
	if s.ByteBudget <= 0 {
		return fmt.Errorf("%w: byte budget must be positive, got %d", ErrInvalidInput, s.ByteBudget)
	}
	if s.MinDPI <= 0 || s.StartDPI < s.MinDPI {
		return fmt.Errorf("%w: need start dpi >= min dpi > 0, got %d/%d",
			ErrInvalidInput, s.StartDPI, s.MinDPI)
	}
	if s.DPIStep <= 0 {
		return fmt.Errorf("%w: dpi step must be positive, got %d", ErrInvalidInput, s.DPIStep)
	}
	if s.MinQuality < 1 || s.StartQuality > 100 || s.StartQuality < s.MinQuality {
		return fmt.Errorf("%w: need 100 >= start quality >= min quality >= 1, got %d/%d",
			ErrInvalidInput, s.StartQuality, s.MinQuality)
	}
	if s.QualityStep <= 0 {
		return fmt.Errorf("%w: quality step must be positive, got %d", ErrInvalidInput, s.QualityStep)
	}
	return nil
}
