package domain

// EncodingParams is one search coordinate: the rasterisation DPI and
// the lossy encoding quality for a single attempt.
type EncodingParams struct {
	DPI     int
	Quality int
}

// Schedule is the full, finite attempt sequence of a size search,
// precomputed so termination is structurally evident. Quality degrades
// before resolution, and every resolution drop re-explores the full
// quality range at the new baseline.
type Schedule []EncodingParams

// NewSchedule expands validated settings into the attempt sequence.
// For each DPI from StartDPI down by DPIStep while >= MinDPI, quality
// runs from StartQuality down by QualityStep while >= MinQuality.
func NewSchedule(s Settings) Schedule {
	sched := make(Schedule, 0, s.MaxAttempts())
	for dpi := s.StartDPI; dpi >= s.MinDPI; dpi -= s.DPIStep {
		for q := s.StartQuality; q >= s.MinQuality; q -= s.QualityStep {
			sched = append(sched, EncodingParams{DPI: dpi, Quality: q})
		}
	}
	return sched
}

// MaxAttempts is the worst-case attempt count for these settings:
// the number of quality levels times the number of DPI levels.
func (s Settings) MaxAttempts() int {
	qualities := (s.StartQuality-s.MinQuality)/s.QualityStep + 1
	resolutions := (s.StartDPI-s.MinDPI)/s.DPIStep + 1
	return qualities * resolutions
}

// Floor returns the terminal coordinate of the schedule: the lowest
// DPI and quality values the step policy can reach without crossing
// the configured floors.
func (s Settings) Floor() EncodingParams {
	return EncodingParams{
		DPI:     lowestReachable(s.StartDPI, s.MinDPI, s.DPIStep),
		Quality: lowestReachable(s.StartQuality, s.MinQuality, s.QualityStep),
	}
}

// lowestReachable steps down from start without going below min.
func lowestReachable(start, min, step int) int {
	return start - ((start-min)/step)*step
}
