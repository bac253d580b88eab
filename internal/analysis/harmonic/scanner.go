package harmonic

import (
	"sort"
	"sync"

	"harmonic-scanner/internal/analysis/swing"
	"harmonic-scanner/internal/models"
)

// Scanner runs swing detection and all six harmonic matchers over a price
// series. It holds only parameters, no state; every call is a pure function
// of its inputs.
type Scanner struct {
	LeftBars  int
	RightBars int
	Tolerance float64
}

// NewScanner creates a scanner with the given swing window half-widths.
// Non-positive tolerance falls back to DefaultTolerance.
func NewScanner(leftBars, rightBars int, tolerance float64) *Scanner {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Scanner{
		LeftBars:  leftBars,
		RightBars: rightBars,
		Tolerance: tolerance,
	}
}

// DetectSwings returns the swing points of the series under the scanner's
// window parameters.
func (s *Scanner) DetectSwings(high, low []float64) []models.SwingPoint {
	return swing.Detect(high, low, s.LeftBars, s.RightBars)
}

// DetectAll detects swing points once, runs every template matcher and
// returns the merged matches ordered by completion bar (D index). Ties keep
// the canonical template order regardless of goroutine scheduling. Fewer
// than five swing points yields an empty result, never an error.
func (s *Scanner) DetectAll(high, low []float64) []models.HarmonicPattern {
	return s.MatchAll(s.DetectSwings(high, low))
}

// MatchAll runs all six templates against an already-detected swing
// sequence. The matchers are independent, so each runs on its own goroutine
// writing into a fixed slot; the slots are concatenated in canonical
// template order before the stable sort.
func (s *Scanner) MatchAll(swings []models.SwingPoint) []models.HarmonicPattern {
	results := make([][]models.HarmonicPattern, len(templates))

	var wg sync.WaitGroup
	for i := range templates {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = matchTemplate(swings, templates[slot], s.Tolerance)
		}(i)
	}
	wg.Wait()

	var merged []models.HarmonicPattern
	for _, r := range results {
		merged = append(merged, r...)
	}
	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].D.Index < merged[b].D.Index
	})
	return merged
}
