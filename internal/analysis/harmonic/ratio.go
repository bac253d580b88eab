// Package harmonic classifies five-point swing sequences against the six
// canonical XABCD harmonic templates: Gartley, Bat, Butterfly, Crab, Shark
// and Cypher.
package harmonic

import "math"

// DefaultTolerance is the symmetric allowance applied around template
// ratios, on the ratio scale (0.03 = ±3 percentage points).
const DefaultTolerance = 0.03

// CalcRatio returns |p2-p1| / |refEnd-refStart|, the magnitude of one price
// leg measured against a reference leg. A zero-length reference move yields
// 0.0 rather than NaN or infinity; the zero then simply fails whatever range
// check it feeds.
func CalcRatio(p1, p2, refStart, refEnd float64) float64 {
	ref := math.Abs(refEnd - refStart)
	if ref == 0 {
		return 0.0
	}
	return math.Abs(p2-p1) / ref
}

// CheckFibRatio reports whether actual is within tolerance of expected.
func CheckFibRatio(actual, expected, tolerance float64) bool {
	return math.Abs(actual-expected) <= tolerance
}

// ratioRange is the accepted interval for one leg ratio. Exact targets use
// Min == Max; both bounds are widened by the tolerance when checking.
type ratioRange struct {
	Min float64
	Max float64
}

func (r ratioRange) contains(actual, tolerance float64) bool {
	return actual >= r.Min-tolerance && actual <= r.Max+tolerance
}

func exact(v float64) ratioRange {
	return ratioRange{Min: v, Max: v}
}

func between(lo, hi float64) ratioRange {
	return ratioRange{Min: lo, Max: hi}
}
