// Package swing locates local price extrema (swing points) relative to a
// symmetric left/right comparison window.
package swing

import "harmonic-scanner/internal/models"

// Detect scans the high and low series and returns every swing point in
// ascending index order. An index i is a swing high when high[i] is greater
// than or equal to every high within leftBars bars before and rightBars bars
// after it; swing lows are symmetric on the low series. The comparisons are
// non-strict, so ties count as swings, and the two checks are independent: a
// flat run can emit the same index as both a swing high and a swing low.
//
// A window too large for the series (leftBars+rightBars >= len) leaves no
// valid indices and yields an empty result, never an error.
func Detect(high, low []float64, leftBars, rightBars int) []models.SwingPoint {
	n := len(high)
	if len(low) < n {
		n = len(low)
	}
	if leftBars < 0 || rightBars < 0 {
		return nil
	}

	var swings []models.SwingPoint
	for i := leftBars; i < n-rightBars; i++ {
		if isSwingHigh(high, i, leftBars, rightBars) {
			swings = append(swings, models.SwingPoint{Index: i, Price: high[i], IsHigh: true})
		}
		if isSwingLow(low, i, leftBars, rightBars) {
			swings = append(swings, models.SwingPoint{Index: i, Price: low[i], IsHigh: false})
		}
	}
	return swings
}

// DetectSeries runs Detect over the high/low columns of a candle series.
func DetectSeries(s *models.Series, leftBars, rightBars int) []models.SwingPoint {
	return Detect(s.Highs(), s.Lows(), leftBars, rightBars)
}

func isSwingHigh(high []float64, i, leftBars, rightBars int) bool {
	for j := i - leftBars; j <= i+rightBars; j++ {
		if j == i {
			continue
		}
		if high[j] > high[i] {
			return false
		}
	}
	return true
}

func isSwingLow(low []float64, i, leftBars, rightBars int) bool {
	for j := i - leftBars; j <= i+rightBars; j++ {
		if j == i {
			continue
		}
		if low[j] < low[i] {
			return false
		}
	}
	return true
}
