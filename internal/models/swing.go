package models

// SwingPoint represents a local price extremum relative to a symmetric
// left/right comparison window. Created by the swing detector and consumed
// read-only by the pattern matchers.
type SwingPoint struct {
	Index  int
	Price  float64
	IsHigh bool
}
