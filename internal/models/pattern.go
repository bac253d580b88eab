package models

// PatternKind identifies one of the six harmonic pattern templates.
type PatternKind string

const (
	Gartley   PatternKind = "gartley"
	Bat       PatternKind = "bat"
	Butterfly PatternKind = "butterfly"
	Crab      PatternKind = "crab"
	Shark     PatternKind = "shark"
	Cypher    PatternKind = "cypher"
)

// PatternKinds lists all supported kinds in canonical order. Aggregated
// results are concatenated in this order before the final sort, which fixes
// tie ordering for patterns completing on the same bar.
var PatternKinds = []PatternKind{Gartley, Bat, Butterfly, Crab, Shark, Cypher}

// HarmonicPattern represents a matched five-point XABCD structure.
// The five points are a consecutive quintuple from the swing sequence with
// strictly increasing indices and alternating IsHigh flags. A pattern
// starting at a swing low is bullish.
type HarmonicPattern struct {
	Kind      PatternKind
	X         SwingPoint
	A         SwingPoint
	B         SwingPoint
	C         SwingPoint
	D         SwingPoint
	IsBullish bool
	Ratios    map[string]float64
}
