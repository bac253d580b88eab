package harmonic

import "harmonic-scanner/internal/models"

// Positions within an XABCD quintuple.
const (
	ptX = iota
	ptA
	ptB
	ptC
	ptD
)

// legRatio defines one ratio check: the move between two quintuple points
// measured against a reference span between two others. Encoding the
// reference span per leg keeps Cypher's CD/XC deviation in the template
// data instead of in matcher logic.
type legRatio struct {
	name    string
	from    int
	to      int
	refFrom int
	refTo   int
	rng     ratioRange
}

// template is a complete four-ratio harmonic definition.
type template struct {
	kind models.PatternKind
	legs [4]legRatio
}

func abOverXA(rng ratioRange) legRatio {
	return legRatio{name: "AB/XA", from: ptA, to: ptB, refFrom: ptX, refTo: ptA, rng: rng}
}

func bcOverAB(rng ratioRange) legRatio {
	return legRatio{name: "BC/AB", from: ptB, to: ptC, refFrom: ptA, refTo: ptB, rng: rng}
}

func cdOverBC(rng ratioRange) legRatio {
	return legRatio{name: "CD/BC", from: ptC, to: ptD, refFrom: ptB, refTo: ptC, rng: rng}
}

func cdOverXC(rng ratioRange) legRatio {
	return legRatio{name: "CD/XC", from: ptC, to: ptD, refFrom: ptX, refTo: ptC, rng: rng}
}

func adOverXA(rng ratioRange) legRatio {
	return legRatio{name: "AD/XA", from: ptA, to: ptD, refFrom: ptX, refTo: ptA, rng: rng}
}

// templates holds the six canonical definitions in canonical order.
var templates = []template{
	{kind: models.Gartley, legs: [4]legRatio{
		abOverXA(exact(0.618)),
		bcOverAB(between(0.382, 0.886)),
		cdOverBC(between(1.272, 1.618)),
		adOverXA(exact(0.786)),
	}},
	{kind: models.Bat, legs: [4]legRatio{
		abOverXA(between(0.382, 0.500)),
		bcOverAB(between(0.382, 0.886)),
		cdOverBC(between(1.618, 2.618)),
		adOverXA(exact(0.886)),
	}},
	{kind: models.Butterfly, legs: [4]legRatio{
		abOverXA(exact(0.786)),
		bcOverAB(between(0.382, 0.886)),
		cdOverBC(between(1.618, 2.24)),
		adOverXA(between(1.27, 1.618)),
	}},
	{kind: models.Crab, legs: [4]legRatio{
		abOverXA(between(0.382, 0.618)),
		bcOverAB(between(0.382, 0.886)),
		cdOverBC(between(2.24, 3.618)),
		adOverXA(exact(1.618)),
	}},
	{kind: models.Shark, legs: [4]legRatio{
		abOverXA(between(0.382, 0.618)),
		bcOverAB(between(1.13, 1.618)),
		cdOverBC(between(1.618, 2.24)),
		adOverXA(between(0.886, 1.13)),
	}},
	{kind: models.Cypher, legs: [4]legRatio{
		abOverXA(between(0.382, 0.618)),
		bcOverAB(between(1.272, 1.414)),
		cdOverXC(exact(0.786)),
		adOverXA(exact(0.786)),
	}},
}
