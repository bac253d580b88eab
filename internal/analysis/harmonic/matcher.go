package harmonic

import "harmonic-scanner/internal/models"

// Match runs one pattern kind's template over the swing sequence, testing
// every consecutive quintuple. Overlapping quintuples that each satisfy the
// template are all emitted; nothing is deduplicated. An unknown kind or a
// sequence shorter than five swings yields an empty result.
func Match(kind models.PatternKind, swings []models.SwingPoint, tolerance float64) []models.HarmonicPattern {
	for _, tpl := range templates {
		if tpl.kind == kind {
			return matchTemplate(swings, tpl, tolerance)
		}
	}
	return nil
}

func matchTemplate(swings []models.SwingPoint, tpl template, tolerance float64) []models.HarmonicPattern {
	var out []models.HarmonicPattern
	for i := 0; i+5 <= len(swings); i++ {
		q := [5]models.SwingPoint{swings[i], swings[i+1], swings[i+2], swings[i+3], swings[i+4]}
		if !alternates(q) {
			continue
		}

		ratios := make(map[string]float64, len(tpl.legs))
		ok := true
		for _, leg := range tpl.legs {
			r := CalcRatio(q[leg.from].Price, q[leg.to].Price, q[leg.refFrom].Price, q[leg.refTo].Price)
			if !leg.rng.contains(r, tolerance) {
				ok = false
				break
			}
			ratios[leg.name] = r
		}
		if !ok {
			continue
		}

		out = append(out, models.HarmonicPattern{
			Kind:      tpl.kind,
			X:         q[ptX],
			A:         q[ptA],
			B:         q[ptB],
			C:         q[ptC],
			D:         q[ptD],
			IsBullish: !q[ptX].IsHigh,
			Ratios:    ratios,
		})
	}
	return out
}

// alternates reports whether consecutive points flip between highs and lows.
// The check is local to this quintuple; the full swing sequence is not
// required to alternate globally.
func alternates(q [5]models.SwingPoint) bool {
	for i := 1; i < len(q); i++ {
		if q[i].IsHigh == q[i-1].IsHigh {
			return false
		}
	}
	return true
}
