package cli

import (
	"fmt"
	"sort"
	"strings"

	"harmonic-scanner/internal/models"
)

// FormatKind returns a display label for a pattern kind.
func FormatKind(kind models.PatternKind) string {
	s := string(kind)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatDirection returns a display label for pattern direction.
func FormatDirection(bullish bool) string {
	if bullish {
		return "bullish"
	}
	return "bearish"
}

// FormatRatios renders a pattern's ratio map as "name=value" pairs in a
// stable order.
func FormatRatios(ratios map[string]float64) string {
	names := make([]string, 0, len(ratios))
	for name := range ratios {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%.3f", name, ratios[name]))
	}
	return strings.Join(parts, " ")
}

// FormatPoints renders the five XABCD bar indices compactly.
func FormatPoints(p models.HarmonicPattern) string {
	return fmt.Sprintf("%d-%d-%d-%d-%d", p.X.Index, p.A.Index, p.B.Index, p.C.Index, p.D.Index)
}
