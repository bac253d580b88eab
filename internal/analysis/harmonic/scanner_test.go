package harmonic

import (
	"reflect"
	"testing"

	"harmonic-scanner/internal/models"
)

// zigzagPath produces overlapping matches when scanned with a 1/1 window:
// the swing sequence is 0L, 100H, 38.2L, 69.1H, 21.4L, 100H, whose first
// quintuple is a bullish Gartley and whose second (sharing four points) is a
// bearish Shark.
var zigzagPath = []float64{50, 0, 100, 38.2, 69.1, 21.4, 100, 60}

func TestDetectAllFindsOverlappingPatterns(t *testing.T) {
	s := NewScanner(1, 1, DefaultTolerance)
	patterns := s.DetectAll(zigzagPath, zigzagPath)

	if len(patterns) != 2 {
		t.Fatalf("expected 2 overlapping patterns, got %d: %v", len(patterns), patterns)
	}

	if patterns[0].Kind != models.Gartley || !patterns[0].IsBullish {
		t.Errorf("expected bullish Gartley first, got %+v", patterns[0])
	}
	if patterns[1].Kind != models.Shark || patterns[1].IsBullish {
		t.Errorf("expected bearish Shark second, got %+v", patterns[1])
	}

	// Both quintuples share the 100H, 38.2L, 69.1H, 21.4L points; neither
	// emission suppresses the other.
	if patterns[0].A.Index != patterns[1].X.Index {
		t.Errorf("expected overlapping quintuples, got D indices %d and %d",
			patterns[0].D.Index, patterns[1].D.Index)
	}

	for i := 1; i < len(patterns); i++ {
		if patterns[i].D.Index < patterns[i-1].D.Index {
			t.Fatalf("patterns not ordered by completion bar: %v", patterns)
		}
	}
}

func TestDetectAllEmptyInputs(t *testing.T) {
	s := NewScanner(5, 5, DefaultTolerance)

	if got := s.DetectAll(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result for empty series, got %v", got)
	}
	if got := s.DetectAll([]float64{1, 2, 3}, []float64{0, 1, 2}); len(got) != 0 {
		t.Fatalf("expected empty result for short series, got %v", got)
	}
}

func TestMatchAllFewerThanFiveSwings(t *testing.T) {
	s := NewScanner(1, 1, DefaultTolerance)
	swings := []models.SwingPoint{
		{Index: 0, Price: 1, IsHigh: false},
		{Index: 1, Price: 2, IsHigh: true},
		{Index: 2, Price: 1.5, IsHigh: false},
		{Index: 3, Price: 2.5, IsHigh: true},
	}
	if got := s.MatchAll(swings); len(got) != 0 {
		t.Fatalf("expected empty result for 4 swings, got %v", got)
	}
}

func TestDetectAllIdempotent(t *testing.T) {
	s := NewScanner(1, 1, DefaultTolerance)

	first := s.DetectAll(zigzagPath, zigzagPath)
	second := s.DetectAll(zigzagPath, zigzagPath)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated detection differs:\n%v\n%v", first, second)
	}
}

func TestNewScannerToleranceFallback(t *testing.T) {
	if s := NewScanner(1, 1, 0); s.Tolerance != DefaultTolerance {
		t.Fatalf("expected default tolerance, got %v", s.Tolerance)
	}
	if s := NewScanner(1, 1, -1); s.Tolerance != DefaultTolerance {
		t.Fatalf("expected default tolerance for negative input, got %v", s.Tolerance)
	}
	if s := NewScanner(1, 1, 0.05); s.Tolerance != 0.05 {
		t.Fatalf("expected explicit tolerance kept, got %v", s.Tolerance)
	}
}

func TestTemplateTableComplete(t *testing.T) {
	if len(templates) != len(models.PatternKinds) {
		t.Fatalf("expected %d templates, got %d", len(models.PatternKinds), len(templates))
	}
	for i, kind := range models.PatternKinds {
		if templates[i].kind != kind {
			t.Errorf("template %d: expected %s, got %s", i, kind, templates[i].kind)
		}
		for _, leg := range templates[i].legs {
			if leg.name == "" || leg.rng.Max < leg.rng.Min {
				t.Errorf("%s: malformed leg %+v", kind, leg)
			}
		}
	}
}
