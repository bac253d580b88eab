package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"harmonic-scanner/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePattern() models.HarmonicPattern {
	return models.HarmonicPattern{
		Kind:      models.Gartley,
		X:         models.SwingPoint{Index: 0, Price: 0, IsHigh: false},
		A:         models.SwingPoint{Index: 1, Price: 100, IsHigh: true},
		B:         models.SwingPoint{Index: 2, Price: 38.2, IsHigh: false},
		C:         models.SwingPoint{Index: 3, Price: 69.1, IsHigh: true},
		D:         models.SwingPoint{Index: 4, Price: 21.4, IsHigh: false},
		IsBullish: true,
		Ratios: map[string]float64{
			"AB/XA": 0.618,
			"BC/AB": 0.5,
			"CD/BC": 1.544,
			"AD/XA": 0.786,
		},
	}
}

func TestSaveAndLoadScan(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	scan := &Scan{
		Symbol:    "RELIANCE",
		ScannedAt: time.Now().UTC().Truncate(time.Second),
		Bars:      200,
		LeftBars:  5,
		RightBars: 5,
		Tolerance: 0.03,
	}
	patterns := []models.HarmonicPattern{samplePattern()}

	scanID, err := s.SaveScan(ctx, scan, patterns)
	if err != nil {
		t.Fatalf("SaveScan failed: %v", err)
	}
	if scanID == 0 {
		t.Fatal("expected non-zero scan id")
	}
	if scan.Patterns != 1 {
		t.Errorf("expected pattern count 1, got %d", scan.Patterns)
	}

	scans, err := s.GetScans(ctx, "RELIANCE", 10)
	if err != nil {
		t.Fatalf("GetScans failed: %v", err)
	}
	if len(scans) != 1 {
		t.Fatalf("expected 1 scan, got %d", len(scans))
	}
	got := scans[0]
	if got.Symbol != "RELIANCE" || got.Bars != 200 || got.LeftBars != 5 || got.Patterns != 1 {
		t.Errorf("unexpected scan row: %+v", got)
	}

	loaded, err := s.GetPatterns(ctx, scanID)
	if err != nil {
		t.Fatalf("GetPatterns failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(loaded))
	}
	p := loaded[0]
	if p.Kind != models.Gartley || !p.IsBullish {
		t.Errorf("unexpected pattern: %+v", p)
	}
	if p.D.Index != 4 || p.D.Price != 21.4 || p.D.IsHigh {
		t.Errorf("point D did not round-trip: %+v", p.D)
	}
	if p.Ratios["AB/XA"] != 0.618 {
		t.Errorf("ratios did not round-trip: %v", p.Ratios)
	}
}

func TestGetScansSymbolFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, symbol := range []string{"AAA", "BBB", "AAA"} {
		_, err := s.SaveScan(ctx, &Scan{
			Symbol:    symbol,
			ScannedAt: time.Now(),
			Bars:      10,
			LeftBars:  1,
			RightBars: 1,
			Tolerance: 0.03,
		}, nil)
		if err != nil {
			t.Fatal(err)
		}
	}

	scans, err := s.GetScans(ctx, "AAA", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 AAA scans, got %d", len(scans))
	}

	all, err := s.GetScans(ctx, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 scans, got %d", len(all))
	}
}

func TestGetPatternsEmptyScan(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	scanID, err := s.SaveScan(ctx, &Scan{
		Symbol:    "EMPTY",
		ScannedAt: time.Now(),
		Bars:      10,
		LeftBars:  1,
		RightBars: 1,
		Tolerance: 0.03,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	patterns, err := s.GetPatterns(ctx, scanID)
	if err != nil {
		t.Fatal(err)
	}
	if len(patterns) != 0 {
		t.Fatalf("expected no patterns, got %d", len(patterns))
	}
}

func TestGetPatternsOrderedByCompletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := samplePattern()
	second := samplePattern()
	second.Kind = models.Shark
	for i, sp := range []*models.SwingPoint{&second.X, &second.A, &second.B, &second.C, &second.D} {
		sp.Index = i + 10
	}

	// Insert out of order; reads come back sorted by completion bar.
	scanID, err := s.SaveScan(ctx, &Scan{
		Symbol:    "ORDER",
		ScannedAt: time.Now(),
		Bars:      30,
		LeftBars:  1,
		RightBars: 1,
		Tolerance: 0.03,
	}, []models.HarmonicPattern{second, first})
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := s.GetPatterns(ctx, scanID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(loaded))
	}
	if loaded[0].D.Index > loaded[1].D.Index {
		t.Fatalf("patterns not ordered by D index: %d, %d", loaded[0].D.Index, loaded[1].D.Index)
	}
}
