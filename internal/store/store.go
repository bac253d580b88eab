// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"harmonic-scanner/internal/models"
)

// Scan records one scan run over a price series.
type Scan struct {
	ID        int64
	Symbol    string
	ScannedAt time.Time
	Bars      int
	LeftBars  int
	RightBars int
	Tolerance float64
	Patterns  int
}

// ScanStore defines the interface for persisting scan results.
type ScanStore interface {
	// SaveScan persists a scan run together with its detected patterns and
	// returns the scan ID.
	SaveScan(ctx context.Context, scan *Scan, patterns []models.HarmonicPattern) (int64, error)

	// GetScans returns the most recent scans, optionally filtered by symbol.
	GetScans(ctx context.Context, symbol string, limit int) ([]Scan, error)

	// GetPatterns returns the patterns recorded for one scan, ordered by
	// completion bar.
	GetPatterns(ctx context.Context, scanID int64) ([]models.HarmonicPattern, error)

	Close() error
}
