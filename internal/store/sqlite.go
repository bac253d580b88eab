package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "harmonic-scanner/internal/errors"
	"harmonic-scanner/internal/models"
)

// SQLiteStore implements ScanStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed scan store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, "failed to initialize schema")
	}
	return s, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		scanned_at DATETIME NOT NULL,
		bars INTEGER NOT NULL,
		left_bars INTEGER NOT NULL,
		right_bars INTEGER NOT NULL,
		tolerance REAL NOT NULL,
		pattern_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS patterns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL,
		kind TEXT NOT NULL,
		is_bullish INTEGER NOT NULL,
		x_idx INTEGER NOT NULL, x_price REAL NOT NULL, x_is_high INTEGER NOT NULL,
		a_idx INTEGER NOT NULL, a_price REAL NOT NULL, a_is_high INTEGER NOT NULL,
		b_idx INTEGER NOT NULL, b_price REAL NOT NULL, b_is_high INTEGER NOT NULL,
		c_idx INTEGER NOT NULL, c_price REAL NOT NULL, c_is_high INTEGER NOT NULL,
		d_idx INTEGER NOT NULL, d_price REAL NOT NULL, d_is_high INTEGER NOT NULL,
		ratios TEXT,
		FOREIGN KEY (scan_id) REFERENCES scans(id)
	);

	CREATE INDEX IF NOT EXISTS idx_scans_symbol ON scans(symbol, scanned_at);
	CREATE INDEX IF NOT EXISTS idx_patterns_scan ON patterns(scan_id, d_idx);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveScan persists a scan run and its patterns in one transaction.
func (s *SQLiteStore) SaveScan(ctx context.Context, scan *Scan, patterns []models.HarmonicPattern) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO scans (symbol, scanned_at, bars, left_bars, right_bars, tolerance, pattern_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		scan.Symbol, scan.ScannedAt, scan.Bars, scan.LeftBars, scan.RightBars, scan.Tolerance, len(patterns))
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to insert scan")
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read scan id")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO patterns (scan_id, kind, is_bullish,
			x_idx, x_price, x_is_high,
			a_idx, a_price, a_is_high,
			b_idx, b_price, b_is_high,
			c_idx, c_price, c_is_high,
			d_idx, d_price, d_is_high,
			ratios)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to prepare pattern insert")
	}
	defer stmt.Close()

	for _, p := range patterns {
		ratios, err := json.Marshal(p.Ratios)
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to encode ratios")
		}
		_, err = stmt.ExecContext(ctx, scanID, string(p.Kind), p.IsBullish,
			p.X.Index, p.X.Price, p.X.IsHigh,
			p.A.Index, p.A.Price, p.A.IsHigh,
			p.B.Index, p.B.Price, p.B.IsHigh,
			p.C.Index, p.C.Price, p.C.IsHigh,
			p.D.Index, p.D.Price, p.D.IsHigh,
			string(ratios))
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to insert pattern")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.Wrap(err, "failed to commit scan")
	}
	scan.ID = scanID
	scan.Patterns = len(patterns)
	return scanID, nil
}

// GetScans returns the most recent scans, optionally filtered by symbol.
func (s *SQLiteStore) GetScans(ctx context.Context, symbol string, limit int) ([]Scan, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, symbol, scanned_at, bars, left_bars, right_bars, tolerance, pattern_count
		FROM scans`
	args := []interface{}{}
	if symbol != "" {
		query += ` WHERE symbol = ?`
		args = append(args, symbol)
	}
	query += ` ORDER BY scanned_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query scans")
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var sc Scan
		if err := rows.Scan(&sc.ID, &sc.Symbol, &sc.ScannedAt, &sc.Bars,
			&sc.LeftBars, &sc.RightBars, &sc.Tolerance, &sc.Patterns); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan row")
		}
		scans = append(scans, sc)
	}
	return scans, rows.Err()
}

// GetPatterns returns the patterns recorded for one scan, ordered by
// completion bar.
func (s *SQLiteStore) GetPatterns(ctx context.Context, scanID int64) ([]models.HarmonicPattern, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, is_bullish,
			x_idx, x_price, x_is_high,
			a_idx, a_price, a_is_high,
			b_idx, b_price, b_is_high,
			c_idx, c_price, c_is_high,
			d_idx, d_price, d_is_high,
			ratios
		 FROM patterns WHERE scan_id = ? ORDER BY d_idx, id`, scanID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query patterns")
	}
	defer rows.Close()

	var patterns []models.HarmonicPattern
	for rows.Next() {
		var p models.HarmonicPattern
		var kind, ratios string
		if err := rows.Scan(&kind, &p.IsBullish,
			&p.X.Index, &p.X.Price, &p.X.IsHigh,
			&p.A.Index, &p.A.Price, &p.A.IsHigh,
			&p.B.Index, &p.B.Price, &p.B.IsHigh,
			&p.C.Index, &p.C.Price, &p.C.IsHigh,
			&p.D.Index, &p.D.Price, &p.D.IsHigh,
			&ratios); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan row")
		}
		p.Kind = models.PatternKind(kind)
		if ratios != "" {
			if err := json.Unmarshal([]byte(ratios), &p.Ratios); err != nil {
				return nil, apperrors.Wrap(err, "failed to decode ratios")
			}
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
