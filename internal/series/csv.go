// Package series loads and validates OHLC price series for analysis.
package series

import (
	"os"
	"time"

	"github.com/gocarina/gocsv"

	apperrors "harmonic-scanner/internal/errors"
	"harmonic-scanner/internal/models"
)

// csvBar is the on-disk CSV row shape. Timestamps accept RFC3339 or plain
// dates.
type csvBar struct {
	Timestamp string  `csv:"timestamp"`
	Open      float64 `csv:"open"`
	High      float64 `csv:"high"`
	Low       float64 `csv:"low"`
	Close     float64 `csv:"close"`
	Volume    int64   `csv:"volume"`
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadCSV reads a candle series from a CSV file with the columns
// timestamp,open,high,low,close,volume and validates it.
func LoadCSV(path, symbol string) (*models.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to open series file %s", path)
	}
	defer f.Close()

	var rows []*csvBar
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, apperrors.Wrapf(err, "failed to parse series file %s", path)
	}
	if len(rows) == 0 {
		return nil, apperrors.Wrapf(apperrors.ErrDataNotFound, "no rows in %s", path)
	}

	s := &models.Series{Symbol: symbol, Candles: make([]models.Candle, 0, len(rows))}
	for i, row := range rows {
		ts, err := parseTimestamp(row.Timestamp)
		if err != nil {
			return nil, apperrors.NewSeriesError(symbol, i, "unparseable timestamp "+row.Timestamp)
		}
		s.Candles = append(s.Candles, models.Candle{
			Timestamp: ts,
			Open:      row.Open,
			High:      row.High,
			Low:       row.Low,
			Close:     row.Close,
			Volume:    row.Volume,
		})
	}

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the invariants the analysis packages assume: every bar has
// high >= low, and bars are in chronological order.
func Validate(s *models.Series) error {
	for i, c := range s.Candles {
		if c.High < c.Low {
			return apperrors.NewSeriesError(s.Symbol, i, "high below low")
		}
		if i > 0 && c.Timestamp.Before(s.Candles[i-1].Timestamp) {
			return apperrors.NewSeriesError(s.Symbol, i, "timestamps out of order")
		}
	}
	return nil
}

func parseTimestamp(v string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, v)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
