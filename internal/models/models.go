// Package models provides domain models for the harmonic scanner.
package models

import "time"

// Candle represents OHLCV data for a time period.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// Series is a chronologically ordered sequence of candles for one symbol.
type Series struct {
	Symbol  string
	Candles []Candle
}

// Highs returns the high prices of the series as a flat slice.
func (s *Series) Highs() []float64 {
	out := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		out[i] = c.High
	}
	return out
}

// Lows returns the low prices of the series as a flat slice.
func (s *Series) Lows() []float64 {
	out := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		out[i] = c.Low
	}
	return out
}

// Len returns the number of candles in the series.
func (s *Series) Len() int {
	return len(s.Candles)
}
