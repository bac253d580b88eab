// Package errors provides sentinel errors and wrapping helpers for the
// scanner's I/O edges. The analysis packages themselves never return errors:
// degenerate input resolves to empty results or zero ratios by design.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrDataNotFound  = errors.New("data not found")
	ErrInvalidSeries = errors.New("invalid price series")
	ErrDatabaseError = errors.New("database error")
	ErrConfigInvalid = errors.New("invalid configuration")
)

// SeriesError represents a validation failure in an input price series.
type SeriesError struct {
	Symbol  string
	Row     int
	Message string
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("series error [%s] row %d: %s", e.Symbol, e.Row, e.Message)
}

func (e *SeriesError) Unwrap() error {
	return ErrInvalidSeries
}

// NewSeriesError creates a new SeriesError.
func NewSeriesError(symbol string, row int, message string) *SeriesError {
	return &SeriesError{Symbol: symbol, Row: row, Message: message}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
