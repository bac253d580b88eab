package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"harmonic-scanner/internal/analysis/harmonic"
	"harmonic-scanner/internal/logging"
	"harmonic-scanner/internal/models"
	"harmonic-scanner/internal/series"
	"harmonic-scanner/internal/store"
)

func newScanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <csv-file>",
		Short: "Scan a price series for harmonic patterns",
		Long: `Scan an OHLC CSV file for XABCD harmonic patterns.

The file must have the columns timestamp,open,high,low,close,volume. Swing
points are detected first, then every template is matched against the swing
sequence. Overlapping matches are all reported.`,
		Example: `  harmonics scan data/RELIANCE.csv --symbol RELIANCE
  harmonics scan data/btc.csv --left-bars 3 --right-bars 3 --kind gartley
  harmonics scan data/btc.csv --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			symbol, _ := cmd.Flags().GetString("symbol")
			leftBars, _ := cmd.Flags().GetInt("left-bars")
			rightBars, _ := cmd.Flags().GetInt("right-bars")
			tolerance, _ := cmd.Flags().GetFloat64("tolerance")
			kindFilter, _ := cmd.Flags().GetString("kind")
			save, _ := cmd.Flags().GetBool("save")

			s, err := series.LoadCSV(args[0], symbol)
			if err != nil {
				output.Error("Failed to load series: %v", err)
				return err
			}

			logger := logging.WithSymbol(app.Logger, symbol)
			start := time.Now()

			scanner := harmonic.NewScanner(leftBars, rightBars, tolerance)
			swings := scanner.DetectSwings(s.Highs(), s.Lows())

			var patterns []models.HarmonicPattern
			if kindFilter != "" {
				kind, ok := parseKind(kindFilter)
				if !ok {
					output.Error("Unknown pattern kind: %s", kindFilter)
					return fmt.Errorf("unknown pattern kind %q", kindFilter)
				}
				patterns = harmonic.Match(kind, swings, scanner.Tolerance)
			} else {
				patterns = scanner.MatchAll(swings)
			}

			logging.LogScan(logger, symbol, s.Len(), len(swings), len(patterns), time.Since(start))

			if save && app.Store != nil {
				scan := &store.Scan{
					Symbol:    symbol,
					ScannedAt: time.Now(),
					Bars:      s.Len(),
					LeftBars:  scanner.LeftBars,
					RightBars: scanner.RightBars,
					Tolerance: scanner.Tolerance,
				}
				scanID, err := app.Store.SaveScan(context.Background(), scan, patterns)
				if err != nil {
					logger.Warn().Err(err).Msg("Failed to persist scan")
				} else {
					output.Dim("Saved as scan %d", scanID)
				}
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"symbol":   symbol,
					"bars":     s.Len(),
					"swings":   len(swings),
					"patterns": patterns,
				})
			}

			if len(patterns) == 0 {
				output.Info("No harmonic patterns found (%d bars, %d swing points)", s.Len(), len(swings))
				return nil
			}

			renderPatterns(output, patterns)
			output.Success("%d pattern(s) in %d bars (%d swing points)", len(patterns), s.Len(), len(swings))
			return nil
		},
	}

	cmd.Flags().String("symbol", "SERIES", "symbol label for the series")
	cmd.Flags().Int("left-bars", 5, "bars to the left of a swing point")
	cmd.Flags().Int("right-bars", 5, "bars to the right of a swing point")
	cmd.Flags().Float64("tolerance", harmonic.DefaultTolerance, "ratio tolerance")
	cmd.Flags().String("kind", "", "restrict to one pattern kind (gartley, bat, butterfly, crab, shark, cypher)")
	cmd.Flags().Bool("save", false, "persist results to the scan history")

	return cmd
}

func renderPatterns(output *Output, patterns []models.HarmonicPattern) {
	t := output.Table(table.Row{"Kind", "Direction", "X-A-B-C-D", "D price", "Ratios"})
	for _, p := range patterns {
		t.AppendRow(table.Row{
			FormatKind(p.Kind),
			FormatDirection(p.IsBullish),
			FormatPoints(p),
			p.D.Price,
			FormatRatios(p.Ratios),
		})
	}
	t.Render()
}

func parseKind(v string) (models.PatternKind, bool) {
	kind := models.PatternKind(strings.ToLower(v))
	for _, k := range models.PatternKinds {
		if k == kind {
			return k, true
		}
	}
	return "", false
}
