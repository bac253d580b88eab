package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"harmonic-scanner/internal/analysis/swing"
	"harmonic-scanner/internal/series"
)

func newSwingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swings <csv-file>",
		Short: "Detect swing points in a price series",
		Long: `Detect swing highs and lows in an OHLC CSV file.

An index is a swing high when its high is not exceeded within the left/right
comparison window; swing lows are symmetric on the low column. On flat runs a
single bar can appear as both.`,
		Example: `  harmonics swings data/RELIANCE.csv
  harmonics swings data/btc.csv --left-bars 2 --right-bars 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			symbol, _ := cmd.Flags().GetString("symbol")
			leftBars, _ := cmd.Flags().GetInt("left-bars")
			rightBars, _ := cmd.Flags().GetInt("right-bars")

			s, err := series.LoadCSV(args[0], symbol)
			if err != nil {
				output.Error("Failed to load series: %v", err)
				return err
			}

			swings := swing.DetectSeries(s, leftBars, rightBars)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"symbol": symbol,
					"bars":   s.Len(),
					"swings": swings,
				})
			}

			if len(swings) == 0 {
				output.Info("No swing points found (%d bars)", s.Len())
				return nil
			}

			t := output.Table(table.Row{"Index", "Type", "Price", "Timestamp"})
			for _, sp := range swings {
				kind := "low"
				if sp.IsHigh {
					kind = "high"
				}
				t.AppendRow(table.Row{sp.Index, kind, sp.Price, s.Candles[sp.Index].Timestamp.Format("2006-01-02 15:04")})
			}
			t.Render()
			output.Success("%d swing point(s) in %d bars", len(swings), s.Len())
			return nil
		},
	}

	cmd.Flags().String("symbol", "SERIES", "symbol label for the series")
	cmd.Flags().Int("left-bars", 5, "bars to the left of a swing point")
	cmd.Flags().Int("right-bars", 5, "bars to the right of a swing point")

	return cmd
}
