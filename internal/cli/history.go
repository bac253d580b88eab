package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [scan-id]",
		Short: "Browse saved scans",
		Long: `List saved scans, or show the patterns of one scan by ID.

Scans are saved with 'harmonics scan --save'.`,
		Example: `  harmonics history
  harmonics history --symbol RELIANCE --limit 10
  harmonics history 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if app.Store == nil {
				output.Error("Scan history store is unavailable")
				return fmt.Errorf("store not initialized")
			}

			ctx := context.Background()

			if len(args) == 1 {
				scanID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid scan id %q", args[0])
				}
				patterns, err := app.Store.GetPatterns(ctx, scanID)
				if err != nil {
					output.Error("Failed to load patterns: %v", err)
					return err
				}
				if output.IsJSON() {
					return output.JSON(patterns)
				}
				if len(patterns) == 0 {
					output.Info("No patterns recorded for scan %d", scanID)
					return nil
				}
				renderPatterns(output, patterns)
				return nil
			}

			symbol, _ := cmd.Flags().GetString("symbol")
			limit, _ := cmd.Flags().GetInt("limit")

			scans, err := app.Store.GetScans(ctx, symbol, limit)
			if err != nil {
				output.Error("Failed to load scans: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(scans)
			}
			if len(scans) == 0 {
				output.Info("No saved scans")
				return nil
			}

			t := output.Table(table.Row{"ID", "Symbol", "Scanned at", "Bars", "Window", "Tolerance", "Patterns"})
			for _, sc := range scans {
				t.AppendRow(table.Row{
					sc.ID,
					sc.Symbol,
					sc.ScannedAt.Format("2006-01-02 15:04"),
					sc.Bars,
					fmt.Sprintf("%d/%d", sc.LeftBars, sc.RightBars),
					fmt.Sprintf("%.3f", sc.Tolerance),
					sc.Patterns,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "filter scans by symbol")
	cmd.Flags().Int("limit", 20, "maximum scans to list")

	return cmd
}
