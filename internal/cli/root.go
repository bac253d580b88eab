package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"harmonic-scanner/internal/config"
	"harmonic-scanner/internal/logging"
	"harmonic-scanner/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.ScanStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	dataStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, scan history unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", cfg.Store.Path).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "harmonics",
		Short: "Harmonic Scanner - swing point and XABCD pattern detection",
		Long: `Harmonic Scanner detects swing points in OHLC price series and classifies
five-point sequences against the six canonical harmonic templates:
Gartley, Bat, Butterfly, Crab, Shark and Cypher.

Use 'harmonics help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newScanCmd(app))
	rootCmd.AddCommand(newSwingsCmd(app))
	rootCmd.AddCommand(newHistoryCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Harmonic Scanner v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Printf("Scanner:\n")
			output.Printf("  left_bars:  %d\n", app.Config.Scanner.LeftBars)
			output.Printf("  right_bars: %d\n", app.Config.Scanner.RightBars)
			output.Printf("  tolerance:  %.3f\n", app.Config.Scanner.Tolerance)
			output.Printf("Store:\n")
			output.Printf("  path: %s\n", app.Config.Store.Path)
			output.Printf("Logging:\n")
			output.Printf("  level: %s\n", app.Config.Logging.Level)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory",
		Run: func(cmd *cobra.Command, args []string) {
			NewOutput(cmd).Println(config.DefaultConfigDir())
		},
	})

	return cmd
}
