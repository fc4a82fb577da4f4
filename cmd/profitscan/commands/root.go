package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "profitscan",
	Short: "Maximum-profit scanner for daily price series",
	Long: `profitscan computes the maximum profit obtainable from at most two
non-overlapping buy/sell transactions over a series of daily prices.

Examples:
  profitscan demo
  profitscan scan 1 2 4 2 5 7 2 4 9 0
  profitscan scan --input prices.json --trades
  profitscan walk --days 252 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger builds the diagnostics logger. Output goes to stderr so the
// result line on stdout stays clean for pipelines.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
