package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/profitscan/profit"
)

// demoCmd reproduces the canonical demonstration: scan the fixed series
// [3 3 5 0 0 3 1 4] and print the result.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Scan the fixed demonstration series",
	Long: `Scans the fixed series [3 3 5 0 0 3 1 4] and prints the maximum
profit obtainable from at most two non-overlapping transactions.

Example:
  profitscan demo`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		prices := []int64{3, 3, 5, 0, 0, 3, 1, 4}
		fmt.Fprintf(cmd.OutOrStdout(), "Maximum profit: %d\n", profit.MaxProfit(prices))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
