package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/profitscan/profit"
)

var (
	// Flags
	scanInput  string
	scanTrades bool
)

// scanCmd scans an ad-hoc price series given as arguments or a JSON file.
var scanCmd = &cobra.Command{
	Use:   "scan [prices...]",
	Short: "Scan a price series from arguments or a JSON file",
	Long: `Computes the maximum two-transaction profit over the given series.
Prices come either as integer arguments or, with --input, as a JSON array
of integers.

Flags:
  --input   path to a JSON file holding the price array
  --trades  also list the trades achieving the result

Example:
  profitscan scan 1 2 4 2 5 7 2 4 9 0
  profitscan scan --input prices.json --trades`,
	Args: cobra.ArbitraryArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanInput, "input", "", "JSON file with the price array")
	scanCmd.Flags().BoolVar(&scanTrades, "trades", false, "list the trades achieving the result")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	log := newLogger()

	prices, err := loadPrices(args)
	if err != nil {
		log.Error().Err(err).Msg("could not load the price series")
		return err
	}
	log.Debug().Int("days", len(prices)).Msg("scanning price series")

	if !scanTrades {
		fmt.Fprintf(cmd.OutOrStdout(), "Maximum profit: %d\n", profit.MaxProfit(prices))
		return nil
	}

	total, trades := profit.MaxProfitTrades(prices)
	fmt.Fprintf(cmd.OutOrStdout(), "Maximum profit: %d\n", total)
	for i, t := range trades {
		fmt.Fprintf(cmd.OutOrStdout(), "  trade %d: buy day %d at %d, sell day %d at %d (+%d)\n",
			i+1, t.BuyDay, t.BuyPrice, t.SellDay, t.SellPrice, t.Profit())
	}

	return nil
}

// loadPrices resolves the series: --input wins over positional arguments.
func loadPrices(args []string) ([]int64, error) {
	if scanInput != "" {
		data, err := os.ReadFile(scanInput)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", scanInput, err)
		}
		var prices []int64
		if err = sonnet.Unmarshal(data, &prices); err != nil {
			return nil, fmt.Errorf("decode %s: %w", scanInput, err)
		}
		return prices, nil
	}

	prices := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse price %q: %w", arg, err)
		}
		prices = append(prices, v)
	}

	return prices, nil
}
