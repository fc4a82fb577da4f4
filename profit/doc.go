// Package profit computes the maximum profit obtainable from at most two
// non-overlapping buy/sell transactions over a daily price series, with
// optional recovery of the winning trades.
//
// 🚀 What does it solve?
//
//	Given prices[0..n-1], pick at most two buy-then-sell trades so that the
//	second buy happens no earlier than the first sell (selling and buying
//	again on the same day is allowed) and the summed profit is maximal.
//	Typical uses:
//	  • Backtesting a "two best swings" baseline for a trading window
//	  • Ranking instruments by achievable two-trade profit
//	  • Teaching material for online DP over price series
//
// ✨ Key features:
//   - single forward pass: O(n) time, O(1) extra memory, zero allocation
//   - total over any []int64 — empty and one-day series return 0, negative
//     and zero prices follow the same recurrence
//   - MaxProfitSingle for the one-trade restriction
//   - MaxProfitTrades recovers the buy/sell days achieving the optimum
//     (witness tracking stays O(1), in the spirit of dtw's ReturnPath)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/profitscan/profit"
//
//	best := profit.MaxProfit([]int64{3, 3, 5, 0, 0, 3, 1, 4}) // 6
//
//	total, trades := profit.MaxProfitTrades(prices)
//	for _, t := range trades {
//	  fmt.Println(t.BuyDay, "→", t.SellDay, "+", t.Profit())
//	}
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1)
//
// See example_test.go for worked scenarios.
package profit
