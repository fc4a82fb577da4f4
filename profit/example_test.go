package profit_test

import (
	"fmt"

	"github.com/katalvlaran/profitscan/profit"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMaxProfit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic demonstration series [3 3 5 0 0 3 1 4]: buy at 3, sell at 5,
//	re-enter at 0 and sell at 4 for a total of 6.
//
// Complexity: O(n) time, O(1) memory
func ExampleMaxProfit() {
	prices := []int64{3, 3, 5, 0, 0, 3, 1, 4}
	fmt.Println(profit.MaxProfit(prices))
	// Output:
	// 6
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMaxProfitTrades
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A series with two clearly separated rises. The witness names the exact
//	buy/sell days achieving the optimum: 1→7 and then 2→9.
//
// Complexity: O(n) time, O(1) memory
func ExampleMaxProfitTrades() {
	total, trades := profit.MaxProfitTrades([]int64{1, 2, 4, 2, 5, 7, 2, 4, 9, 0})
	fmt.Println("profit:", total)
	for _, t := range trades {
		fmt.Printf("buy day %d at %d, sell day %d at %d (+%d)\n",
			t.BuyDay, t.BuyPrice, t.SellDay, t.SellPrice, t.Profit())
	}
	// Output:
	// profit: 13
	// buy day 0 at 1, sell day 5 at 7 (+6)
	// buy day 6 at 2, sell day 8 at 9 (+7)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMaxProfitSingle
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	On a monotone rise a single trade already captures everything; the
//	two-trade scan agrees.
func ExampleMaxProfitSingle() {
	prices := []int64{1, 2, 3, 4, 5}
	fmt.Println(profit.MaxProfitSingle(prices), profit.MaxProfit(prices))
	// Output:
	// 4 4
}
