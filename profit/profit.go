package profit

import "math"

// MaxProfit — best profit from at most two non-overlapping trades
//
// Description:
//
//	A transaction buys on one day and sells on a later (or the same net
//	position's closing) day; the second buy may not precede the first sell,
//	though both may land on the same day. MaxProfit returns the largest
//	total profit over all such plans, including the empty plan (profit 0).
//
// Algorithm Outline (four-state forward scan):
//  1. Initialize buy1 = buy2 = unbought (no purchase has a cost bound yet),
//     sell1 = sell2 = 0 (doing nothing is always achievable).
//  2. For each price p in day order:
//     a. buy1  = min(buy1, p)          — cheapest first purchase so far
//     b. sell1 = max(sell1, p − buy1)  — best single-trade profit so far
//     c. buy2  = min(buy2, p − sell1)  — cheapest effective second purchase,
//     with the banked first-trade profit offsetting the price
//     d. sell2 = max(sell2, p − buy2)  — best two-trade profit so far
//  3. Return sell2.
//
// The update order a→b→c→d inside one step is load-bearing: buy2 must read
// the sell1 of the same iteration so a second trade may open on the very day
// the first one closes. Each buyX is clamped to a real value before the
// matching sellX reads it, so the sentinel never enters arithmetic.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Edge cases: len(prices) ≤ 1 returns 0 (the loop never improves sell2);
// negative and zero prices satisfy the same recurrence. The result is
// always ≥ 0.
const unbought = int64(math.MaxInt64)

// MaxProfit returns the maximum profit from at most two non-overlapping
// buy/sell transactions over prices.
func MaxProfit(prices []int64) int64 {
	var (
		buy1  = unbought // min cost of the first purchase
		sell1 int64      // max profit of one completed trade
		buy2  = unbought // min effective cost of the second purchase
		sell2 int64      // max profit of two completed trades
	)
	for _, p := range prices {
		if p < buy1 {
			buy1 = p
		}
		if g := p - buy1; g > sell1 {
			sell1 = g
		}
		if c := p - sell1; c < buy2 {
			buy2 = c
		}
		if g := p - buy2; g > sell2 {
			sell2 = g
		}
	}

	return sell2
}

// MaxProfitSingle returns the maximum profit from at most one buy/sell
// transaction over prices. It is the buy1/sell1 half of the four-state scan.
func MaxProfitSingle(prices []int64) int64 {
	var (
		buy  = unbought
		sell int64
	)
	for _, p := range prices {
		if p < buy {
			buy = p
		}
		if g := p - buy; g > sell {
			sell = g
		}
	}

	return sell
}

// Scan runs the two-transaction scan with the given options. A nil opts is
// treated as DefaultOptions(). When ReturnTrades is false the trades slice
// is nil and Scan is exactly MaxProfit.
func Scan(prices []int64, opts *Options) (int64, []Trade) {
	wantTrades := false
	if opts != nil {
		wantTrades = opts.ReturnTrades
	}
	if !wantTrades {
		return MaxProfit(prices), nil
	}

	return MaxProfitTrades(prices)
}

// MaxProfitTrades runs the same scan as MaxProfit and additionally recovers
// a witness: zero, one or two trades whose profits sum to the returned value.
//
// Witness invariants:
//   - trades are chronological and non-overlapping; the second buy day is
//     never earlier than the first sell day (same-day handover is allowed)
//   - every reported trade has strictly positive profit; a zero-profit
//     second leg is folded away and the single best trade reported instead
//   - the returned profit equals MaxProfit(prices)
//
// Ties resolve to the earliest witness: each state only moves on a strict
// improvement, so the first plan reaching the optimum wins.
func MaxProfitTrades(prices []int64) (int64, []Trade) {
	var (
		buy1  = unbought
		sell1 int64
		buy2  = unbought
		sell2 int64

		buy1Day             = -1     // day buy1 was last lowered
		firstBuy, firstSell = -1, -1 // witness of sell1
		bankBuy, bankSell   = -1, -1 // first trade banked into buy2
		buy2Day             = -1     // day buy2 was last lowered

		best = [4]int{-1, -1, -1, -1} // witness of sell2: b1, s1, b2, s2
	)
	for i, p := range prices {
		if p < buy1 {
			buy1, buy1Day = p, i
		}
		if g := p - buy1; g > sell1 {
			sell1, firstBuy, firstSell = g, buy1Day, i
		}
		if c := p - sell1; c < buy2 {
			buy2, buy2Day = c, i
			bankBuy, bankSell = firstBuy, firstSell
		}
		if g := p - buy2; g > sell2 {
			sell2 = g
			best = [4]int{bankBuy, bankSell, buy2Day, i}
		}
	}

	if sell2 == 0 {
		// Nothing profitable; the empty plan is the witness.
		return 0, nil
	}
	if best[0] < 0 {
		// No first trade was banked: the optimum is a single trade.
		return sell2, []Trade{tradeAt(prices, best[2], best[3])}
	}
	first := tradeAt(prices, best[0], best[1])
	second := tradeAt(prices, best[2], best[3])
	if second.Profit() == 0 {
		// The second leg opened and closed on the banking day; fold it away.
		return sell2, []Trade{first}
	}

	return sell2, []Trade{first, second}
}

// tradeAt materializes a Trade from its witness days.
func tradeAt(prices []int64, buyDay, sellDay int) Trade {
	return Trade{
		BuyDay:    buyDay,
		SellDay:   sellDay,
		BuyPrice:  prices[buyDay],
		SellPrice: prices[sellDay],
	}
}
