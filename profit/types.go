package profit

// Trade is one completed buy-then-sell transaction recovered by the scan.
// Days are 0-based indices into the scanned price series; BuyDay ≤ SellDay.
type Trade struct {
	BuyDay    int
	SellDay   int
	BuyPrice  int64
	SellPrice int64
}

// Profit returns the net gain of the trade (SellPrice − BuyPrice).
func (t Trade) Profit() int64 { return t.SellPrice - t.BuyPrice }

// Options configures the scan.
//
// Fields:
//   - ReturnTrades — if true, Scan also recovers a witness: the concrete
//     trades achieving the returned profit. Witness tracking keeps the scan
//     O(n)/O(1); it only adds a handful of index bookkeeping scalars.
//
// Example:
//
//	opts := profit.DefaultOptions()
//	opts.ReturnTrades = true
//	total, trades := profit.Scan(prices, &opts)
type Options struct {
	ReturnTrades bool
}

// DefaultOptions returns the canonical defaults: profit only, no witness.
func DefaultOptions() Options {
	return Options{ReturnTrades: false}
}
