// Package profitscan computes the maximum profit obtainable from at most two
// non-overlapping buy/sell transactions over a daily price series.
//
// 🚀 What is profitscan?
//
//	A small, dependency-light library built around one finite-state scan:
//		• profit/ — the O(n) four-state maximum-profit scan, a single-transaction
//		  variant, and optional recovery of the winning trades themselves
//		• series/ — deterministic synthetic price paths (GBM random walks and
//		  linear ramps) for benchmarks, property tests and demos
//		• cmd/profitscan — the demonstration CLI: fixed demo series, ad-hoc
//		  scans from arguments or JSON files, and synthetic-walk scans
//
// ✨ Why choose profitscan?
//
//   - One pass, constant memory – no DP tables, no allocation in the core scan
//   - Total over its input – empty, single-day, flat and falling series all
//     return 0 without special cases
//   - Deterministic tooling – seeded generators, reproducible benchmarks
//
// Quick example:
//
//	prices := []int64{3, 3, 5, 0, 0, 3, 1, 4}
//	fmt.Println(profit.MaxProfit(prices)) // 6
//
// Dive into profit/doc.go for the recurrence and series/doc.go for the
// generators.
//
//	go get github.com/katalvlaran/profitscan
package profitscan
