// Package series generates deterministic synthetic daily price series for
// benchmarks, property tests and demos.
//
// 🚀 What does it provide?
//
//   - RandomWalk — a discrete-time GBM price path quantised to integer ticks
//     (cents). Reproducible: the same seed always yields the same series.
//   - Ramp — an exact linear series, handy for monotone fixtures.
//
// Determinism policy (aligned with the option constructors):
//   - If WithRand is supplied → that *rand.Rand drives the walk (shared
//     stream across composed calls).
//   - Else → a local rand seeded by the 'seed' argument.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/profitscan/series"
//
//	prices, err := series.RandomWalk(252, 42,
//	  series.WithStart(100),
//	  series.WithVolatility(0.02),
//	)
//
// Errors:
//   - ErrBadSize — days < 1.
//
// Option constructors panic on nonsensical values (start ≤ 0, vol < 0,
// nil rand); algorithms never panic at runtime.
package series
