package series

import (
	"fmt"
	"math"
)

// RandomWalk returns a deterministic daily price path of length days,
// quantised to integer ticks (cents).
//
// Model (discrete GBM with Δt = 1 day):
//
//	S_{d+1} = S_d * exp((μ - 0.5σ²) + σ·Z),  Z ~ N(0,1).
//
// Complexity: O(days) time, O(days) memory.
func RandomWalk(days int, seed int64, opts ...Option) ([]int64, error) {
	if days < 1 {
		return nil, fmt.Errorf("RandomWalk: days=%d: %w", days, ErrBadSize)
	}

	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	// Precompute the per-day constants once.
	driftTerm := cfg.mu - 0.5*cfg.vol*cfg.vol

	out := make([]int64, days)
	S := cfg.start
	for d := 0; d < days; d++ {
		S *= math.Exp(driftTerm + cfg.vol*rng.NormFloat64())
		out[d] = int64(math.Round(S * ticksPerUnit))
	}

	return out, nil
}

// Ramp returns the exact linear series start, start+step, ..., with days
// elements. A non-positive days yields nil. With step ≤ 0 the series is
// monotone non-increasing, which makes it a handy zero-profit fixture.
func Ramp(days int, start, step int64) []int64 {
	if days < 1 {
		return nil
	}

	out := make([]int64, days)
	v := start
	for d := 0; d < days; d++ {
		out[d] = v
		v += step
	}

	return out
}
