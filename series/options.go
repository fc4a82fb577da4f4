package series

import "math/rand"

// Defaults - single source of truth for the walk parameters.
const (
	// DefaultStart is the initial price S0 (> 0), in price units.
	DefaultStart = 100.0

	// DefaultDrift is the daily drift μ.
	DefaultDrift = 0.0005

	// DefaultVolatility is the daily volatility σ (≥ 0).
	DefaultVolatility = 0.02

	// ticksPerUnit quantises generated prices to integer ticks (cents).
	ticksPerUnit = 100.0
)

// config groups the resolved knobs for a generator call.
type config struct {
	start float64    // initial price > 0
	mu    float64    // daily drift
	vol   float64    // daily volatility ≥ 0
	rng   *rand.Rand // optional shared stream; nil ⇒ seed-local
}

// Option mutates the generator configuration.
type Option func(*config)

// WithStart sets the initial price S0. Panics if s ≤ 0.
func WithStart(s float64) Option {
	if s <= 0 {
		panic("series: WithStart requires s > 0")
	}
	return func(c *config) { c.start = s }
}

// WithDrift sets the daily drift μ (any finite value).
func WithDrift(mu float64) Option {
	return func(c *config) { c.mu = mu }
}

// WithVolatility sets the daily volatility σ. Panics if sigma < 0.
func WithVolatility(sigma float64) Option {
	if sigma < 0 {
		panic("series: WithVolatility requires sigma >= 0")
	}
	return func(c *config) { c.vol = sigma }
}

// WithRand installs a shared random stream, taking priority over the seed
// argument of the generator. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("series: WithRand requires a non-nil rand")
	}
	return func(c *config) { c.rng = rng }
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		start: DefaultStart,
		mu:    DefaultDrift,
		vol:   DefaultVolatility,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
