package series_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/profitscan/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomWalk_Deterministic verifies that a fixed seed always reproduces
// the same series and that distinct seeds diverge.
func TestRandomWalk_Deterministic(t *testing.T) {
	a, err := series.RandomWalk(64, 42)
	require.NoError(t, err)
	b, err := series.RandomWalk(64, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the walk")

	c, err := series.RandomWalk(64, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds must diverge")
}

// TestRandomWalk_LengthAndPositivity checks shape and sign for a fixed seed.
func TestRandomWalk_LengthAndPositivity(t *testing.T) {
	prices, err := series.RandomWalk(252, 7)
	require.NoError(t, err)
	require.Len(t, prices, 252)
	for d, p := range prices {
		assert.Positive(t, p, "day %d: GBM prices stay positive", d)
	}
}

// TestRandomWalk_BadSize ensures days < 1 errors with ErrBadSize.
func TestRandomWalk_BadSize(t *testing.T) {
	for _, days := range []int{0, -1, -100} {
		prices, err := series.RandomWalk(days, 1)
		assert.ErrorIs(t, err, series.ErrBadSize, "days=%d must error", days)
		assert.Nil(t, prices)
	}
}

// TestRandomWalk_WithRandPriority verifies the determinism policy: a supplied
// *rand.Rand overrides the seed argument.
func TestRandomWalk_WithRandPriority(t *testing.T) {
	viaRand, err := series.RandomWalk(32, 999, series.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	viaSeed, err := series.RandomWalk(32, 7)
	require.NoError(t, err)
	assert.Equal(t, viaSeed, viaRand, "WithRand must take priority over the seed")
}

// TestRandomWalk_OptionsChangeThePath confirms the knobs are live.
func TestRandomWalk_OptionsChangeThePath(t *testing.T) {
	base, err := series.RandomWalk(32, 11)
	require.NoError(t, err)
	shifted, err := series.RandomWalk(32, 11, series.WithStart(250))
	require.NoError(t, err)
	assert.NotEqual(t, base, shifted, "WithStart must move the path")

	calm, err := series.RandomWalk(32, 11, series.WithVolatility(0))
	require.NoError(t, err)
	assert.NotEqual(t, base, calm, "WithVolatility must move the path")
}

// TestOptions_PanicOnInvalid checks the option-constructor panic policy.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { series.WithStart(0) }, "WithStart(0) must panic")
	assert.Panics(t, func() { series.WithStart(-1) }, "WithStart(-1) must panic")
	assert.Panics(t, func() { series.WithVolatility(-0.1) }, "negative volatility must panic")
	assert.Panics(t, func() { series.WithRand(nil) }, "nil rand must panic")
}

// TestRamp covers the exact linear generator.
func TestRamp(t *testing.T) {
	assert.Equal(t, []int64{5, 3, 1, -1}, series.Ramp(4, 5, -2))
	assert.Equal(t, []int64{10, 10, 10}, series.Ramp(3, 10, 0))
	assert.Nil(t, series.Ramp(0, 1, 1))
	assert.Nil(t, series.Ramp(-3, 1, 1))
}
