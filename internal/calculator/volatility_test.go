package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnSeries(t *testing.T) {
	got := ReturnSeries(sampleCloses)
	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.InDelta(t, 0.013002364066193853, got[1], 1e-12)
	assert.InDelta(t, -0.005834305717619603, got[2], 1e-12)
	assert.InDelta(t, -0.011737089201877934, got[3], 1e-12)
}

func TestVolatilitySeries_MinPeriodsOne(t *testing.T) {
	got := VolatilitySeries(ReturnSeries(sampleCloses), 3)
	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, 0.0, got[1])
	assert.InDelta(t, 0.013319536939106234, got[2], 1e-12)
	assert.InDelta(t, 0.012920936043295339, got[3], 1e-12)
}

func TestVolatilitySeries_MatchesSampleStdDev(t *testing.T) {
	returns := []float64{math.NaN(), 0.01, -0.02, 0.03, 0.005}
	got := VolatilitySeries(returns, 3)

	window := []float64{-0.02, 0.03, 0.005}
	mean := (window[0] + window[1] + window[2]) / 3
	var ss float64
	for _, r := range window {
		ss += (r - mean) * (r - mean)
	}
	assert.InDelta(t, math.Sqrt(ss/2), got[4], 1e-12)
}

func TestPriceRange(t *testing.T) {
	_, ok := PriceRange(nil)
	assert.False(t, ok)

	r, ok := PriceRange(sampleBars())
	require.True(t, ok)
	assert.Equal(t, 43200.0, r.High)
	assert.Equal(t, 41800.0, r.Low)
	assert.InDelta(t, (42100.0-41800.0)/(43200.0-41800.0), r.Position, 1e-12)
}
