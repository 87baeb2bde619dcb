package classifier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SignalSentinel/internal/model"
)

var demo = model.WindowConfig{ShortMA: 3, LongMA: 5, EMA: 3, Momentum: 3, Volatility: 3, Mode: model.ModeDemo}

// lastBar builds a one-bar indicator set carrying the given latest values.
func lastBar(ema, shortMA, momentum, vol float64) model.IndicatorSeries {
	return model.IndicatorSeries{
		ShortMA:    []float64{shortMA},
		LongMA:     []float64{shortMA},
		EMA:        []float64{ema},
		Momentum:   []float64{momentum},
		Return:     []float64{math.NaN()},
		Volatility: []float64{vol},
	}
}

func TestVolatilityRegime_AllBoundaries(t *testing.T) {
	tests := []struct {
		vol    float64
		regime model.VolatilityRegime
	}{
		{0, model.VolatilityLow},
		{0.0099, model.VolatilityLow},
		{0.01, model.VolatilityMedium},
		{0.0249, model.VolatilityMedium},
		{0.025, model.VolatilityHigh},
		{0.2, model.VolatilityHigh},
		{math.NaN(), model.VolatilityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.regime, volatilityRegime(tt.vol), "vol=%v", tt.vol)
	}
}

func TestMomentumState_AllBoundaries(t *testing.T) {
	tests := []struct {
		value float64
		state model.MomentumState
	}{
		{0, model.MomentumOversold},
		{29.999, model.MomentumOversold},
		{30, model.MomentumNeutral},
		{50, model.MomentumNeutral},
		{70, model.MomentumNeutral},
		{70.001, model.MomentumOverbought},
		{100, model.MomentumOverbought},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.state, momentumState(tt.value), "momentum=%v", tt.value)
	}
}

func TestClassify_TrendBiasTieIsBearish(t *testing.T) {
	snap, err := Classify(lastBar(42575, 42575, 50, 0), demo)
	require.NoError(t, err)
	assert.Equal(t, model.BiasBearish, snap.TrendBias)

	snap, err = Classify(lastBar(42575.01, 42575, 50, 0), demo)
	require.NoError(t, err)
	assert.Equal(t, model.BiasBullish, snap.TrendBias)
}

func TestClassify_ReadsLastBarOnly(t *testing.T) {
	ind := model.IndicatorSeries{
		ShortMA:    []float64{10, 20},
		LongMA:     []float64{10, 20},
		EMA:        []float64{99, 21},
		Momentum:   []float64{5, 80},
		Return:     []float64{math.NaN(), 0.1},
		Volatility: []float64{math.NaN(), 0.005},
	}
	snap, err := Classify(ind, demo)
	require.NoError(t, err)
	assert.Equal(t, model.SignalSnapshot{
		VolatilityRegime: model.VolatilityLow,
		TrendBias:        model.BiasBullish,
		MomentumState:    model.MomentumOverbought,
		LatestMomentum:   80,
		LatestVolatility: 0.005,
		MomentumWindow:   3,
	}, snap)
}

func TestClassify_EmptySeries(t *testing.T) {
	_, err := Classify(model.IndicatorSeries{}, demo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInsufficientData))
}

func TestClassify_Idempotent(t *testing.T) {
	ind := lastBar(101, 100, 64.2, 0.013)
	a, errA := Classify(ind, demo)
	b, errB := Classify(ind, demo)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}
