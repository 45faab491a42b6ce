package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	t.Parallel()

	out, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
	assert.InDelta(t, 4.0, out[4], 1e-12)
}

func TestSMARejectsBadWindow(t *testing.T) {
	t.Parallel()

	_, err := SMA([]float64{1, 2}, 0)
	assert.Error(t, err)
}

func TestSMAShortInputAllNaN(t *testing.T) {
	t.Parallel()

	out, err := SMA([]float64{1, 2}, 5)
	require.NoError(t, err)
	for i, v := range out {
		assert.True(t, math.IsNaN(v), "index %d", i)
	}
}

func TestEMA(t *testing.T) {
	t.Parallel()

	out, err := EMA([]float64{2, 4, 6, 8, 10}, 3)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	// seed SMA: (2+4+6)/3 = 4; multiplier 0.5
	assert.InDelta(t, 4.0, out[2], 1e-12)
	assert.InDelta(t, 6.0, out[3], 1e-12)
	assert.InDelta(t, 8.0, out[4], 1e-12)
}

func TestRSIExtremes(t *testing.T) {
	t.Parallel()

	rising, err := RSI([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rising[2]))
	assert.InDelta(t, 100.0, rising[3], 1e-12)
	assert.InDelta(t, 100.0, rising[5], 1e-12)

	falling, err := RSI([]float64{6, 5, 4, 3, 2, 1}, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, falling[5], 1e-12)
}

func TestRSIWilderSmoothing(t *testing.T) {
	t.Parallel()

	// gains 1,1 then loss 1: avgGain=(1+1)/2=1, avgLoss=0 -> 100 at index 2,
	// then avgGain=(1*1+0)/2=0.5, avgLoss=(0*1+1)/2=0.5 -> RSI 50.
	out, err := RSI([]float64{10, 11, 12, 11}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, out[2], 1e-12)
	assert.InDelta(t, 50.0, out[3], 1e-12)
}

func TestMACDWarmup(t *testing.T) {
	t.Parallel()

	values := make([]float64, 60)
	for i := range values {
		values[i] = float64(100 + i)
	}

	macd, signal, err := MACD(values, 12, 26, 9)
	require.NoError(t, err)
	require.Len(t, macd, len(values))
	require.Len(t, signal, len(values))

	assert.True(t, math.IsNaN(macd[24]))
	assert.False(t, math.IsNaN(macd[25]))
	// signal line needs its own warmup on top of the slow EMA
	assert.True(t, math.IsNaN(signal[30]))
	assert.False(t, math.IsNaN(signal[33]))

	// steadily rising closes keep the fast EMA above the slow one
	assert.Greater(t, macd[59], 0.0)
}

func TestMACDValidatesPeriods(t *testing.T) {
	t.Parallel()

	_, _, err := MACD([]float64{1, 2, 3}, 26, 12, 9)
	assert.Error(t, err)
}

func TestCrossover(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := []float64{nan, -1, 1, 2, -1}
	b := []float64{nan, 0, 0, 0, 0}

	assert.False(t, Crossover(a, b, 1), "NaN on previous bar")
	assert.True(t, Crossover(a, b, 2), "cross up")
	assert.False(t, Crossover(a, b, 3), "already above, no edge")
	assert.True(t, Crossover(b, a, 4), "cross down seen from the other side")
}
