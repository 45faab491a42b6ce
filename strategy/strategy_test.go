package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrosset/stratlab/market"
)

func dailyBars(closes ...float64) market.Series {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(market.Series, len(closes))
	for i, c := range closes {
		s[i] = market.NewBar(start.AddDate(0, 0, i), c, c, c, c, 1000)
	}
	return s
}

func TestPositionChanges(t *testing.T) {
	t.Parallel()

	changes := PositionChanges([]Signal{Flat, Buy, Buy, Sell, Flat})
	assert.Equal(t, []int{0, 1, 0, -2, 1}, changes)

	assert.Equal(t, []int{0}, PositionChanges([]Signal{Buy}), "first bar has no prior signal")
	assert.Empty(t, PositionChanges(nil))
}

func TestMovingAverageCrossRisingSeries(t *testing.T) {
	t.Parallel()

	// strictly increasing closes: short MA > long MA on every bar where both
	// are defined, so there is a single buy change and never a sell.
	strat, err := NewMovingAverageCross(2, 3)
	require.NoError(t, err)

	series := dailyBars(10, 11, 12, 13, 14, 15, 16, 17, 18, 19)
	signals, err := strat.GenerateSignals(series)
	require.NoError(t, err)

	want := []Signal{Flat, Flat, Buy, Buy, Buy, Buy, Buy, Buy, Buy, Buy}
	assert.Equal(t, want, signals)

	buys, sells := 0, 0
	for _, change := range PositionChanges(signals) {
		if change > 0 {
			buys++
		} else if change < 0 {
			sells++
		}
	}
	assert.Equal(t, 1, buys)
	assert.Equal(t, 0, sells)
}

func TestMovingAverageCrossFlatSeriesStaysFlat(t *testing.T) {
	t.Parallel()

	strat, err := NewMovingAverageCross(2, 3)
	require.NoError(t, err)

	signals, err := strat.GenerateSignals(dailyBars(100, 100, 100, 100, 100))
	require.NoError(t, err)
	for i, sig := range signals {
		assert.Equal(t, Flat, sig, "bar %d", i)
	}
}

func TestMovingAverageCrossUsesPrecomputedColumns(t *testing.T) {
	t.Parallel()

	strat, err := NewMovingAverageCross(2, 3)
	require.NoError(t, err)

	// Flat closes would never signal; the precomputed MA columns must win.
	series := dailyBars(100, 100, 100, 100)
	shortPath := []float64{math.NaN(), 9, 11, 11}
	longPath := []float64{math.NaN(), 10, 10, 10}
	for i := range series {
		series[i].ShortMA = shortPath[i]
		series[i].LongMA = longPath[i]
	}

	signals, err := strat.GenerateSignals(series)
	require.NoError(t, err)
	assert.Equal(t, []Signal{Flat, Flat, Buy, Buy}, signals)
}

func TestMovingAverageCrossValidation(t *testing.T) {
	t.Parallel()

	_, err := NewMovingAverageCross(50, 20)
	assert.Error(t, err)
	_, err = NewMovingAverageCross(0, 20)
	assert.Error(t, err)
}

func TestRSIStrategyUsesPrecomputedColumn(t *testing.T) {
	t.Parallel()

	strat, err := NewRSIStrategy(14, 70, 30)
	require.NoError(t, err)

	// RSI driven from oversold to overbought: one buy change, then one sell.
	series := dailyBars(100, 90, 80, 120, 130)
	rsiPath := []float64{math.NaN(), 25, 20, 75, 80}
	for i := range series {
		series[i].RSI = rsiPath[i]
	}

	signals, err := strat.GenerateSignals(series)
	require.NoError(t, err)
	assert.Equal(t, []Signal{Flat, Buy, Buy, Sell, Sell}, signals)

	changes := PositionChanges(signals)
	buys, sells := 0, 0
	buyIdx, sellIdx := -1, -1
	for i, change := range changes {
		if change > 0 {
			buys++
			buyIdx = i
		} else if change < 0 {
			sells++
			sellIdx = i
		}
	}
	assert.Equal(t, 1, buys)
	assert.Equal(t, 1, sells)
	assert.Less(t, buyIdx, sellIdx, "buy must precede sell")
}

func TestRSIStrategyComputesColumnWhenAbsent(t *testing.T) {
	t.Parallel()

	strat, err := NewRSIStrategy(3, 70, 30)
	require.NoError(t, err)

	// falling closes push Wilder RSI to 0 < oversold
	signals, err := strat.GenerateSignals(dailyBars(100, 95, 90, 85, 80, 75))
	require.NoError(t, err)
	assert.Equal(t, Buy, signals[len(signals)-1])
}

func TestRSIStrategyValidation(t *testing.T) {
	t.Parallel()

	_, err := NewRSIStrategy(14, 30, 70) // thresholds swapped
	assert.Error(t, err)
	_, err = NewRSIStrategy(0, 70, 30)
	assert.Error(t, err)
}

func TestMACDStrategyEdgeTriggered(t *testing.T) {
	t.Parallel()

	series := dailyBars(100, 101, 102, 103, 104, 105)
	nan := math.NaN()
	macdPath := []float64{nan, -1, 1, 2, -1, -2}
	for i := range series {
		series[i].MACD = macdPath[i]
		series[i].MACDSignal = 0
	}
	series[0].MACDSignal = nan

	strat := NewMACDStrategy()
	signals, err := strat.GenerateSignals(series)
	require.NoError(t, err)

	// buy only at the cross-up bar, sell only at the cross-down bar
	assert.Equal(t, []Signal{Flat, Flat, Buy, Flat, Sell, Flat}, signals)
}

func TestMAWithRSIRequiresBothConditions(t *testing.T) {
	t.Parallel()

	strat, err := NewMAWithRSI(2, 3, 40, 60)
	require.NoError(t, err)

	// rising closes put short MA above long MA from bar 2 on; the RSI filter
	// only admits the entry where RSI is below the buy threshold.
	series := dailyBars(10, 11, 12, 13, 14)
	rsiPath := []float64{math.NaN(), 50, 35, 50, 65}
	for i := range series {
		series[i].RSI = rsiPath[i]
	}

	signals, err := strat.GenerateSignals(series)
	require.NoError(t, err)
	assert.Equal(t, []Signal{Flat, Flat, Buy, Flat, Flat}, signals)
}

func TestMAWithRSIUsesPrecomputedColumns(t *testing.T) {
	t.Parallel()

	strat, err := NewMAWithRSI(2, 3, 40, 60)
	require.NoError(t, err)

	// All three columns come from the data source; flat closes would
	// otherwise keep everything Flat.
	series := dailyBars(100, 100, 100)
	for i := range series {
		series[i].RSI = 35
		series[i].ShortMA = 11
		series[i].LongMA = 10
	}

	signals, err := strat.GenerateSignals(series)
	require.NoError(t, err)
	assert.Equal(t, []Signal{Buy, Buy, Buy}, signals)
}
