package indicators

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrosset/stratlab/market"
)

func TestAnnotate(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(market.Series, 60)
	for i := range series {
		c := float64(100 + i)
		series[i] = market.NewBar(start.AddDate(0, 0, i), c, c, c, c, 1000)
	}

	annotated := Annotate(series)
	require.Len(t, annotated, len(series))

	assert.True(t, annotated.HasRSI())
	assert.True(t, annotated.HasMACD())

	// rising closes: RSI pegged at 100 once warmed up
	assert.True(t, math.IsNaN(annotated[DefaultRSIPeriod-1].RSI))
	assert.InDelta(t, 100.0, annotated[DefaultRSIPeriod].RSI, 1e-9)

	// the input series must stay untouched
	assert.False(t, series.HasRSI())
}
