// Package market holds the OHLCV bar model consumed by the strategy and
// backtest packages. A Series is immutable by convention once loaded: the
// engines only ever read it.
package market

import (
	"math"
	"time"
)

// Bar represents one OHLCV-aggregated period of price data.
//
// The indicator fields are optional precomputed columns. They default to NaN
// and are only meaningful after Annotate (or an external data source) fills
// them in; consumers must treat NaN as "column absent".
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	// Optional indicator columns (NaN when not annotated).
	RSI        float64
	MACD       float64
	MACDSignal float64
	ShortMA    float64
	LongMA     float64
}

// NewBar builds a Bar with all indicator columns unset (NaN).
func NewBar(t time.Time, open, high, low, close, volume float64) Bar {
	nan := math.NaN()
	return Bar{
		Time:       t,
		Open:       open,
		High:       high,
		Low:        low,
		Close:      close,
		Volume:     volume,
		RSI:        nan,
		MACD:       nan,
		MACDSignal: nan,
		ShortMA:    nan,
		LongMA:     nan,
	}
}
