package market

import (
	"fmt"
	"math"
	"time"
)

// Series is a time-ordered sequence of bars, one per period, with strictly
// increasing timestamps.
type Series []Bar

// Validate checks the ordering invariant. An empty series is valid.
func (s Series) Validate() error {
	for i := 1; i < len(s); i++ {
		if !s[i].Time.After(s[i-1].Time) {
			return fmt.Errorf("series: timestamps not strictly increasing at index %d (%s >= %s)",
				i, s[i-1].Time.Format(time.RFC3339), s[i].Time.Format(time.RFC3339))
		}
	}
	return nil
}

// Closes returns the close column.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Clone returns a copy of the series. Annotation works on a clone so the
// caller's series stays untouched.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// SpanDays returns the whole calendar days between the first and last bar.
func (s Series) SpanDays() int {
	if len(s) < 2 {
		return 0
	}
	return int(s[len(s)-1].Time.Sub(s[0].Time).Hours() / 24)
}

// HasRSI reports whether the RSI column carries any finite value.
func (s Series) HasRSI() bool {
	return s.hasColumn(func(b Bar) float64 { return b.RSI })
}

// HasMACD reports whether both MACD columns carry finite values.
func (s Series) HasMACD() bool {
	return s.hasColumn(func(b Bar) float64 { return b.MACD }) &&
		s.hasColumn(func(b Bar) float64 { return b.MACDSignal })
}

// HasMA reports whether both moving-average columns carry finite values.
func (s Series) HasMA() bool {
	return s.hasColumn(func(b Bar) float64 { return b.ShortMA }) &&
		s.hasColumn(func(b Bar) float64 { return b.LongMA })
}

func (s Series) hasColumn(col func(Bar) float64) bool {
	for _, b := range s {
		if !math.IsNaN(col(b)) {
			return true
		}
	}
	return false
}
