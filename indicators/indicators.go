// Package indicators computes the technical indicator columns the strategies
// consume. Every function returns a column aligned with its input: positions
// before the warmup window hold NaN rather than a partial value.
package indicators

import (
	"fmt"
	"math"
)

// SMA returns the trailing simple moving average of values over window bars.
// The first window-1 entries are NaN.
func SMA(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("sma: window must be positive, got %d", window)
	}

	out := nanSlice(len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out, nil
}

// EMA returns the exponential moving average with smoothing 2/(period+1),
// seeded by the SMA of the first period values. Entries before the seed are
// NaN.
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("ema: period must be positive, got %d", period)
	}

	out := nanSlice(len(values))
	if len(values) < period {
		return out, nil
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	ema := seed / float64(period)
	out[period-1] = ema

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		ema = (values[i]-ema)*multiplier + ema
		out[i] = ema
	}
	return out, nil
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
