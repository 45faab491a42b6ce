package indicators

import (
	"fmt"
	"math"
)

// MACD returns the moving average convergence/divergence line and its signal
// line. The macd line is emaFast-emaSlow (NaN until the slow EMA is seeded);
// the signal line is an EMA of the defined portion of the macd line.
func MACD(values []float64, fast, slow, signal int) (macd, signalLine []float64, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, nil, fmt.Errorf("macd: periods must be positive, got fast=%d slow=%d signal=%d", fast, slow, signal)
	}
	if fast >= slow {
		return nil, nil, fmt.Errorf("macd: fast period %d must be shorter than slow period %d", fast, slow)
	}

	emaFast, err := EMA(values, fast)
	if err != nil {
		return nil, nil, err
	}
	emaSlow, err := EMA(values, slow)
	if err != nil {
		return nil, nil, err
	}

	macd = nanSlice(len(values))
	for i := range values {
		macd[i] = emaFast[i] - emaSlow[i] // NaN while either EMA is warming up
	}

	signalLine = nanSlice(len(values))
	if len(values) < slow {
		return macd, signalLine, nil
	}

	// Signal EMA runs over the defined tail of the macd line.
	defined := macd[slow-1:]
	tail, err := EMA(defined, signal)
	if err != nil {
		return nil, nil, err
	}
	copy(signalLine[slow-1:], tail)

	return macd, signalLine, nil
}

// Crossover reports an upward cross of a over b at index i: a is above b now
// and was at or below b on the previous bar. NaN on either bar means no cross.
func Crossover(a, b []float64, i int) bool {
	if i < 1 || i >= len(a) || i >= len(b) {
		return false
	}
	if anyNaN(a[i], b[i], a[i-1], b[i-1]) {
		return false
	}
	return a[i] > b[i] && a[i-1] <= b[i-1]
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
