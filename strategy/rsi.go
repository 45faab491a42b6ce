package strategy

import (
	"fmt"

	"github.com/mrosset/stratlab/indicators"
	"github.com/mrosset/stratlab/market"
)

// RSIStrategy buys when RSI drops below the oversold threshold and sells when
// it rises above the overbought threshold. The thresholds cannot overlap, so
// at most one condition holds per bar.
type RSIStrategy struct {
	Period     int
	Overbought float64
	Oversold   float64
}

func NewRSIStrategy(period int, overbought, oversold float64) (*RSIStrategy, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rsi strategy: period must be positive, got %d", period)
	}
	if oversold <= 0 || overbought >= 100 || oversold >= overbought {
		return nil, fmt.Errorf("rsi strategy: need 0 < oversold < overbought < 100, got oversold=%g overbought=%g",
			oversold, overbought)
	}
	return &RSIStrategy{Period: period, Overbought: overbought, Oversold: oversold}, nil
}

func (r *RSIStrategy) Name() string { return "RSI Strategy" }

func (r *RSIStrategy) GenerateSignals(s market.Series) ([]Signal, error) {
	rsi, err := r.column(s)
	if err != nil {
		return nil, err
	}

	signals := make([]Signal, len(s))
	for i := range s {
		switch {
		case rsi[i] < r.Oversold:
			signals[i] = Buy
		case rsi[i] > r.Overbought:
			signals[i] = Sell
		}
	}
	return signals, nil
}

// column uses the precomputed RSI bars when the data source provided them and
// computes the column itself otherwise.
func (r *RSIStrategy) column(s market.Series) ([]float64, error) {
	if s.HasRSI() {
		rsi := make([]float64, len(s))
		for i, b := range s {
			rsi[i] = b.RSI
		}
		return rsi, nil
	}
	return indicators.RSI(s.Closes(), r.Period)
}
