package strategy

import (
	"github.com/mrosset/stratlab/indicators"
	"github.com/mrosset/stratlab/market"
)

// MACDStrategy is edge-triggered: it signals Buy only at the bar where the
// MACD line crosses above its signal line, Sell only at the cross-down bar,
// and Flat everywhere else.
type MACDStrategy struct{}

func NewMACDStrategy() *MACDStrategy { return &MACDStrategy{} }

func (m *MACDStrategy) Name() string { return "MACD Strategy" }

func (m *MACDStrategy) GenerateSignals(s market.Series) ([]Signal, error) {
	macd, signalLine := m.columns(s)

	signals := make([]Signal, len(s))
	for i := range s {
		if indicators.Crossover(macd, signalLine, i) {
			signals[i] = Buy
		} else if indicators.Crossover(signalLine, macd, i) {
			signals[i] = Sell
		}
	}
	return signals, nil
}

func (m *MACDStrategy) columns(s market.Series) (macd, signalLine []float64) {
	if !s.HasMACD() {
		s = indicators.Annotate(s)
	}
	macd = make([]float64, len(s))
	signalLine = make([]float64, len(s))
	for i, b := range s {
		macd[i] = b.MACD
		signalLine[i] = b.MACDSignal
	}
	return macd, signalLine
}
