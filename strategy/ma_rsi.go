package strategy

import (
	"fmt"

	"github.com/mrosset/stratlab/indicators"
	"github.com/mrosset/stratlab/market"
)

// MAWithRSI is the moving-average crossover with an RSI filter: entries and
// exits need both the MA relationship and the RSI threshold on the same bar.
type MAWithRSI struct {
	Short   int
	Long    int
	RSIBuy  float64
	RSISell float64
}

func NewMAWithRSI(short, long int, rsiBuy, rsiSell float64) (*MAWithRSI, error) {
	if short <= 0 || long <= 0 || short >= long {
		return nil, fmt.Errorf("ma+rsi: need 0 < short < long, got short=%d long=%d", short, long)
	}
	if rsiBuy <= 0 || rsiSell >= 100 || rsiBuy >= rsiSell {
		return nil, fmt.Errorf("ma+rsi: need 0 < rsi_buy < rsi_sell < 100, got rsi_buy=%g rsi_sell=%g",
			rsiBuy, rsiSell)
	}
	return &MAWithRSI{Short: short, Long: long, RSIBuy: rsiBuy, RSISell: rsiSell}, nil
}

func (m *MAWithRSI) Name() string { return "MA with RSI Filter" }

func (m *MAWithRSI) GenerateSignals(s market.Series) ([]Signal, error) {
	if !s.HasRSI() {
		s = indicators.Annotate(s)
	}
	shortMA, longMA, err := maColumns(s, m.Short, m.Long)
	if err != nil {
		return nil, err
	}

	signals := make([]Signal, len(s))
	for i, b := range s {
		switch {
		case shortMA[i] > longMA[i] && b.RSI < m.RSIBuy:
			signals[i] = Buy
		case shortMA[i] < longMA[i] && b.RSI > m.RSISell:
			signals[i] = Sell
		}
	}
	return signals, nil
}
