package strategy

import (
	"fmt"

	"github.com/mrosset/stratlab/indicators"
	"github.com/mrosset/stratlab/market"
)

// MovingAverageCross signals long whenever the short-window simple moving
// average of closes is above the long-window one, and flat otherwise. It is
// level-triggered: the position change series carries the actual cross bars.
type MovingAverageCross struct {
	Short int
	Long  int
}

// NewMovingAverageCross validates the window ordering.
func NewMovingAverageCross(short, long int) (*MovingAverageCross, error) {
	if short <= 0 || long <= 0 {
		return nil, fmt.Errorf("ma cross: windows must be positive, got short=%d long=%d", short, long)
	}
	if short >= long {
		return nil, fmt.Errorf("ma cross: short window %d must be less than long window %d", short, long)
	}
	return &MovingAverageCross{Short: short, Long: long}, nil
}

func (m *MovingAverageCross) Name() string { return "Moving Average Crossover" }

func (m *MovingAverageCross) GenerateSignals(s market.Series) ([]Signal, error) {
	shortMA, longMA, err := maColumns(s, m.Short, m.Long)
	if err != nil {
		return nil, err
	}

	signals := make([]Signal, len(s))
	for i := range s {
		// NaN comparisons are false: warmup bars stay Flat.
		if shortMA[i] > longMA[i] {
			signals[i] = Buy
		}
	}
	return signals, nil
}

// maColumns uses the precomputed MA bars when the data source provided them
// and computes the SMA columns itself otherwise.
func maColumns(s market.Series, short, long int) (shortMA, longMA []float64, err error) {
	if s.HasMA() {
		shortMA = make([]float64, len(s))
		longMA = make([]float64, len(s))
		for i, b := range s {
			shortMA[i] = b.ShortMA
			longMA[i] = b.LongMA
		}
		return shortMA, longMA, nil
	}

	closes := s.Closes()
	if shortMA, err = indicators.SMA(closes, short); err != nil {
		return nil, nil, err
	}
	if longMA, err = indicators.SMA(closes, long); err != nil {
		return nil, nil, err
	}
	return shortMA, longMA, nil
}
