package strategy

import (
	"github.com/mrosset/stratlab/market"
)

// Strategy generates one signal per bar of the input series.
//
// Implementations must be deterministic and must not modify the series. Bars
// inside an indicator warmup window produce Flat (NaN indicator comparisons
// are false), so short series degrade to an all-Flat signal sequence rather
// than failing.
type Strategy interface {
	Name() string
	GenerateSignals(s market.Series) ([]Signal, error)
}
