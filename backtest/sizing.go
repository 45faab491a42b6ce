package backtest

import (
	"fmt"
	"math"
	"strings"
)

// SizingMethod selects how a position change is translated into shares.
type SizingMethod int

const (
	// FixedDollar spends a fixed dollar amount per trade.
	FixedDollar SizingMethod = iota
	// Percentage spends a percentage of the prior total portfolio value.
	Percentage
	// FixedRisk sizes by a fixed percentage of the prior total value. Without
	// a stop-loss model it reduces to the Percentage formula.
	FixedRisk
	// FixedShares trades a fixed share count regardless of price.
	FixedShares
)

func (m SizingMethod) String() string {
	switch m {
	case FixedDollar:
		return "fixed_dollar"
	case Percentage:
		return "percentage"
	case FixedRisk:
		return "fixed_risk"
	case FixedShares:
		return "fixed_shares"
	}
	return fmt.Sprintf("SizingMethod(%d)", int(m))
}

// ParseSizingMethod maps a configuration key to its method. An unknown key is
// a configuration error and fails immediately.
func ParseSizingMethod(s string) (SizingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed_dollar":
		return FixedDollar, nil
	case "percentage":
		return Percentage, nil
	case "fixed_risk":
		return FixedRisk, nil
	case "fixed_shares":
		return FixedShares, nil
	default:
		return 0, fmt.Errorf("unknown sizing method %q (supported: fixed_dollar, percentage, fixed_risk, fixed_shares)", s)
	}
}

// Sizing is the position-sizing policy: a method plus its value (dollars,
// percent, or share count depending on the method).
type Sizing struct {
	Method SizingMethod
	Value  float64
}

// Shares computes the share count for a trade at the given price. The engine
// caps sells at the current position separately; this is the raw policy size.
// A non-positive or NaN price yields 0 shares for the price-dependent methods.
func (s Sizing) Shares(price, priorTotal float64) int {
	switch s.Method {
	case FixedShares:
		return int(s.Value)
	case Percentage, FixedRisk:
		if !(price > 0) {
			return 0
		}
		value := priorTotal * s.Value / 100
		return floorShares(value / price)
	default: // FixedDollar
		if !(price > 0) {
			return 0
		}
		return floorShares(s.Value / price)
	}
}

func floorShares(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return int(math.Floor(v))
}
