package options

import (
	"math"
)

// DefaultContractSize is the conventional shares-per-contract multiplier.
const DefaultContractSize = 100

// PayoffPoint is the profit/loss of an option position at one underlying
// price at expiry.
type PayoffPoint struct {
	Price       float64
	PerShare    float64
	PerContract float64
}

// Payoff tabulates the expiry P/L of a long option over a ±30% band around
// the current spot, net of the premium paid. contractSize <= 0 falls back to
// DefaultContractSize.
func Payoff(spot, strike, premium float64, kind Kind, contractSize int) []PayoffPoint {
	if !(spot > 0) {
		return nil
	}
	if contractSize <= 0 {
		contractSize = DefaultContractSize
	}

	const points = 100
	low, high := 0.7*spot, 1.3*spot
	step := (high - low) / (points - 1)

	curve := make([]PayoffPoint, points)
	for i := range curve {
		price := low + float64(i)*step
		var perShare float64
		if kind == Call {
			perShare = math.Max(price-strike, 0) - premium
		} else {
			perShare = math.Max(strike-price, 0) - premium
		}
		curve[i] = PayoffPoint{
			Price:       price,
			PerShare:    perShare,
			PerContract: perShare * float64(contractSize),
		}
	}
	return curve
}

// Breakeven returns the underlying price at which a long option position
// recovers its premium at expiry.
func Breakeven(strike, premium float64, kind Kind) float64 {
	if kind == Call {
		return strike + premium
	}
	return strike - premium
}
