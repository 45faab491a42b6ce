// Package options prices vanilla equity options under the Black-Scholes and
// binomial-tree models. Everything in here is a pure function over plain
// scalars: no state survives a call.
//
// Degenerate inputs (non-positive price, strike, time, or volatility) never
// raise; they yield NaN outputs that callers must check before use.
package options

import (
	"fmt"
	"math"
	"strings"
)

// Kind distinguishes calls from puts.
type Kind int

const (
	Call Kind = iota
	Put
)

func (k Kind) String() string {
	if k == Put {
		return "put"
	}
	return "call"
}

// ParseKind maps a configuration string to a Kind, failing fast on anything
// but "call" or "put".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return 0, fmt.Errorf("unknown option type %q (supported: call, put)", s)
	}
}

// Quote carries the pricing inputs: spot, strike, time to expiry in years,
// annual risk-free rate, and annual volatility (typically an implied vol
// sourced per contract).
type Quote struct {
	S     float64
	K     float64
	T     float64
	R     float64
	Sigma float64
	Kind  Kind
}

// degenerate reports inputs for which the models are undefined.
func (q Quote) degenerate() bool {
	return q.T <= 0 || q.Sigma <= 0 || q.S <= 0 || q.K <= 0 ||
		math.IsNaN(q.T) || math.IsNaN(q.Sigma) || math.IsNaN(q.S) || math.IsNaN(q.K) || math.IsNaN(q.R)
}

// Sensitivities is the six-field Greeks+price record. Theta is per calendar
// day, vega per volatility point, rho per 1% rate move.
type Sensitivities struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
	Price float64
}

// IsNaN reports whether the record is the all-NaN degenerate sentinel.
func (s Sensitivities) IsNaN() bool {
	return math.IsNaN(s.Price)
}
