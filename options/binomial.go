package options

import (
	"math"
)

// BinomialPrice values an option on a Cox-Ross-Rubinstein recombining tree
// with the given number of time steps. With american=true, each interior
// node takes the maximum of continuation and intrinsic value, which is what
// makes early exercise representable.
//
// Tree construction is O(steps²); callers needing bounded latency must size
// steps accordingly. Degenerate quotes or steps < 1 yield NaN.
func BinomialPrice(q Quote, steps int, american bool) float64 {
	if q.degenerate() || steps < 1 {
		return math.NaN()
	}

	dt := q.T / float64(steps)
	u := math.Exp(q.Sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(q.R*dt) - d) / (u - d)
	discount := math.Exp(-q.R * dt)

	// stock[j][i] is the price after i steps with j down-moves.
	stock := make([][]float64, steps+1)
	for j := range stock {
		stock[j] = make([]float64, steps+1)
	}
	for i := 0; i <= steps; i++ {
		for j := 0; j <= i; j++ {
			stock[j][i] = q.S * math.Pow(u, float64(i-j)) * math.Pow(d, float64(j))
		}
	}

	value := make([][]float64, steps+1)
	for j := range value {
		value[j] = make([]float64, steps+1)
	}
	for j := 0; j <= steps; j++ {
		value[j][steps] = intrinsic(q, stock[j][steps])
	}

	for i := steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			continuation := discount * (p*value[j][i+1] + (1-p)*value[j+1][i+1])
			if american {
				continuation = math.Max(continuation, intrinsic(q, stock[j][i]))
			}
			value[j][i] = continuation
		}
	}

	return value[0][0]
}

func intrinsic(q Quote, spot float64) float64 {
	if q.Kind == Call {
		return math.Max(spot-q.K, 0)
	}
	return math.Max(q.K-spot, 0)
}
