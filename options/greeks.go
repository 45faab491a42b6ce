package options

import (
	"math"
)

// normCDF is the standard normal cumulative distribution Φ.
func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// normPDF is the standard normal density φ.
func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// Greeks prices a European option with the Black-Scholes closed form and
// returns the price together with its sensitivities. Degenerate quotes yield
// the all-NaN record.
func Greeks(q Quote) Sensitivities {
	if q.degenerate() {
		nan := math.NaN()
		return Sensitivities{Delta: nan, Gamma: nan, Theta: nan, Vega: nan, Rho: nan, Price: nan}
	}

	sqrtT := math.Sqrt(q.T)
	d1 := (math.Log(q.S/q.K) + (q.R+0.5*q.Sigma*q.Sigma)*q.T) / (q.Sigma * sqrtT)
	d2 := d1 - q.Sigma*sqrtT
	discount := math.Exp(-q.R * q.T)

	var s Sensitivities
	if q.Kind == Call {
		s.Delta = normCDF(d1)
		s.Price = q.S*normCDF(d1) - q.K*discount*normCDF(d2)
		s.Theta = (-q.S*normPDF(d1)*q.Sigma/(2*sqrtT) - q.R*q.K*discount*normCDF(d2)) / 365
		s.Rho = q.K * q.T * discount * normCDF(d2) / 100
	} else {
		s.Delta = -normCDF(-d1)
		s.Price = q.K*discount*normCDF(-d2) - q.S*normCDF(-d1)
		s.Theta = (-q.S*normPDF(d1)*q.Sigma/(2*sqrtT) + q.R*q.K*discount*normCDF(-d2)) / 365
		s.Rho = -q.K * q.T * discount * normCDF(-d2) / 100
	}

	s.Gamma = normPDF(d1) / (q.S * q.Sigma * sqrtT)
	s.Vega = q.S * normPDF(d1) * sqrtT / 100

	return s
}
