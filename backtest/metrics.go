package backtest

import (
	"math"

	"github.com/montanaflynn/stats"
)

// TradeStats summarizes trade-level outcomes. Percentages are expressed as
// percent (win rate 55.0, not 0.55).
type TradeStats struct {
	TotalTrades   int
	BuyTrades     int
	SellTrades    int
	WinningTrades int
	LosingTrades  int
	WinRate       float64
	AvgWin        float64
	AvgLoss       float64
	ProfitFactor  float64
}

// Metrics is the read-only summary of a completed run. Returns and drawdown
// are percentages; MaxDrawdown is negative. Degenerate inputs surface as NaN
// or ±Inf sentinels, never as silent zeros: an all-flat run has a NaN Sharpe
// (zero return deviation) and a run with no losing trades has a +Inf profit
// factor.
type Metrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	SharpeRatio      float64
	MaxDrawdown      float64
	FinalEquity      float64
	Trades           TradeStats
}

// Metrics derives the summary statistics from the portfolio history.
//
// The Sharpe ratio annualizes with sqrt(252) and therefore assumes daily
// bars; callers feeding other intervals get a mis-scaled value.
func (r *Result) Metrics() Metrics {
	nan := math.NaN()
	m := Metrics{
		TotalReturn:      nan,
		AnnualizedReturn: nan,
		SharpeRatio:      nan,
		MaxDrawdown:      nan,
		FinalEquity:      nan,
		Trades:           r.tradeStats(),
	}
	if len(r.States) == 0 {
		return m
	}

	returns := make([]float64, len(r.States))
	for i, s := range r.States {
		returns[i] = s.Return
	}

	mean, errMean := stats.Mean(returns)
	std, errStd := stats.StandardDeviationSample(returns)
	if errMean == nil && errStd == nil {
		m.SharpeRatio = math.Sqrt(252) * mean / std
	}

	m.MaxDrawdown = maxDrawdown(returns) * 100

	final := r.States[len(r.States)-1].Total
	m.FinalEquity = final
	m.TotalReturn = (final/r.InitialCapital - 1) * 100

	days := int(r.States[len(r.States)-1].Time.Sub(r.States[0].Time).Hours() / 24)
	if days > 0 {
		m.AnnualizedReturn = (math.Pow(1+m.TotalReturn/100, 365.0/float64(days)) - 1) * 100
	} else {
		m.AnnualizedReturn = 0
	}

	return m
}

// maxDrawdown returns the deepest peak-to-trough decline of the cumulative
// return curve as a (negative) fraction.
func maxDrawdown(returns []float64) float64 {
	cum := 1.0
	runningMax := 1.0
	minDD := 0.0
	for _, ret := range returns {
		cum *= 1 + ret
		if cum > runningMax {
			runningMax = cum
		}
		if dd := cum/runningMax - 1; dd < minDD || math.IsNaN(dd) {
			minDD = dd
			if math.IsNaN(dd) {
				return dd
			}
		}
	}
	return minDD
}

func (r *Result) tradeStats() TradeStats {
	ts := TradeStats{}
	for _, change := range r.Changes {
		switch {
		case change > 0:
			ts.BuyTrades++
		case change < 0:
			ts.SellTrades++
		}
	}
	ts.TotalTrades = ts.BuyTrades + ts.SellTrades

	trades := r.Trades()
	if len(trades) == 0 {
		return ts
	}

	var winReturns, lossReturns []float64
	for _, trade := range trades {
		if trade.Profitable {
			winReturns = append(winReturns, trade.ReturnPct)
		} else {
			lossReturns = append(lossReturns, trade.ReturnPct)
		}
	}
	ts.WinningTrades = len(winReturns)
	ts.LosingTrades = len(lossReturns)
	ts.WinRate = float64(ts.WinningTrades) / float64(len(trades)) * 100

	if len(winReturns) > 0 {
		ts.AvgWin, _ = stats.Mean(winReturns)
	}
	if len(lossReturns) > 0 {
		ts.AvgLoss, _ = stats.Mean(lossReturns)
	}

	if ts.LosingTrades > 0 && ts.AvgLoss < 0 {
		ts.ProfitFactor = math.Abs(ts.AvgWin * float64(ts.WinningTrades) / (ts.AvgLoss * float64(ts.LosingTrades)))
	} else {
		ts.ProfitFactor = math.Inf(1)
	}

	return ts
}
