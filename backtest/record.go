package backtest

import (
	"math"
	"strconv"
	"time"

	"github.com/mrosset/stratlab/pkg/id"
	"github.com/mrosset/stratlab/strategy"
)

// Record is the serializable result of a run, shaped for the persistence
// collaborator: identifying fields plus flat key/value parameter and result
// maps.
type Record struct {
	RunID        string
	Name         string
	Ticker       string
	StartDate    string // ISO-8601
	EndDate      string // ISO-8601
	StrategyType string
	Parameters   map[string]string
	Results      map[string]float64
	Created      time.Time
}

// NewRecord assembles the persistence record for one completed run. Result
// values may be NaN or ±Inf sentinels; stores that cannot represent them
// (JSON) are expected to null them out.
func NewRecord(name, ticker string, spec strategy.Spec, r *Result) Record {
	rec := Record{
		RunID:        id.New(),
		Name:         name,
		Ticker:       ticker,
		StrategyType: string(spec.Kind),
		Parameters:   spec.Parameters(),
		Created:      time.Now().UTC(),
	}

	if len(r.States) > 0 {
		rec.StartDate = r.States[0].Time.UTC().Format(time.RFC3339)
		rec.EndDate = r.States[len(r.States)-1].Time.UTC().Format(time.RFC3339)
	}

	m := r.Metrics()
	rec.Results = map[string]float64{
		"total_return":      m.TotalReturn,
		"annualized_return": m.AnnualizedReturn,
		"sharpe_ratio":      m.SharpeRatio,
		"max_drawdown":      m.MaxDrawdown,
		"final_equity":      m.FinalEquity,
		"total_trades":      float64(m.Trades.TotalTrades),
		"winning_trades":    float64(m.Trades.WinningTrades),
		"losing_trades":     float64(m.Trades.LosingTrades),
		"win_rate":          m.Trades.WinRate,
		"avg_win":           m.Trades.AvgWin,
		"avg_loss":          m.Trades.AvgLoss,
		"profit_factor":     m.Trades.ProfitFactor,
	}
	return rec
}

// ResultString renders one result value for display and CSV storage, keeping
// the NaN/Inf sentinels readable.
func ResultString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
