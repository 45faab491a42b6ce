// Package backtest replays a price series through a trading strategy and
// derives performance statistics from the resulting portfolio history.
//
// The engine is a pure, bounded computation: no I/O, no shared state. Each
// Run builds its own append-only portfolio history, so independent backtests
// (for example parameter sweeps) can run concurrently as long as each gets
// its own engine; the input series is read-only and safe to share.
package backtest

import (
	"fmt"
	"time"

	"github.com/mrosset/stratlab/market"
	"github.com/mrosset/stratlab/strategy"
)

// PortfolioState is one immutable row of the portfolio history.
// Invariant: Total == Holdings + Cash on every bar. Position never goes
// negative (long-only; sells are capped at the open position). Cash is NOT
// floored at zero: percentage sizing can over-spend, matching the permissive
// fill model of a margin-less simulation.
type PortfolioState struct {
	Time     time.Time
	Close    float64
	Change   int // position change that fired on this bar (0 = no trade)
	Position int // shares held after this bar
	Cash     float64
	Holdings float64
	Total    float64
	Return   float64 // period return vs previous bar's total
}

// Engine runs one strategy over one series. It owns its portfolio history
// exclusively during Run; the returned Result is read-only afterwards.
type Engine struct {
	Series         market.Series
	Strategy       strategy.Strategy
	InitialCapital float64
	Commission     float64 // per-side fraction, e.g. 0.001
	Sizing         Sizing
}

// Result is the completed portfolio history of one run.
type Result struct {
	InitialCapital float64
	Signals        []strategy.Signal
	Changes        []int
	States         []PortfolioState
}

// Run executes the backtest: generate signals, diff them into position
// changes, then fold bar by bar. Fills happen at each bar's close with
// commission applied per side; there is no slippage model. Each bar
// transition is final.
//
// An empty series is not an error: it produces an empty history whose
// derived metrics are NaN.
func (e *Engine) Run() (*Result, error) {
	if e.Strategy == nil {
		return nil, fmt.Errorf("backtest: strategy is required")
	}
	if e.InitialCapital <= 0 {
		return nil, fmt.Errorf("backtest: initial capital must be positive, got %g", e.InitialCapital)
	}
	if e.Commission < 0 || e.Commission >= 1 {
		return nil, fmt.Errorf("backtest: commission must be in [0,1), got %g", e.Commission)
	}

	signals, err := e.Strategy.GenerateSignals(e.Series)
	if err != nil {
		return nil, fmt.Errorf("backtest: generate signals: %w", err)
	}
	changes := strategy.PositionChanges(signals)

	result := &Result{
		InitialCapital: e.InitialCapital,
		Signals:        signals,
		Changes:        changes,
		States:         make([]PortfolioState, 0, len(e.Series)),
	}
	if len(e.Series) == 0 {
		return result, nil
	}

	// Bar 0 seeds the history; the first position change is always 0.
	prev := PortfolioState{
		Time:     e.Series[0].Time,
		Close:    e.Series[0].Close,
		Position: 0,
		Cash:     e.InitialCapital,
		Total:    e.InitialCapital,
	}
	result.States = append(result.States, prev)

	for t := 1; t < len(e.Series); t++ {
		bar := e.Series[t]
		state := PortfolioState{
			Time:     bar.Time,
			Close:    bar.Close,
			Position: prev.Position,
			Cash:     prev.Cash,
		}

		if change := changes[t]; change != 0 {
			shares := e.Sizing.Shares(bar.Close, prev.Total)
			switch {
			case change > 0:
				state.Change = change
				state.Position += shares
				state.Cash -= float64(shares) * bar.Close * (1 + e.Commission)
			case prev.Position > 0:
				// Long-only: never sell more than we hold.
				state.Change = change
				sold := min(shares, prev.Position)
				state.Position -= sold
				state.Cash += float64(sold) * bar.Close * (1 - e.Commission)
			}
			// A sell signal while flat is a no-op.
		}

		state.Holdings = float64(state.Position) * bar.Close
		state.Total = state.Holdings + state.Cash
		state.Return = state.Total/prev.Total - 1

		result.States = append(result.States, state)
		prev = state
	}

	return result, nil
}
