package backtest

import (
	"time"
)

// Trade is a realized entry/exit pair reconstructed from the position-change
// sequence after a run.
type Trade struct {
	EntryTime  time.Time
	ExitTime   time.Time
	EntryPrice float64
	ExitPrice  float64
	ReturnPct  float64
	Profitable bool
}

// Trades pairs position changes into round trips: the first buy opens a
// trade, the next sell while in-trade closes it. Only one open trade is
// modeled at a time; a buy while already in-trade and a sell while flat are
// both ignored. A trade left open at the end of the series is not counted.
func (r *Result) Trades() []Trade {
	var trades []Trade

	inTrade := false
	var entryTime time.Time
	var entryPrice float64

	for i, change := range r.Changes {
		if change == 0 || i >= len(r.States) {
			continue
		}
		state := r.States[i]

		switch {
		case change > 0 && !inTrade:
			inTrade = true
			entryTime = state.Time
			entryPrice = state.Close

		case change < 0 && inTrade:
			returnPct := (state.Close/entryPrice - 1) * 100
			trades = append(trades, Trade{
				EntryTime:  entryTime,
				ExitTime:   state.Time,
				EntryPrice: entryPrice,
				ExitPrice:  state.Close,
				ReturnPct:  returnPct,
				Profitable: returnPct > 0,
			})
			inTrade = false
		}
	}

	return trades
}
