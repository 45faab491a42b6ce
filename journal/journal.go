// Package journal persists completed backtest runs and their realized trades.
// The core engines never touch it; the CLI (or any other caller) hands a
// finished record across this boundary.
package journal

import (
	"github.com/mrosset/stratlab/backtest"
)

// Journal is the persistence collaborator for backtest results.
type Journal interface {
	RecordRun(rec backtest.Record) error
	RecordTrades(runID string, trades []backtest.Trade) error
	Close() error
}
