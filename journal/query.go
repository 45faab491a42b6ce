package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrosset/stratlab/backtest"
)

// RunSummary is a lightweight row of the runs table for listings.
type RunSummary struct {
	RunID        string
	Name         string
	Ticker       string
	StrategyType string
	Created      time.Time
}

// ListRuns returns all stored runs, newest first.
func (j *SQLiteJournal) ListRuns() ([]RunSummary, error) {
	rows, err := j.db.Query(`
		SELECT run_id, name, ticker, strategy_type, created
		FROM runs ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Name, &r.Ticker, &r.StrategyType, &r.Created); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun loads one stored record by ID. Metrics persisted as JSON null come
// back absent from the Results map.
func (j *SQLiteJournal) GetRun(runID string) (backtest.Record, error) {
	var rec backtest.Record
	var params, results string

	err := j.db.QueryRow(`
		SELECT run_id, name, ticker, start_date, end_date, strategy_type, parameters, results, created
		FROM runs WHERE run_id = ?`, runID).Scan(
		&rec.RunID, &rec.Name, &rec.Ticker, &rec.StartDate, &rec.EndDate,
		&rec.StrategyType, &params, &results, &rec.Created,
	)
	if err != nil {
		return backtest.Record{}, fmt.Errorf("journal: load run %s: %w", runID, err)
	}

	if err := json.Unmarshal([]byte(params), &rec.Parameters); err != nil {
		return backtest.Record{}, fmt.Errorf("journal: run %s parameters: %w", runID, err)
	}

	raw := map[string]*float64{}
	if err := json.Unmarshal([]byte(results), &raw); err != nil {
		return backtest.Record{}, fmt.Errorf("journal: run %s results: %w", runID, err)
	}
	rec.Results = make(map[string]float64, len(raw))
	for k, v := range raw {
		if v != nil {
			rec.Results[k] = *v
		}
	}

	return rec, nil
}

// ListTradesByRun returns the realized trades journaled for a run in entry
// order.
func (j *SQLiteJournal) ListTradesByRun(runID string) ([]backtest.Trade, error) {
	rows, err := j.db.Query(`
		SELECT entry_time, exit_time, entry_price, exit_price, return_pct, profitable
		FROM run_trades WHERE run_id = ? ORDER BY entry_time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []backtest.Trade
	for rows.Next() {
		var t backtest.Trade
		var profitable int
		if err := rows.Scan(&t.EntryTime, &t.ExitTime, &t.EntryPrice, &t.ExitPrice, &t.ReturnPct, &profitable); err != nil {
			return nil, err
		}
		t.Profitable = profitable != 0
		trades = append(trades, t)
	}
	return trades, rows.Err()
}
