package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mrosset/stratlab/backtest"
	"github.com/mrosset/stratlab/pkg/id"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(rec backtest.Record) error {
	params, err := json.Marshal(rec.Parameters)
	if err != nil {
		return fmt.Errorf("journal: marshal parameters: %w", err)
	}
	results, err := json.Marshal(jsonSafeResults(rec.Results))
	if err != nil {
		return fmt.Errorf("journal: marshal results: %w", err)
	}

	_, err = j.db.Exec(`
		INSERT INTO runs
		(run_id, name, ticker, start_date, end_date, strategy_type, parameters, results, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Name, rec.Ticker, rec.StartDate, rec.EndDate,
		rec.StrategyType, string(params), string(results), rec.Created,
	)
	return err
}

func (j *SQLiteJournal) RecordTrades(runID string, trades []backtest.Trade) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO run_trades
		(trade_id, run_id, entry_time, exit_time, entry_price, exit_price, return_pct, profitable)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		profitable := 0
		if t.Profitable {
			profitable = 1
		}
		if _, err := stmt.Exec(id.New(), runID, t.EntryTime, t.ExitTime,
			t.EntryPrice, t.ExitPrice, t.ReturnPct, profitable); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

// jsonSafeResults nulls out the NaN/Inf sentinels, which encoding/json cannot
// represent. Readers treat a null metric as "undefined for this run".
func jsonSafeResults(results map[string]float64) map[string]any {
	out := make(map[string]any, len(results))
	for k, v := range results {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[k] = nil
			continue
		}
		out[k] = v
	}
	return out
}
