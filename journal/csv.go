package journal

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/mrosset/stratlab/backtest"
	"github.com/mrosset/stratlab/pkg/id"
)

// CSVJournal appends runs and trades to two flat files. Rows are flushed on
// every write so a crashed process still leaves complete records behind.
type CSVJournal struct {
	runs   *csv.Writer
	trades *csv.Writer
	rf, tf *os.File
}

func NewCSV(runsPath, tradesPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		rf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	tw := csv.NewWriter(tf)

	fail := func(err error) (*CSVJournal, error) {
		rf.Close()
		tf.Close()
		return nil, err
	}

	if err := rw.Write([]string{"run_id", "name", "ticker", "start_date", "end_date", "strategy_type", "parameters", "results", "created"}); err != nil {
		return fail(err)
	}
	if err := tw.Write([]string{"trade_id", "run_id", "entry_time", "exit_time", "entry_price", "exit_price", "return_pct", "profitable"}); err != nil {
		return fail(err)
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return fail(err)
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return fail(err)
	}

	return &CSVJournal{runs: rw, trades: tw, rf: rf, tf: tf}, nil
}

func (j *CSVJournal) RecordRun(rec backtest.Record) error {
	params, err := json.Marshal(rec.Parameters)
	if err != nil {
		return err
	}
	results, err := json.Marshal(jsonSafeResults(rec.Results))
	if err != nil {
		return err
	}

	j.runs.Write([]string{
		rec.RunID,
		rec.Name,
		rec.Ticker,
		rec.StartDate,
		rec.EndDate,
		rec.StrategyType,
		string(params),
		string(results),
		rec.Created.Format(time.RFC3339),
	})
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordTrades(runID string, trades []backtest.Trade) error {
	for _, t := range trades {
		j.trades.Write([]string{
			id.New(),
			runID,
			t.EntryTime.Format(time.RFC3339),
			t.ExitTime.Format(time.RFC3339),
			strconv.FormatFloat(t.EntryPrice, 'f', -1, 64),
			strconv.FormatFloat(t.ExitPrice, 'f', -1, 64),
			strconv.FormatFloat(t.ReturnPct, 'f', -1, 64),
			strconv.FormatBool(t.Profitable),
		})
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	j.trades.Flush()
	if err := j.rf.Close(); err != nil {
		j.tf.Close()
		return err
	}
	return j.tf.Close()
}
