package journal

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrosset/stratlab/backtest"
)

func testRecord(runID string) backtest.Record {
	return backtest.Record{
		RunID:        runID,
		Name:         "spy-ma-cross",
		Ticker:       "SPY",
		StartDate:    "2024-01-01T00:00:00Z",
		EndDate:      "2024-06-01T00:00:00Z",
		StrategyType: "ma_cross",
		Parameters:   map[string]string{"short_window": "20", "long_window": "50"},
		Results: map[string]float64{
			"total_return":  12.5,
			"sharpe_ratio":  math.NaN(),
			"profit_factor": math.Inf(1),
		},
		Created: time.Now().UTC().Truncate(time.Second),
	}
}

func testTrades() []backtest.Trade {
	entry := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	return []backtest.Trade{
		{EntryTime: entry, ExitTime: entry.AddDate(0, 0, 10), EntryPrice: 100, ExitPrice: 110, ReturnPct: 10, Profitable: true},
		{EntryTime: entry.AddDate(0, 1, 0), ExitTime: entry.AddDate(0, 1, 5), EntryPrice: 120, ExitPrice: 115, ReturnPct: -4.1667, Profitable: false},
	}
}

func newTestSQLite(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestSQLiteRunRoundTrip(t *testing.T) {
	j := newTestSQLite(t)

	rec := testRecord("run-1")
	require.NoError(t, j.RecordRun(rec))

	got, err := j.GetRun("run-1")
	require.NoError(t, err)

	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.Ticker, got.Ticker)
	assert.Equal(t, rec.StartDate, got.StartDate)
	assert.Equal(t, rec.StrategyType, got.StrategyType)
	assert.Equal(t, rec.Parameters, got.Parameters)

	// finite metrics survive; NaN/Inf are stored as null and come back absent
	assert.InDelta(t, 12.5, got.Results["total_return"], 1e-9)
	_, hasSharpe := got.Results["sharpe_ratio"]
	assert.False(t, hasSharpe)
	_, hasPF := got.Results["profit_factor"]
	assert.False(t, hasPF)
}

func TestSQLiteGetRunMissing(t *testing.T) {
	j := newTestSQLite(t)

	_, err := j.GetRun("no-such-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-run")
}

func TestSQLiteListRuns(t *testing.T) {
	j := newTestSQLite(t)

	older := testRecord("run-old")
	older.Created = time.Now().UTC().Add(-time.Hour)
	newer := testRecord("run-new")

	require.NoError(t, j.RecordRun(older))
	require.NoError(t, j.RecordRun(newer))

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].RunID, "newest first")
	assert.Equal(t, "run-old", runs[1].RunID)
}

func TestSQLiteTradesRoundTrip(t *testing.T) {
	j := newTestSQLite(t)

	require.NoError(t, j.RecordRun(testRecord("run-1")))
	trades := testTrades()
	require.NoError(t, j.RecordTrades("run-1", trades))

	got, err := j.ListTradesByRun("run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].EntryTime.Equal(trades[0].EntryTime))
	assert.InDelta(t, trades[0].EntryPrice, got[0].EntryPrice, 1e-9)
	assert.True(t, got[0].Profitable)
	assert.False(t, got[1].Profitable)
	assert.InDelta(t, trades[1].ReturnPct, got[1].ReturnPct, 1e-9)

	none, err := j.ListTradesByRun("other-run")
	require.NoError(t, err)
	assert.Empty(t, none)
}
