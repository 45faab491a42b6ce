package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournal(t *testing.T) {
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(runsPath, tradesPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordRun(testRecord("run-1")))
	require.NoError(t, j.RecordTrades("run-1", testTrades()))
	require.NoError(t, j.Close())

	runs := readCSV(t, runsPath)
	require.Len(t, runs, 2)
	assert.Equal(t, []string{"run_id", "name", "ticker", "start_date", "end_date", "strategy_type", "parameters", "results", "created"}, runs[0])
	assert.Equal(t, "run-1", runs[1][0])
	assert.Equal(t, "SPY", runs[1][2])
	assert.Contains(t, runs[1][6], `"short_window":"20"`)
	// NaN sharpe serialized as JSON null
	assert.Contains(t, runs[1][7], `"sharpe_ratio":null`)

	trades := readCSV(t, tradesPath)
	require.Len(t, trades, 3)
	assert.Equal(t, []string{"trade_id", "run_id", "entry_time", "exit_time", "entry_price", "exit_price", "return_pct", "profitable"}, trades[0])
	assert.Equal(t, "run-1", trades[1][1])
	assert.Equal(t, "100", trades[1][4])
	assert.Equal(t, "true", trades[1][7])
	assert.Equal(t, "false", trades[2][7])
	assert.NotEmpty(t, trades[1][0], "trade rows get their own IDs")
	assert.NotEqual(t, trades[1][0], trades[2][0])
}

func TestCSVJournalRejectsBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "runs.csv"), "trades.csv")
	require.Error(t, err)
}
