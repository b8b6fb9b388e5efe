package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pocketbook/ledger"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVExporterHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	timelinePath := filepath.Join(dir, "timeline.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	x, err := NewCSV(timelinePath, equityPath)
	require.NoError(t, err)
	require.NoError(t, x.Close())

	assert.Equal(t, [][]string{timelineHeader}, readCSV(t, timelinePath))
	assert.Equal(t, [][]string{equityHeader}, readCSV(t, equityPath))
}

func TestCSVExporterExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	timelinePath := filepath.Join(dir, "timeline.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	tr := sampleTrade()
	tr.ID = "T1"
	tx := sampleTransaction()
	tx.ID = "D1"
	timeline := ledger.Rebuild([]ledger.TradeRecord{tr}, []ledger.TransactionRecord{tx}, ledger.DefaultOptions())
	curve := ledger.Curve(timeline, ledger.Baseline{})

	x, err := NewCSV(timelinePath, equityPath)
	require.NoError(t, err)
	require.NoError(t, x.Export(timeline, curve))
	require.NoError(t, x.Close())

	rows := readCSV(t, timelinePath)
	require.Len(t, rows, 3)

	dep := rows[1]
	assert.Equal(t, "D1", dep[0])
	assert.Equal(t, "TRANSACTION", dep[1])
	assert.Equal(t, "2024-01-01T09:00:00Z", dep[2])
	assert.Equal(t, "2024-01-01T14:00:00+05:00", dep[3])
	assert.Equal(t, "Deposit", dep[4])
	assert.Equal(t, "TEMP", dep[5])
	assert.Equal(t, "", dep[6])
	assert.Equal(t, "1000.00", dep[9])

	trd := rows[2]
	assert.Equal(t, "T1", trd[0])
	assert.Equal(t, "TRADE", trd[1])
	assert.Equal(t, "Buy", trd[4])
	assert.Equal(t, "Asia", trd[6])
	assert.Equal(t, "0.25", trd[7])
	assert.Equal(t, "62.8", trd[8])
	assert.Equal(t, "154.50", trd[9])
	assert.Equal(t, "1154.50", trd[12])
	assert.Equal(t, "15.45", trd[16])

	eq := readCSV(t, equityPath)
	require.Len(t, eq, 4)
	assert.Equal(t, []string{"Start", "", "0.00", "0.00", "0.00"}, eq[1])
	assert.Equal(t, "1154.50", eq[3][4])
}
