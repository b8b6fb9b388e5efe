package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pocketbook/ledger"
)

var (
	testZone = time.FixedZone("LOCAL", 5*3600)
	testNow  = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func TestParseLocal(t *testing.T) {
	t.Parallel()

	got, err := parseLocal("2024-03-01 05:30", testZone, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC), got.UTC())

	got, err = parseLocal("2024-03-01", testZone, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 19, 0, 0, 0, time.UTC), got.UTC())

	got, err = parseLocal("2024-03-01T05:30:00Z", testZone, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC), got)

	got, err = parseLocal("now", testZone, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow, got)

	_, err = parseLocal("yesterday", testZone, testNow)
	assert.Error(t, err)
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	side, err := parseSide("SELL")
	require.NoError(t, err)
	assert.Equal(t, ledger.Sell, side)
	_, err = parseSide("long")
	assert.Error(t, err)

	typ, err := parseTxType("w")
	require.NoError(t, err)
	assert.Equal(t, ledger.Withdraw, typ)

	p, err := parsePocket("temp")
	require.NoError(t, err)
	assert.Equal(t, ledger.Temp, p)
	_, err = parsePocket("side")
	assert.Error(t, err)
}

func newTradeCmd(t *testing.T, args ...string) (*cobra.Command, *tradeInput) {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	in := &tradeInput{}
	in.register(c)
	require.NoError(t, c.ParseFlags(args))
	return c, in
}

func TestTradeInputAdd(t *testing.T) {
	t.Parallel()

	c, in := newTradeCmd(t, "--side", "sell", "--lots", "0.5", "--entry", "2010", "--exit", "2000",
		"--close", "2024-03-01 15:00", "--gross", "50")

	var tr ledger.TradeRecord
	require.NoError(t, in.apply(&tr, c, true, testZone, 10, testNow))

	assert.Equal(t, ledger.Sell, tr.Side)
	assert.Equal(t, 0.5, tr.Lots)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), tr.CloseTime.UTC())
	assert.True(t, tr.OpenTime.IsZero())
	assert.InDelta(t, 45, tr.NetProfit, 1e-9)
}

func TestTradeInputEditKeepsUnsetFields(t *testing.T) {
	t.Parallel()

	c, in := newTradeCmd(t, "--net", "-12.5")

	orig := ledger.TradeRecord{
		ID: "ID-1", Side: ledger.Buy, Lots: 0.2, EntryPrice: 1, ExitPrice: 2,
		CloseTime: time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC), NetProfit: 99,
	}
	tr := orig
	require.NoError(t, in.apply(&tr, c, false, testZone, 10, testNow))

	want := orig
	want.NetProfit = -12.5
	assert.Equal(t, want, tr)
}

func TestTradeInputNetAndGross(t *testing.T) {
	t.Parallel()

	c, in := newTradeCmd(t, "--net", "1", "--gross", "2")
	var tr ledger.TradeRecord
	assert.Error(t, in.apply(&tr, c, true, testZone, 10, testNow))
}

func TestTxInput(t *testing.T) {
	t.Parallel()

	c := &cobra.Command{Use: "test"}
	in := &txInput{}
	in.register(c)
	require.NoError(t, c.ParseFlags([]string{"--amount", "300", "--allocation", "temp"}))

	var tx ledger.TransactionRecord
	require.NoError(t, in.apply(&tx, c, true, testZone, testNow))
	assert.Equal(t, ledger.Deposit, tx.Type)
	assert.Equal(t, 300.0, tx.Amount)
	assert.Equal(t, ledger.Temp, tx.Allocation)
	assert.Equal(t, testNow, tx.Date)
}

func TestSetFlagsFeedsApply(t *testing.T) {
	t.Parallel()

	c, in := newTradeCmd(t)
	require.NoError(t, setFlags(c, map[string]string{
		"side":  "sell",
		"lots":  "1",
		"entry": "2000",
		"exit":  "1990",
		"open":  "",
		"close": "2024-03-01 15:00",
		"gross": "100",
	}))

	var tr ledger.TradeRecord
	require.NoError(t, in.apply(&tr, c, true, testZone, 10, testNow))
	assert.Equal(t, ledger.Sell, tr.Side)
	assert.InDelta(t, 90, tr.NetProfit, 1e-9)
	assert.True(t, tr.OpenTime.IsZero())

	assert.Error(t, setFlags(c, map[string]string{"lots": "many"}))
}

func TestFormValidators(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateNumber("-3.5"))
	assert.Error(t, validateNumber("x"))
	assert.NoError(t, validatePositive("0.01"))
	assert.Error(t, validatePositive("0"))
}
