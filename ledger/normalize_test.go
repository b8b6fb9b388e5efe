package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		side  Side
		entry float64
		exit  float64
		want  float64
	}{
		{"buy winner", Buy, 2000.0, 2001.5, 15},
		{"buy loser", Buy, 2000.0, 1999.0, -10},
		{"sell winner", Sell, 2001.5, 2000.0, 15},
		{"sell loser", Sell, 2000.0, 2000.5, -5},
		{"unknown side", Side("Hold"), 2000.0, 2010.0, 0},
		{"empty side", "", 2000.0, 2010.0, 0},
		{"non-finite price", Buy, math.NaN(), 2000.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Pips(tt.side, tt.entry, tt.exit), 1e-9)
		})
	}
}

func TestSessionAt(t *testing.T) {
	t.Parallel()

	want := map[int]Session{
		0: NewYork, 3: NewYork,
		4: Pacific, 6: Pacific,
		7: Asia, 13: Asia,
		14: London, 18: London,
		19: NewYork, 23: NewYork,
	}
	for h, s := range want {
		assert.Equal(t, s, SessionAt(h), "hour %d", h)
	}
}

func TestNormalizeTrade(t *testing.T) {
	t.Parallel()

	// 10:00 UTC is 15:00 on the display clock.
	rec := trade("T1", Buy, at(10), 42.5)
	rec.EntryPrice = 2000
	rec.ExitPrice = 2002

	events := Normalize([]TradeRecord{rec}, nil, DefaultOptions())
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, CategoryTrade, e.Category)
	assert.Equal(t, "T1", e.ID)
	assert.True(t, e.Timestamp.Equal(at(10)))
	assert.Equal(t, 15, e.Local.Hour())
	assert.True(t, e.Local.Equal(e.Timestamp))
	assert.Equal(t, 42.5, e.Value)
	assert.InDelta(t, 20, e.Pips, 1e-9)
	assert.Equal(t, London, e.Session)
	require.NotNil(t, e.Trade)
	assert.Nil(t, e.Transaction)
	assert.Equal(t, Buy, e.Side())
}

func TestNormalizeTransactions(t *testing.T) {
	t.Parallel()

	txs := []TransactionRecord{
		tx("D1", Deposit, Temp, at(1), 1000),
		tx("W1", Withdraw, Main, at(2), 200),
		tx("X1", TxType("Transfer"), Main, at(3), 50),
	}

	events := byID(Normalize(nil, txs, DefaultOptions()))
	require.Len(t, events, 3)

	assert.Equal(t, 1000.0, events["D1"].Value)
	assert.Equal(t, Temp, events["D1"].Allocation)
	assert.Equal(t, -200.0, events["W1"].Value)
	assert.Equal(t, Main, events["W1"].Allocation)
	assert.Equal(t, 0.0, events["X1"].Value)
	assert.Equal(t, CategoryTransaction, events["X1"].Category)
	assert.Equal(t, Session(""), events["D1"].Session)
}

func TestNormalizeMalformedValues(t *testing.T) {
	t.Parallel()

	bad := trade("T1", Side("??"), at(1), math.NaN())
	good := trade("T2", Sell, at(2), 10)
	badTx := tx("D1", Deposit, Main, at(3), math.Inf(1))

	events := byID(Normalize([]TradeRecord{bad, good}, []TransactionRecord{badTx}, DefaultOptions()))
	require.Len(t, events, 3)

	assert.Equal(t, 0.0, events["T1"].Value)
	assert.Equal(t, 0.0, events["T1"].Pips)
	assert.Equal(t, 10.0, events["T2"].Value)
	assert.Equal(t, 0.0, events["D1"].Value)
	assert.Equal(t, 0.0, events["D1"].Transaction.Amount)
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	trades := []TradeRecord{trade("T1", Buy, at(1), 5)}
	events := Normalize(trades, nil, DefaultOptions())
	trades[0].NetProfit = 99

	assert.Equal(t, 5.0, events[0].Trade.NetProfit)
}

func TestNormalizeCustomOffset(t *testing.T) {
	t.Parallel()

	opts := Options{Offset: -3 * time.Hour}
	events := Normalize([]TradeRecord{trade("T1", Buy, at(2), 1)}, nil, opts)
	require.Len(t, events, 1)

	assert.Equal(t, 23, events[0].Local.Hour())
	assert.Equal(t, 9, events[0].Local.Day())
	assert.Equal(t, NewYork, events[0].Session)
}
