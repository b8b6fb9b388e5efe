package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/ledger"
)

const getDataBody = `{
  "status": "success",
  "data": {
    "trades": [
      {"id": "ID-1", "type": "Buy", "lots": "0.10", "entryPrice": 2000.5, "exitPrice": "2003.0",
       "openTime": "2024-01-02T01:00:00.000Z", "closeTime": "2024-01-02T02:30:00.000Z", "netProfit": "24.00"},
      {"id": 1700000000, "type": "Sell", "lots": 0.2, "entryPrice": "n/a", "exitPrice": 1990,
       "openTime": "", "closeTime": "2024-01-03T10:15", "netProfit": -12.5}
    ],
    "transactions": [
      {"id": "ID-9", "type": "Deposit", "amount": "1,000", "allocation": "MAIN", "date": "2024-01-01"},
      {"id": "ID-10", "type": "Withdraw", "amount": 50, "allocation": "TEMP", "date": "2024-01-05T08:00:00+07:00"}
    ]
  }
}`

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestNewClientDefaultTimeout(t *testing.T) {
	t.Parallel()

	c := NewClient("http://example.invalid", 0)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.NoError(t, c.Close())
}

func TestFetchDecodesDataset(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "getData", r.URL.Query().Get("action"))
		_, _ = io.WriteString(w, getDataBody)
	})

	ds, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Trades, 2)
	require.Len(t, ds.Transactions, 2)

	first := ds.Trades[0]
	assert.Equal(t, "ID-1", first.ID)
	assert.Equal(t, ledger.Buy, first.Side)
	assert.InDelta(t, 0.10, first.Lots, 1e-9)
	assert.InDelta(t, 2003.0, first.ExitPrice, 1e-9)
	assert.InDelta(t, 24.0, first.NetProfit, 1e-9)
	assert.Equal(t, time.Date(2024, 1, 2, 2, 30, 0, 0, time.UTC), first.CloseTime.UTC())

	second := ds.Trades[1]
	assert.Equal(t, "1700000000", second.ID)
	assert.Zero(t, second.EntryPrice, "non-numeric degrades to zero")
	assert.True(t, second.OpenTime.IsZero())
	assert.Equal(t, time.Date(2024, 1, 3, 10, 15, 0, 0, time.UTC), second.CloseTime)
	assert.InDelta(t, -12.5, second.NetProfit, 1e-9)

	dep := ds.Transactions[0]
	assert.Zero(t, dep.Amount, "thousands separators are not numeric")
	assert.Equal(t, ledger.Main, dep.Allocation)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), dep.Date)

	wd := ds.Transactions[1]
	assert.Equal(t, ledger.Withdraw, wd.Type)
	assert.Equal(t, time.Date(2024, 1, 5, 1, 0, 0, 0, time.UTC), wd.Date.UTC())
}

func TestFetchKeepsQueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.URL.Query().Get("key"))
		assert.Equal(t, "getData", r.URL.Query().Get("action"))
		_, _ = io.WriteString(w, `{"status":"success","data":{}}`)
	}))
	defer server.Close()

	ds, err := NewClient(server.URL+"/exec?key=abc", time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ds.Trades)
	assert.Empty(t, ds.Transactions)
}

func TestFetchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusInternalServerError, "boom"},
		{"not json", http.StatusOK, "<html>"},
		{"status error", http.StatusOK, `{"status":"error","message":"sheet missing"}`},
		{"bad data", http.StatusOK, `{"status":"success","data":{"trades":{}}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := c.Fetch(context.Background())
			assert.ErrorIs(t, err, ErrIngest)
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(url, time.Second).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrIngest)
}

func TestSubmitTradeFlattensPayload(t *testing.T) {
	t.Parallel()

	var got map[string]any
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"status":"success"}`)
	})

	m := journal.NewAddTrade(ledger.TradeRecord{
		Side:       ledger.Sell,
		Lots:       0.5,
		EntryPrice: 2010,
		ExitPrice:  2000,
		OpenTime:   time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC),
		CloseTime:  time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC),
		NetProfit:  45,
	})
	require.NoError(t, c.Submit(context.Background(), m))

	assert.Equal(t, "addTrade", got["action"])
	assert.Equal(t, m.ID, got["id"])
	assert.Equal(t, "Sell", got["type"])
	assert.Equal(t, 0.5, got["lots"])
	assert.Equal(t, "2024-01-02T03:00:00Z", got["closeTime"])
	assert.Equal(t, 45.0, got["netProfit"])
}

func TestSubmitDeleteSendsOnlyID(t *testing.T) {
	t.Parallel()

	var got map[string]any
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, "<html>moved</html>")
	})

	require.NoError(t, c.Submit(context.Background(), journal.NewDeleteTransaction("ID-9")))
	assert.Equal(t, map[string]any{"action": "deleteTransaction", "id": "ID-9"}, got)
}

func TestSubmitErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid mutation is not sent", func(t *testing.T) {
		t.Parallel()

		called := false
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })
		err := c.Submit(context.Background(), journal.NewDeleteTrade(""))
		assert.ErrorIs(t, err, journal.ErrInvalidMutation)
		assert.False(t, called)
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()

		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		})
		err := c.Submit(context.Background(), journal.NewDeleteTrade("ID-1"))
		assert.ErrorIs(t, err, ErrMutation)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"error","message":"id not found"}`)
		})
		err := c.Submit(context.Background(), journal.NewDeleteTrade("ID-1"))
		assert.ErrorIs(t, err, ErrMutation)
		assert.Contains(t, err.Error(), "id not found")
	})
}

func TestFlexFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{`12.5`, 12.5},
		{`"12.5"`, 12.5},
		{`" -3 "`, -3},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`true`, 0},
	}
	for _, tt := range tests {
		var f flexFloat
		require.NoError(t, json.Unmarshal([]byte(tt.in), &f), tt.in)
		assert.InDelta(t, tt.want, float64(f), 1e-9, tt.in)
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 3, 4, 5, 6, 0, 0, time.UTC)
	assert.Equal(t, want, parseTime("2024-03-04T05:06"))
	assert.Equal(t, want, parseTime("2024-03-04 05:06:00"))
	assert.Equal(t, want, parseTime("2024-03-04T05:06:00Z").UTC())
	assert.True(t, parseTime("yesterday").IsZero())
	assert.True(t, parseTime("").IsZero())
}
