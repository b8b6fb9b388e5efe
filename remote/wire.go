package remote

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/ledger"
)

// Spreadsheet cells come back as numbers or strings depending on how they
// were typed in, so the wire types accept either.

// flexFloat decodes a JSON number or numeric string. Anything else is 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	s := strings.TrimSpace(unquote(data))
	if s == "" || s == "null" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	*f = flexFloat(d.InexactFloat64())
	return nil
}

// flexString decodes a JSON string or a bare number as text.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	v := unquote(data)
	if v == "null" {
		v = ""
	}
	*s = flexString(strings.TrimSpace(v))
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// flexTime decodes a timestamp in any of timeLayouts. Zone-less values are
// taken as UTC. Unparseable values decode to the zero time.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	*t = flexTime(parseTime(unquote(data)))
	return nil
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func unquote(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}
	return string(data)
}

type wireTrade struct {
	ID         flexString `json:"id"`
	Type       flexString `json:"type"`
	Lots       flexFloat  `json:"lots"`
	EntryPrice flexFloat  `json:"entryPrice"`
	ExitPrice  flexFloat  `json:"exitPrice"`
	OpenTime   flexTime   `json:"openTime"`
	CloseTime  flexTime   `json:"closeTime"`
	NetProfit  flexFloat  `json:"netProfit"`
}

func (w wireTrade) record() ledger.TradeRecord {
	return ledger.TradeRecord{
		ID:         string(w.ID),
		Side:       ledger.Side(w.Type),
		Lots:       float64(w.Lots),
		EntryPrice: float64(w.EntryPrice),
		ExitPrice:  float64(w.ExitPrice),
		OpenTime:   time.Time(w.OpenTime),
		CloseTime:  time.Time(w.CloseTime),
		NetProfit:  float64(w.NetProfit),
	}
}

type wireTransaction struct {
	ID         flexString `json:"id"`
	Type       flexString `json:"type"`
	Amount     flexFloat  `json:"amount"`
	Allocation flexString `json:"allocation"`
	Date       flexTime   `json:"date"`
}

func (w wireTransaction) record() ledger.TransactionRecord {
	return ledger.TransactionRecord{
		ID:         string(w.ID),
		Type:       ledger.TxType(w.Type),
		Amount:     float64(w.Amount),
		Allocation: ledger.Pocket(w.Allocation),
		Date:       time.Time(w.Date),
	}
}

// encodeMutation flattens m into the object the web app expects: the action
// and id plus the record's fields at the top level.
func encodeMutation(m journal.Mutation) map[string]any {
	out := map[string]any{
		"action": string(m.Action),
		"id":     m.ID,
	}
	switch {
	case m.Trade != nil:
		t := m.Trade
		out["type"] = string(t.Side)
		out["lots"] = t.Lots
		out["entryPrice"] = t.EntryPrice
		out["exitPrice"] = t.ExitPrice
		out["openTime"] = formatTime(t.OpenTime)
		out["closeTime"] = formatTime(t.CloseTime)
		out["netProfit"] = t.NetProfit
	case m.Transaction != nil:
		t := m.Transaction
		out["type"] = string(t.Type)
		out["amount"] = t.Amount
		out["allocation"] = string(t.Allocation)
		out["date"] = formatTime(t.Date)
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
