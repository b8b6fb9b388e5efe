package ledger

import (
	"math"
	"time"
)

// DefaultOffset is the shift from the record store's clock to the display clock.
const DefaultOffset = 5 * time.Hour

// PipFactor converts a price difference into pips.
const PipFactor = 10.0

// Options controls how records are placed on the local clock.
type Options struct {
	Offset time.Duration
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Offset: DefaultOffset}
}

// Zone returns the fixed display zone described by the offset.
func (o Options) Zone() *time.Location {
	return time.FixedZone("LOCAL", int(o.Offset/time.Second))
}

// Normalize converts trades and transactions into timeline events. The
// result is unordered; see Build.
//
// Malformed values never fail: an unknown side yields zero pips, an unknown
// transaction type or a non-finite amount yields a zero value.
func Normalize(trades []TradeRecord, txs []TransactionRecord, opts Options) []Event {
	zone := opts.Zone()
	events := make([]Event, 0, len(trades)+len(txs))

	for i := range trades {
		t := trades[i]
		t.NetProfit = finite(t.NetProfit)
		local := t.CloseTime.In(zone)
		events = append(events, Event{
			Category:  CategoryTrade,
			ID:        t.ID,
			Timestamp: t.CloseTime,
			Local:     local,
			Value:     t.NetProfit,
			Trade:     &t,
			Pips:      Pips(t.Side, t.EntryPrice, t.ExitPrice),
			Session:   SessionAt(local.Hour()),
		})
	}

	for i := range txs {
		tx := txs[i]
		tx.Amount = finite(tx.Amount)
		events = append(events, Event{
			Category:    CategoryTransaction,
			ID:          tx.ID,
			Timestamp:   tx.Date,
			Local:       tx.Date.In(zone),
			Value:       signedAmount(tx.Type, tx.Amount),
			Transaction: &tx,
			Allocation:  tx.Allocation,
		})
	}

	return events
}

// Pips returns the price movement of a trade in pips, positive when the
// move was in the trade's favour.
func Pips(side Side, entry, exit float64) float64 {
	var p float64
	switch side {
	case Buy:
		p = (exit - entry) * PipFactor
	case Sell:
		p = (entry - exit) * PipFactor
	}
	return finite(p)
}

// SessionAt maps a local hour of day to its session. The checks run in
// priority order; the buckets overlap otherwise.
func SessionAt(h int) Session {
	switch {
	case h >= 19 || h < 4:
		return NewYork
	case h >= 14:
		return London
	case h >= 7:
		return Asia
	default:
		return Pacific
	}
}

func signedAmount(typ TxType, amount float64) float64 {
	switch typ {
	case Deposit:
		return amount
	case Withdraw:
		return -amount
	default:
		return 0
	}
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
