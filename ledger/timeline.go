package ledger

import "sort"

// Build returns the events ordered by Timestamp. Events sharing a timestamp
// keep their input order. The input slice is not modified.
func Build(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Rebuild runs the whole pipeline: normalize, order, allocate.
func Rebuild(trades []TradeRecord, txs []TransactionRecord, opts Options) []Event {
	return Allocate(Build(Normalize(trades, txs, opts)))
}
