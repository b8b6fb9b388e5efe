// Package journal is the record store layer: the interface the application
// loads trades and transactions through, the mutations it submits, and the
// local SQLite implementation and exporters.
package journal

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rustyeddy/pocketbook/ledger"
)

var (
	// ErrNotFound is returned when an edit or delete names an unknown id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a create reuses an existing id.
	ErrDuplicate = errors.New("duplicate record id")
	// ErrInvalidMutation is returned by Mutation.Validate.
	ErrInvalidMutation = errors.New("invalid mutation")
)

// Dataset is everything the record store holds, in store order.
type Dataset struct {
	Trades       []ledger.TradeRecord       `json:"trades"`
	Transactions []ledger.TransactionRecord `json:"transactions"`
}

// Timeline rebuilds the enriched timeline of the dataset.
func (d Dataset) Timeline(opts ledger.Options) []ledger.Event {
	return ledger.Rebuild(d.Trades, d.Transactions, opts)
}

// Trade returns the trade with the given id.
func (d Dataset) Trade(tradeID string) (ledger.TradeRecord, bool) {
	for _, t := range d.Trades {
		if t.ID == tradeID {
			return t, true
		}
	}
	return ledger.TradeRecord{}, false
}

// Transaction returns the transaction with the given id.
func (d Dataset) Transaction(txID string) (ledger.TransactionRecord, bool) {
	for _, t := range d.Transactions {
		if t.ID == txID {
			return t, true
		}
	}
	return ledger.TransactionRecord{}, false
}

// Store is a source of records that also accepts mutations. After a
// successful Submit the next Fetch reflects the change; callers reload in
// full rather than patching local state.
type Store interface {
	Fetch(ctx context.Context) (Dataset, error)
	Submit(ctx context.Context, m Mutation) error
	Close() error
}
