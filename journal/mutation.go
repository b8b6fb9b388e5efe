package journal

import (
	"github.com/pkg/errors"

	"github.com/rustyeddy/pocketbook/ledger"
	"github.com/rustyeddy/pocketbook/pkg/id"
)

// Action names a mutation understood by the record store.
type Action string

const (
	AddTrade          Action = "addTrade"
	EditTrade         Action = "editTrade"
	DeleteTrade       Action = "deleteTrade"
	AddTransaction    Action = "addTransaction"
	EditTransaction   Action = "editTransaction"
	DeleteTransaction Action = "deleteTransaction"
)

// Actions lists every supported action.
var Actions = []Action{AddTrade, EditTrade, DeleteTrade, AddTransaction, EditTransaction, DeleteTransaction}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, v := range Actions {
		if a == v {
			return true
		}
	}
	return false
}

// IsTrade reports whether a operates on trades.
func (a Action) IsTrade() bool {
	return a == AddTrade || a == EditTrade || a == DeleteTrade
}

// IsDelete reports whether a removes a record.
func (a Action) IsDelete() bool {
	return a == DeleteTrade || a == DeleteTransaction
}

// Mutation is a single change submitted to the record store. Trade is set for
// trade creates and edits, Transaction for transaction creates and edits.
type Mutation struct {
	Action      Action
	ID          string
	Trade       *ledger.TradeRecord
	Transaction *ledger.TransactionRecord
}

// NewAddTrade returns a create mutation carrying a freshly minted id.
func NewAddTrade(t ledger.TradeRecord) Mutation {
	t.ID = id.New()
	return Mutation{Action: AddTrade, ID: t.ID, Trade: &t}
}

// NewEditTrade returns a replace-by-id mutation for t.
func NewEditTrade(t ledger.TradeRecord) Mutation {
	return Mutation{Action: EditTrade, ID: t.ID, Trade: &t}
}

// NewDeleteTrade returns a mutation removing the trade with the given id.
func NewDeleteTrade(tradeID string) Mutation {
	return Mutation{Action: DeleteTrade, ID: tradeID}
}

// NewAddTransaction returns a create mutation carrying a freshly minted id.
func NewAddTransaction(t ledger.TransactionRecord) Mutation {
	t.ID = id.New()
	return Mutation{Action: AddTransaction, ID: t.ID, Transaction: &t}
}

// NewEditTransaction returns a replace-by-id mutation for t.
func NewEditTransaction(t ledger.TransactionRecord) Mutation {
	return Mutation{Action: EditTransaction, ID: t.ID, Transaction: &t}
}

// NewDeleteTransaction returns a mutation removing the transaction with the
// given id.
func NewDeleteTransaction(txID string) Mutation {
	return Mutation{Action: DeleteTransaction, ID: txID}
}

// Validate checks that m is complete and that its payload is well formed.
func (m Mutation) Validate() error {
	if !m.Action.Valid() {
		return errors.Wrapf(ErrInvalidMutation, "unknown action %q", m.Action)
	}
	if m.ID == "" {
		return errors.Wrapf(ErrInvalidMutation, "%s: id is required", m.Action)
	}
	if m.Action.IsDelete() {
		return nil
	}

	if m.Action.IsTrade() {
		if m.Trade == nil {
			return errors.Wrapf(ErrInvalidMutation, "%s: trade payload is required", m.Action)
		}
		if m.Trade.ID != m.ID {
			return errors.Wrapf(ErrInvalidMutation, "%s: payload id %q does not match %q", m.Action, m.Trade.ID, m.ID)
		}
		return validateTrade(*m.Trade)
	}

	if m.Transaction == nil {
		return errors.Wrapf(ErrInvalidMutation, "%s: transaction payload is required", m.Action)
	}
	if m.Transaction.ID != m.ID {
		return errors.Wrapf(ErrInvalidMutation, "%s: payload id %q does not match %q", m.Action, m.Transaction.ID, m.ID)
	}
	return validateTransaction(*m.Transaction)
}

func validateTrade(t ledger.TradeRecord) error {
	if t.Side != ledger.Buy && t.Side != ledger.Sell {
		return errors.Wrapf(ErrInvalidMutation, "trade type must be Buy or Sell, got %q", t.Side)
	}
	if t.Lots <= 0 {
		return errors.Wrap(ErrInvalidMutation, "trade lots must be positive")
	}
	if t.CloseTime.IsZero() {
		return errors.Wrap(ErrInvalidMutation, "trade close time is required")
	}
	if !t.OpenTime.IsZero() && t.OpenTime.After(t.CloseTime) {
		return errors.Wrap(ErrInvalidMutation, "trade open time is after close time")
	}
	return nil
}

func validateTransaction(t ledger.TransactionRecord) error {
	if t.Type != ledger.Deposit && t.Type != ledger.Withdraw {
		return errors.Wrapf(ErrInvalidMutation, "transaction type must be Deposit or Withdraw, got %q", t.Type)
	}
	if t.Amount <= 0 {
		return errors.Wrap(ErrInvalidMutation, "transaction amount must be positive")
	}
	if t.Allocation != ledger.Main && t.Allocation != ledger.Temp {
		return errors.Wrapf(ErrInvalidMutation, "allocation must be MAIN or TEMP, got %q", t.Allocation)
	}
	if t.Date.IsZero() {
		return errors.Wrap(ErrInvalidMutation, "transaction date is required")
	}
	return nil
}
