// Package ledger rebuilds the balance history of a trading account from its
// closed trades and cash transactions.
//
// The account is split into two virtual pockets, MAIN and TEMP. Deposits and
// withdrawals name the pocket they belong to; trades do not, so their profit
// or loss is shared between the pockets in proportion to each pocket's
// balance at the moment the trade closed.
//
// Everything in this package is a pure function of its inputs.
package ledger

import "time"

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// TxType is the kind of a cash transaction.
type TxType string

const (
	Deposit  TxType = "Deposit"
	Withdraw TxType = "Withdraw"
)

// Pocket names one of the two virtual sub-balances.
type Pocket string

const (
	Main Pocket = "MAIN"
	Temp Pocket = "TEMP"
)

// TradeRecord is a closed trade as stored by the record store.
// NetProfit is already net of commission.
type TradeRecord struct {
	ID         string    `json:"id"`
	Side       Side      `json:"type"`
	Lots       float64   `json:"lots"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	OpenTime   time.Time `json:"openTime"`
	CloseTime  time.Time `json:"closeTime"`
	NetProfit  float64   `json:"netProfit"`
}

// TransactionRecord is a deposit or withdrawal. Amount is always a positive
// magnitude; Type carries the sign.
type TransactionRecord struct {
	ID         string    `json:"id"`
	Type       TxType    `json:"type"`
	Amount     float64   `json:"amount"`
	Allocation Pocket    `json:"allocation"`
	Date       time.Time `json:"date"`
}
