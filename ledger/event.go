package ledger

import "time"

// Category tags which record an Event was built from.
type Category string

const (
	CategoryTrade       Category = "TRADE"
	CategoryTransaction Category = "TRANSACTION"
)

// Session is the trading-hours bucket a trade closed in.
type Session string

const (
	Pacific Session = "Pacific"
	Asia    Session = "Asia"
	London  Session = "London"
	NewYork Session = "New York"
)

// Sessions lists every session in display order.
var Sessions = []Session{Pacific, Asia, London, NewYork}

// Running is the account state right after an event has been applied.
type Running struct {
	Main  float64
	Temp  float64
	Total float64

	// MainNet and TempNet accumulate the trade P/L attributed to each pocket.
	MainNet float64
	TempNet float64

	// Deposits is the sum of every deposit seen so far.
	Deposits float64
}

// Event is one entry of the unified timeline.
//
// Exactly one of Trade and Transaction is set, matching Category.
type Event struct {
	Category  Category
	ID        string
	Timestamp time.Time

	// Local is Timestamp in the display zone. It drives session and month
	// bucketing only.
	Local time.Time

	// Value is the change this event applies to total equity.
	Value float64

	Trade       *TradeRecord
	Transaction *TransactionRecord

	Pips       float64
	Session    Session
	Allocation Pocket

	Running Running

	// StartTotal is total equity before the event, Growth the percentage
	// change the event caused (0 when StartTotal is not positive).
	StartTotal float64
	Growth     float64
}

// IsTrade reports whether e was built from a trade.
func (e Event) IsTrade() bool {
	return e.Category == CategoryTrade
}

// IsWin reports whether e is a trade that did not lose money.
func (e Event) IsWin() bool {
	return e.IsTrade() && e.Value >= 0
}

// Side returns the trade direction, or "" for transactions.
func (e Event) Side() Side {
	if e.Trade == nil {
		return ""
	}
	return e.Trade.Side
}

// TxType returns the transaction type, or "" for trades.
func (e Event) TxType() TxType {
	if e.Transaction == nil {
		return ""
	}
	return e.Transaction.Type
}
