package ledger

import "time"

var t0 = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func at(h int) time.Time {
	return t0.Add(time.Duration(h) * time.Hour)
}

func trade(id string, side Side, close time.Time, net float64) TradeRecord {
	return TradeRecord{
		ID:         id,
		Side:       side,
		Lots:       0.1,
		EntryPrice: 2000,
		ExitPrice:  2001,
		OpenTime:   close.Add(-time.Hour),
		CloseTime:  close,
		NetProfit:  net,
	}
}

func tx(id string, typ TxType, pocket Pocket, date time.Time, amount float64) TransactionRecord {
	return TransactionRecord{
		ID:         id,
		Type:       typ,
		Amount:     amount,
		Allocation: pocket,
		Date:       date,
	}
}

func byID(events []Event) map[string]Event {
	m := make(map[string]Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}
