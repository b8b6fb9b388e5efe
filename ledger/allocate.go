package ledger

// Allocate walks an ordered timeline once and attaches the running pocket
// balances to every event. It returns a new slice; the input is not modified.
//
// Transactions move money in or out of the pocket they name. A trade's P/L is
// split between the pockets by their share of total equity just before the
// trade. When that total is zero or negative the whole P/L goes to MAIN.
func Allocate(events []Event) []Event {
	out := make([]Event, len(events))

	var st Running
	for i, e := range events {
		before := st.Main + st.Temp

		switch e.Category {
		case CategoryTransaction:
			if e.TxType() == Deposit {
				st.Deposits += e.Transaction.Amount
			}
			if e.Allocation == Main {
				st.Main += e.Value
			} else {
				st.Temp += e.Value
			}

		case CategoryTrade:
			mainShare, tempShare := Shares(st.Main, st.Temp)
			profitMain := e.Value * mainShare
			profitTemp := e.Value * tempShare
			st.Main += profitMain
			st.Temp += profitTemp
			st.MainNet += profitMain
			st.TempNet += profitTemp
		}

		st.Total = st.Main + st.Temp

		e.Running = st
		e.StartTotal = before
		e.Growth = growth(before, st.Total)
		out[i] = e
	}

	return out
}

// Shares returns the fraction of total equity held by each pocket. A total
// that is not positive attributes everything to MAIN.
func Shares(main, temp float64) (mainShare, tempShare float64) {
	total := main + temp
	if total <= 0 {
		return 1, 0
	}
	return main / total, temp / total
}

func growth(before, after float64) float64 {
	if before <= 0 {
		return 0
	}
	return (after - before) / before * 100
}
