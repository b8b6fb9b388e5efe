package ledger

// DefaultCommissionPerLot is the round-trip commission charged per 1.0 lot.
const DefaultCommissionPerLot = 10.0

// Commission returns the commission charged on a trade of the given size.
func Commission(lots, perLot float64) float64 {
	return finite(lots * perLot)
}

// NetFromGross converts a gross trade result into the net profit the record
// store expects.
func NetFromGross(gross, lots, perLot float64) float64 {
	return finite(gross) - Commission(lots, perLot)
}
