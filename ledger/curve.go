package ledger

import "time"

// Point is one sample of the equity curve.
type Point struct {
	Label string
	Time  time.Time
	Main  float64
	Temp  float64
	Total float64
}

// Curve returns the stacked MAIN/TEMP equity series of a period: a "Start"
// point taken from the baseline, then one point per event labelled with its
// local day of month.
func Curve(slice []Event, b Baseline) []Point {
	points := make([]Point, 0, len(slice)+1)
	points = append(points, Point{
		Label: "Start",
		Main:  b.Main,
		Temp:  b.Temp,
		Total: b.Total(),
	})
	for _, e := range slice {
		points = append(points, Point{
			Label: e.Local.Format("2"),
			Time:  e.Local,
			Main:  e.Running.Main,
			Temp:  e.Running.Temp,
			Total: e.Running.Total,
		})
	}
	return points
}
