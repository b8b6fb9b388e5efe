package ledger

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"
)

// AllTime is the selector for the whole timeline.
const AllTime = "all"

const monthLayout = "2006-01"

// ErrInvalidPeriod is returned for selectors that are neither "all" nor YYYY-MM.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is a parsed period selector.
type Period struct {
	all   bool
	year  int
	month time.Month
}

// ParsePeriod parses "all" or a YYYY-MM month key.
func ParsePeriod(s string) (Period, error) {
	if s == AllTime || s == "" {
		return Period{all: true}, nil
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return Period{year: t.Year(), month: t.Month()}, nil
}

// MonthPeriod returns the period for a calendar month.
func MonthPeriod(year int, month time.Month) Period {
	return Period{year: year, month: month}
}

// IsAll reports whether p selects the whole timeline.
func (p Period) IsAll() bool {
	return p.all
}

// String returns the selector form of p.
func (p Period) String() string {
	if p.all {
		return AllTime
	}
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

// Bounds returns the half-open range [start, end) covered by a month period
// in loc. It is meaningless for the all-time period.
func (p Period) Bounds(loc *time.Location) (start, end time.Time) {
	start = time.Date(p.year, p.month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Baseline is the account state at the start of a period.
type Baseline struct {
	Main     float64
	Temp     float64
	MainNet  float64
	TempNet  float64
	Deposits float64
}

// Total is the total equity at the start of the period.
func (b Baseline) Total() float64 {
	return b.Main + b.Temp
}

func baselineFrom(r Running) Baseline {
	return Baseline{
		Main:     r.Main,
		Temp:     r.Temp,
		MainNet:  r.MainNet,
		TempNet:  r.TempNet,
		Deposits: r.Deposits,
	}
}

// Filter returns the events of timeline that fall in p together with the
// account state at the start of p.
//
// Month bounds are computed on the display clock of the timeline's events.
// The baseline comes from the last event strictly before the month starts,
// so a month with no events after existing data still carries the latest
// balances, and a month before all data starts from zero.
func Filter(timeline []Event, p Period) ([]Event, Baseline) {
	if p.IsAll() {
		return slices.Clone(timeline), Baseline{}
	}
	if len(timeline) == 0 {
		return nil, Baseline{}
	}

	start, end := p.Bounds(timeline[0].Local.Location())
	lo := sort.Search(len(timeline), func(i int) bool {
		return !timeline[i].Timestamp.Before(start)
	})
	hi := sort.Search(len(timeline), func(i int) bool {
		return !timeline[i].Timestamp.Before(end)
	})

	var b Baseline
	if lo > 0 {
		b = baselineFrom(timeline[lo-1].Running)
	}
	return slices.Clone(timeline[lo:hi]), b
}

// Months returns the distinct YYYY-MM keys present in the timeline, newest
// first.
func Months(timeline []Event) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, e := range timeline {
		k := e.Local.Format(monthLayout)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
