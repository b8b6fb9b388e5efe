package ledger

import "fmt"

// ProfitFactor is gross profit over gross loss. Infinite is set when there
// was profit and no loss at all.
type ProfitFactor struct {
	Value    float64
	Infinite bool
}

func (pf ProfitFactor) String() string {
	if pf.Infinite {
		return "∞"
	}
	return fmt.Sprintf("%.2f", pf.Value)
}

// Directional holds the win statistics of one trade direction.
type Directional struct {
	Trades  int
	Wins    int
	WinRate float64
}

// Allocation splits the cash flow of a period by pocket. The Pct fields are
// shares of the respective total, for bar display.
type Allocation struct {
	Deposits     float64
	DepositMain  float64
	DepositTemp  float64
	Withdrawals  float64
	WithdrawMain float64
	WithdrawTemp float64

	DepositMainPct  float64
	DepositTempPct  float64
	WithdrawMainPct float64
	WithdrawTempPct float64
}

// SessionStats summarises the trades closed in one session.
type SessionStats struct {
	Session Session
	Trades  int
	Wins    int
	Net     float64
}

// Balances is the account state at the end of a period.
type Balances struct {
	Main     float64
	Temp     float64
	Total    float64
	Deposits float64

	// MainShare and TempShare are percentages of Total, zero when Total is
	// not positive.
	MainShare float64
	TempShare float64
}

// Report holds the statistics of a slice of the timeline.
type Report struct {
	Start Baseline
	End   Balances

	Events int
	Trades int
	Wins   int
	Losses int

	WinRate        float64
	NetProfit      float64
	GrossProfit    float64
	GrossLoss      float64
	ProfitFactor   ProfitFactor
	ExpectedPayoff float64
	AvgWin         float64
	AvgLoss        float64

	MaxConsecutiveWins   int
	MaxConsecutiveLosses int
	MaxDrawdownPct       float64

	// PeriodROI is the period's net trading profit relative to the equity
	// at the start of the period.
	PeriodROI float64
	// AllTimeROI is current equity over everything ever deposited.
	AllTimeROI float64

	// MainNet and TempNet are the trade P/L attributed to each pocket
	// during the period.
	MainNet float64
	TempNet float64

	BestTrade  *Event
	WorstTrade *Event
	BestPips   *Event
	WorstPips  *Event

	Buy  Directional
	Sell Directional

	Allocation Allocation
	Sessions   []SessionStats
}

// Summarize computes the report of a timeline slice starting from baseline.
// The slice is expected in chronological order and is not modified.
func Summarize(slice []Event, b Baseline) Report {
	r := Report{Start: b, Events: len(slice)}

	end := Running{
		Main:     b.Main,
		Temp:     b.Temp,
		Total:    b.Total(),
		MainNet:  b.MainNet,
		TempNet:  b.TempNet,
		Deposits: b.Deposits,
	}
	if n := len(slice); n > 0 {
		end = slice[n-1].Running
	}
	r.End = balances(end)
	r.MainNet = end.MainNet - b.MainNet
	r.TempNet = end.TempNet - b.TempNet

	sessions := make(map[Session]*SessionStats, len(Sessions))
	for _, s := range Sessions {
		sessions[s] = &SessionStats{Session: s}
	}

	var winStreak, lossStreak int
	var positive, negative int
	for i := range slice {
		e := &slice[i]
		if !e.IsTrade() {
			r.Allocation.add(e)
			continue
		}

		r.Trades++
		r.NetProfit += e.Value
		switch {
		case e.Value > 0:
			r.GrossProfit += e.Value
			positive++
		case e.Value < 0:
			r.GrossLoss += e.Value
			negative++
		}

		if e.IsWin() {
			r.Wins++
			winStreak++
			lossStreak = 0
			r.MaxConsecutiveWins = max(r.MaxConsecutiveWins, winStreak)
		} else {
			r.Losses++
			lossStreak++
			winStreak = 0
			r.MaxConsecutiveLosses = max(r.MaxConsecutiveLosses, lossStreak)
		}

		switch e.Side() {
		case Buy:
			r.Buy.add(e)
		case Sell:
			r.Sell.add(e)
		}

		if s, ok := sessions[e.Session]; ok {
			s.Trades++
			s.Net += e.Value
			if e.IsWin() {
				s.Wins++
			}
		}

		if r.BestTrade == nil || e.Value > r.BestTrade.Value {
			r.BestTrade = e
		}
		if r.WorstTrade == nil || e.Value < r.WorstTrade.Value {
			r.WorstTrade = e
		}
		if r.BestPips == nil || e.Pips > r.BestPips.Pips {
			r.BestPips = e
		}
		if r.WorstPips == nil || e.Pips < r.WorstPips.Pips {
			r.WorstPips = e
		}
	}

	r.WinRate = percent(float64(r.Wins), float64(r.Trades))
	r.ExpectedPayoff = ratio(r.NetProfit, float64(r.Trades))
	r.AvgWin = ratio(r.GrossProfit, float64(positive))
	r.AvgLoss = ratio(r.GrossLoss, float64(negative))
	r.ProfitFactor = profitFactor(r.GrossProfit, r.GrossLoss)
	r.MaxDrawdownPct = MaxDrawdown(slice, b.Total())
	r.PeriodROI = PeriodROI(r.NetProfit, b.Total())
	r.AllTimeROI = AllTimeROI(end.Total, end.Deposits)
	r.Buy.finish()
	r.Sell.finish()
	r.Allocation.finish()

	for _, s := range Sessions {
		r.Sessions = append(r.Sessions, *sessions[s])
	}

	return r
}

// MaxDrawdown returns the largest peak-to-valley drop in percent, walking
// the slice's equity changes from startTotal. Drops are only measured while
// the peak is positive.
func MaxDrawdown(slice []Event, startTotal float64) float64 {
	running := startTotal
	peak := startTotal
	var maxDD float64
	for _, e := range slice {
		running += e.Value
		if running > peak {
			peak = running
		}
		if peak > 0 {
			maxDD = max(maxDD, (peak-running)/peak*100)
		}
	}
	return maxDD
}

// PeriodROI is net profit as a percentage of the starting equity, or 0 when
// the period started without positive equity.
func PeriodROI(netProfit, startTotal float64) float64 {
	if startTotal <= 0 {
		return 0
	}
	return netProfit / startTotal * 100
}

// AllTimeROI is (equity - deposits) / deposits as a percentage, or 0 when
// nothing was ever deposited.
func AllTimeROI(equity, deposits float64) float64 {
	if deposits <= 0 {
		return 0
	}
	return (equity - deposits) / deposits * 100
}

func profitFactor(grossProfit, grossLoss float64) ProfitFactor {
	if grossLoss == 0 {
		if grossProfit > 0 {
			return ProfitFactor{Infinite: true}
		}
		return ProfitFactor{}
	}
	return ProfitFactor{Value: grossProfit / -grossLoss}
}

func balances(r Running) Balances {
	b := Balances{Main: r.Main, Temp: r.Temp, Total: r.Total, Deposits: r.Deposits}
	if r.Total > 0 {
		b.MainShare = r.Main / r.Total * 100
		b.TempShare = r.Temp / r.Total * 100
	}
	return b
}

func (d *Directional) add(e *Event) {
	d.Trades++
	if e.IsWin() {
		d.Wins++
	}
}

func (d *Directional) finish() {
	d.WinRate = percent(float64(d.Wins), float64(d.Trades))
}

func (a *Allocation) add(e *Event) {
	amount := e.Transaction.Amount
	switch e.TxType() {
	case Deposit:
		a.Deposits += amount
		if e.Allocation == Main {
			a.DepositMain += amount
		} else {
			a.DepositTemp += amount
		}
	case Withdraw:
		a.Withdrawals += amount
		if e.Allocation == Main {
			a.WithdrawMain += amount
		} else {
			a.WithdrawTemp += amount
		}
	}
}

func (a *Allocation) finish() {
	a.DepositMainPct = percent(a.DepositMain, a.Deposits)
	a.DepositTempPct = percent(a.DepositTemp, a.Deposits)
	a.WithdrawMainPct = percent(a.WithdrawMain, a.Withdrawals)
	a.WithdrawTempPct = percent(a.WithdrawTemp, a.Withdrawals)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(part, whole float64) float64 {
	return ratio(part, whole) * 100
}
