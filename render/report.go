package render

import (
	"fmt"

	"github.com/rustyeddy/pocketbook/app"
	"github.com/rustyeddy/pocketbook/ledger"
)

const barWidth = 20

// Report prints the full statistics of a view.
func (p *Printer) Report(v app.View) {
	r := v.Report
	p.title("Report: " + periodLabel(v.Period))

	p.section("Trade Statistics")
	fmt.Fprintf(p.w, "Trades:        %d\n", r.Trades)
	fmt.Fprintf(p.w, "Wins:          %d\n", r.Wins)
	fmt.Fprintf(p.w, "Losses:        %d\n", r.Losses)
	fmt.Fprintf(p.w, "Win Rate:      %.2f%%\n", r.WinRate)
	fmt.Fprintf(p.w, "Max Win Run:   %d\n", r.MaxConsecutiveWins)
	fmt.Fprintf(p.w, "Max Loss Run:  %d\n", r.MaxConsecutiveLosses)

	p.section("Profit")
	fmt.Fprintf(p.w, "Net P/L:       %s\n", p.Signed(r.NetProfit))
	fmt.Fprintf(p.w, "Gross Profit:  %s\n", p.Money(r.GrossProfit))
	fmt.Fprintf(p.w, "Gross Loss:    %s\n", p.Money(r.GrossLoss))
	fmt.Fprintf(p.w, "Profit Factor: %s\n", r.ProfitFactor)
	fmt.Fprintf(p.w, "Exp. Payoff:   %s\n", p.Money(r.ExpectedPayoff))
	fmt.Fprintf(p.w, "Avg Win:       %s\n", p.Money(r.AvgWin))
	fmt.Fprintf(p.w, "Avg Loss:      %s\n", p.Money(r.AvgLoss))
	fmt.Fprintf(p.w, "Max Drawdown:  %.2f%%\n", r.MaxDrawdownPct)
	fmt.Fprintf(p.w, "Period ROI:    %s\n", p.Pct(r.PeriodROI))
	fmt.Fprintf(p.w, "All-time ROI:  %s\n", p.Pct(r.AllTimeROI))

	p.section("Pockets")
	fmt.Fprintf(p.w, "%-6s %14s %14s %8s\n", "", "Start", "End", "Net P/L")
	fmt.Fprintf(p.w, "%-6s %14s %14s %s\n", p.paint(mainStyle, "MAIN"), p.Money(r.Start.Main), p.Money(r.End.Main), p.Signed(r.MainNet))
	fmt.Fprintf(p.w, "%-6s %14s %14s %s\n", p.paint(tempStyle, "TEMP"), p.Money(r.Start.Temp), p.Money(r.End.Temp), p.Signed(r.TempNet))

	p.section("Direction")
	fmt.Fprintf(p.w, "Buy:           %d trades, %.2f%% won\n", r.Buy.Trades, r.Buy.WinRate)
	fmt.Fprintf(p.w, "Sell:          %d trades, %.2f%% won\n", r.Sell.Trades, r.Sell.WinRate)

	p.section("Sessions")
	for _, s := range r.Sessions {
		fmt.Fprintf(p.w, "%-10s %3d trades %3d wins  %s\n", s.Session, s.Trades, s.Wins, p.Signed(s.Net))
	}

	if r.Trades > 0 {
		p.section("Extremes")
		p.extreme("Best Trade:", r.BestTrade)
		p.extreme("Worst Trade:", r.WorstTrade)
		p.extreme("Best Pips:", r.BestPips)
		p.extreme("Worst Pips:", r.WorstPips)
	}

	a := r.Allocation
	p.section("Cash Flow")
	fmt.Fprintf(p.w, "Deposits:      %s\n", p.Money(a.Deposits))
	fmt.Fprintf(p.w, "  MAIN %s %5.1f%%\n", p.paint(mainStyle, bar(a.DepositMainPct, barWidth)), a.DepositMainPct)
	fmt.Fprintf(p.w, "  TEMP %s %5.1f%%\n", p.paint(tempStyle, bar(a.DepositTempPct, barWidth)), a.DepositTempPct)
	fmt.Fprintf(p.w, "Withdrawals:   %s\n", p.Money(a.Withdrawals))
	fmt.Fprintf(p.w, "  MAIN %s %5.1f%%\n", p.paint(mainStyle, bar(a.WithdrawMainPct, barWidth)), a.WithdrawMainPct)
	fmt.Fprintf(p.w, "  TEMP %s %5.1f%%\n", p.paint(tempStyle, bar(a.WithdrawTempPct, barWidth)), a.WithdrawTempPct)
}

func (p *Printer) extreme(label string, e *ledger.Event) {
	if e == nil {
		return
	}
	fmt.Fprintf(p.w, "%-14s %s %.1f pips  %s  (%s)\n",
		label, p.Signed(e.Value), e.Pips, e.Local.Format("2006-01-02 15:04"), e.ID)
}
