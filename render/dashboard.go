package render

import (
	"fmt"

	"github.com/rustyeddy/pocketbook/app"
)

// recentLimit is how many events the dashboard lists.
const recentLimit = 5

// Dashboard prints the balance cards and the latest activity of a view.
func (p *Printer) Dashboard(v app.View) {
	r := v.Report
	p.title("Dashboard: " + periodLabel(v.Period))

	fmt.Fprintf(p.w, "Total Equity:  %s\n", p.Money(r.End.Total))
	fmt.Fprintf(p.w, "MAIN:          %s (%.1f%%)\n", p.paint(mainStyle, p.Money(r.End.Main)), r.End.MainShare)
	fmt.Fprintf(p.w, "TEMP:          %s (%.1f%%)\n", p.paint(tempStyle, p.Money(r.End.Temp)), r.End.TempShare)
	fmt.Fprintf(p.w, "Deposited:     %s\n", p.Money(r.End.Deposits))

	p.section("Period")
	fmt.Fprintf(p.w, "Start Equity:  %s\n", p.Money(r.Start.Total()))
	fmt.Fprintf(p.w, "Net P/L:       %s\n", p.Signed(r.NetProfit))
	fmt.Fprintf(p.w, "Period ROI:    %s\n", p.Pct(r.PeriodROI))
	fmt.Fprintf(p.w, "All-time ROI:  %s\n", p.Pct(r.AllTimeROI))
	fmt.Fprintf(p.w, "Win Rate:      %.2f%% (%d/%d)\n", r.WinRate, r.Wins, r.Trades)

	p.section("Recent Activity")
	if len(v.Events) == 0 {
		fmt.Fprintln(p.w, p.paint(mutedStyle, "No activity in this period."))
		return
	}
	for i := len(v.Events) - 1; i >= 0 && i >= len(v.Events)-recentLimit; i-- {
		p.historyLine(v.Events[i])
	}
}
