package render

import (
	"fmt"

	"github.com/rustyeddy/pocketbook/ledger"
)

// History prints events newest first, one line each.
func (p *Printer) History(events []ledger.Event) {
	p.title(fmt.Sprintf("History (%d events)", len(events)))
	if len(events) == 0 {
		fmt.Fprintln(p.w, p.paint(mutedStyle, "No activity in this period."))
		return
	}
	for i := len(events) - 1; i >= 0; i-- {
		p.historyLine(events[i])
	}
}

func (p *Printer) historyLine(e ledger.Event) {
	when := e.Local.Format("2006-01-02 15:04")
	if e.IsTrade() {
		fmt.Fprintf(p.w, "%s  %-4s %5.2f lot  %7.1f pips  %-9s %s  %s\n",
			when, e.Side(), e.Trade.Lots, e.Pips, e.Session, p.Signed(e.Value), p.Pct(e.Growth))
		return
	}
	pocket := p.paint(mainStyle, string(e.Allocation))
	if e.Allocation != ledger.Main {
		pocket = p.paint(tempStyle, string(e.Allocation))
	}
	fmt.Fprintf(p.w, "%s  %-8s -> %s  %s\n", when, e.TxType(), pocket, p.Signed(e.Value))
}

// Months prints the period selector keys.
func (p *Printer) Months(periods []string, selected string) {
	for _, k := range periods {
		mark := " "
		if k == selected {
			mark = "*"
		}
		fmt.Fprintf(p.w, "%s %s\n", mark, k)
	}
}
