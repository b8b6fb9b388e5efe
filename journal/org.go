package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/pocketbook/ledger"
)

// FormatEventOrg renders a timeline event as an Org-mode block. Trades get
// narrative placeholders (Thesis/Execution/Review) below the PROPERTIES drawer
// so the block can be pasted into a trading journal.
func FormatEventOrg(e ledger.Event) string {
	var b strings.Builder

	if e.IsTrade() {
		t := e.Trade
		b.WriteString(fmt.Sprintf("** Trade: %s %.2f lot (%s)\n", strings.ToUpper(string(t.Side)), t.Lots, shortID(e.ID)))
		b.WriteString(":PROPERTIES:\n")
		b.WriteString(fmt.Sprintf(":ID: %s\n", e.ID))
		b.WriteString(fmt.Sprintf(":SIDE: %s\n", t.Side))
		b.WriteString(fmt.Sprintf(":LOTS: %.2f\n", t.Lots))
		b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
		b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", t.ExitPrice))
		b.WriteString(fmt.Sprintf(":OPEN_TIME: %s\n", t.OpenTime.UTC().Format(time.RFC3339)))
		b.WriteString(fmt.Sprintf(":CLOSE_TIME: %s\n", t.CloseTime.UTC().Format(time.RFC3339)))
		b.WriteString(fmt.Sprintf(":LOCAL_TIME: %s\n", e.Local.Format("2006-01-02 15:04")))
		b.WriteString(fmt.Sprintf(":SESSION: %s\n", e.Session))
		b.WriteString(fmt.Sprintf(":PIPS: %.1f\n", e.Pips))
		b.WriteString(fmt.Sprintf(":NET_PROFIT: %.2f\n", e.Value))
		b.WriteString(fmt.Sprintf(":GROWTH_PCT: %.2f\n", e.Growth))
		writeRunningOrg(&b, e.Running)
		b.WriteString(":END:\n")
		b.WriteString("\n")
		b.WriteString("*** Thesis\n- \n\n")
		b.WriteString("*** Execution\n- \n\n")
		b.WriteString("*** Review\n- \n")
		return b.String()
	}

	t := e.Transaction
	b.WriteString(fmt.Sprintf("** %s: %s (%s)\n", t.Type, e.Allocation, shortID(e.ID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", e.ID))
	b.WriteString(fmt.Sprintf(":TYPE: %s\n", t.Type))
	b.WriteString(fmt.Sprintf(":AMOUNT: %.2f\n", t.Amount))
	b.WriteString(fmt.Sprintf(":ALLOCATION: %s\n", t.Allocation))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":LOCAL_TIME: %s\n", e.Local.Format("2006-01-02 15:04")))
	writeRunningOrg(&b, e.Running)
	b.WriteString(":END:\n")
	return b.String()
}

// FormatEventsOrg renders multiple events separated by blank lines.
func FormatEventsOrg(events []ledger.Event) string {
	var b strings.Builder
	for i, e := range events {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatEventOrg(e))
	}
	return b.String()
}

func writeRunningOrg(b *strings.Builder, r ledger.Running) {
	b.WriteString(fmt.Sprintf(":MAIN_BALANCE: %.2f\n", r.Main))
	b.WriteString(fmt.Sprintf(":TEMP_BALANCE: %.2f\n", r.Temp))
	b.WriteString(fmt.Sprintf(":TOTAL_BALANCE: %.2f\n", r.Total))
}

func shortID(s string) string {
	s = strings.TrimPrefix(s, "ID-")
	if len(s) <= 8 {
		return s
	}
	return s[len(s)-8:]
}
