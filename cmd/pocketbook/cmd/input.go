package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pocketbook/ledger"
)

var inputLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseLocal parses a time typed on the display clock. "now" is the current
// time.
func parseLocal(s string, loc *time.Location, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "now" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (use YYYY-MM-DD[ HH:MM])", s)
}

func parseSide(s string) (ledger.Side, error) {
	switch strings.ToLower(s) {
	case "buy", "b":
		return ledger.Buy, nil
	case "sell", "s":
		return ledger.Sell, nil
	}
	return "", fmt.Errorf("side must be buy or sell, got %q", s)
}

func parseTxType(s string) (ledger.TxType, error) {
	switch strings.ToLower(s) {
	case "deposit", "d":
		return ledger.Deposit, nil
	case "withdraw", "w":
		return ledger.Withdraw, nil
	}
	return "", fmt.Errorf("type must be deposit or withdraw, got %q", s)
}

func parsePocket(s string) (ledger.Pocket, error) {
	switch strings.ToUpper(s) {
	case "MAIN":
		return ledger.Main, nil
	case "TEMP":
		return ledger.Temp, nil
	}
	return "", fmt.Errorf("allocation must be MAIN or TEMP, got %q", s)
}

// tradeInput holds the trade flags of add and edit.
type tradeInput struct {
	side  string
	lots  float64
	entry float64
	exit  float64
	open  string
	close string
	net   float64
	gross float64
}

func (in *tradeInput) register(c *cobra.Command) {
	fs := c.Flags()
	fs.StringVar(&in.side, "side", "buy", "buy or sell")
	fs.Float64Var(&in.lots, "lots", 0, "position size in lots")
	fs.Float64Var(&in.entry, "entry", 0, "entry price")
	fs.Float64Var(&in.exit, "exit", 0, "exit price")
	fs.StringVar(&in.open, "open", "", "open time on the display clock (YYYY-MM-DD HH:MM)")
	fs.StringVar(&in.close, "close", "now", "close time on the display clock (YYYY-MM-DD HH:MM)")
	fs.Float64Var(&in.net, "net", 0, "net profit after commission")
	fs.Float64Var(&in.gross, "gross", 0, "gross profit; commission is deducted per lot")
}

// apply overlays the flags that were set onto t. For a new trade every flag
// counts as set.
func (in *tradeInput) apply(t *ledger.TradeRecord, c *cobra.Command, all bool, loc *time.Location, perLot float64, now time.Time) error {
	fs := c.Flags()
	set := func(name string) bool { return all || fs.Changed(name) }

	if fs.Changed("net") && fs.Changed("gross") {
		return fmt.Errorf("--net and --gross are mutually exclusive")
	}

	if set("side") {
		side, err := parseSide(in.side)
		if err != nil {
			return err
		}
		t.Side = side
	}
	if set("lots") {
		t.Lots = in.lots
	}
	if set("entry") {
		t.EntryPrice = in.entry
	}
	if set("exit") {
		t.ExitPrice = in.exit
	}
	if set("open") && in.open != "" {
		ts, err := parseLocal(in.open, loc, now)
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		t.OpenTime = ts
	}
	if set("close") {
		ts, err := parseLocal(in.close, loc, now)
		if err != nil {
			return fmt.Errorf("close: %w", err)
		}
		t.CloseTime = ts
	}
	switch {
	case fs.Changed("gross"):
		t.NetProfit = ledger.NetFromGross(in.gross, t.Lots, perLot)
	case set("net"):
		t.NetProfit = in.net
	}
	return nil
}

// txInput holds the transaction flags of add and edit.
type txInput struct {
	typ        string
	amount     float64
	allocation string
	date       string
}

func (in *txInput) register(c *cobra.Command) {
	fs := c.Flags()
	fs.StringVar(&in.typ, "type", "deposit", "deposit or withdraw")
	fs.Float64Var(&in.amount, "amount", 0, "amount, always positive")
	fs.StringVar(&in.allocation, "allocation", "MAIN", "pocket: MAIN or TEMP")
	fs.StringVar(&in.date, "date", "now", "date on the display clock (YYYY-MM-DD[ HH:MM])")
}

func (in *txInput) apply(t *ledger.TransactionRecord, c *cobra.Command, all bool, loc *time.Location, now time.Time) error {
	fs := c.Flags()
	set := func(name string) bool { return all || fs.Changed(name) }

	if set("type") {
		typ, err := parseTxType(in.typ)
		if err != nil {
			return err
		}
		t.Type = typ
	}
	if set("amount") {
		t.Amount = in.amount
	}
	if set("allocation") {
		p, err := parsePocket(in.allocation)
		if err != nil {
			return err
		}
		t.Allocation = p
	}
	if set("date") {
		ts, err := parseLocal(in.date, loc, now)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		t.Date = ts
	}
	return nil
}
