package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

// setFlags writes form answers back as flags, so the form and the command
// line go through the same apply path.
func setFlags(c *cobra.Command, values map[string]string) error {
	for name, v := range values {
		if err := c.Flags().Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// askTrade fills the trade flags of c from an interactive form.
func askTrade(c *cobra.Command, in *tradeInput) error {
	side := in.side
	lots, entry, exit := "", "", ""
	open, closeAt := in.open, in.close
	profit, kind := "", "gross"

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Side").
				Options(huh.NewOption("Buy", "buy"), huh.NewOption("Sell", "sell")).
				Value(&side),
			huh.NewInput().Title("Lots").Value(&lots).Validate(validatePositive),
			huh.NewInput().Title("Entry price").Value(&entry).Validate(validateNumber),
			huh.NewInput().Title("Exit price").Value(&exit).Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewInput().Title("Open time").Description("YYYY-MM-DD HH:MM, empty if unknown").Value(&open),
			huh.NewInput().Title("Close time").Description(`YYYY-MM-DD HH:MM or "now"`).Value(&closeAt),
			huh.NewSelect[string]().
				Title("Profit entered as").
				Options(
					huh.NewOption("Gross (commission deducted)", "gross"),
					huh.NewOption("Net", "net"),
				).
				Value(&kind),
			huh.NewInput().Title("Profit").Value(&profit).Validate(validateNumber),
		),
	).Run()
	if err != nil {
		return err
	}

	return setFlags(c, map[string]string{
		"side":  side,
		"lots":  lots,
		"entry": entry,
		"exit":  exit,
		"open":  open,
		"close": closeAt,
		kind:    profit,
	})
}

// askTransaction fills the transaction flags of c from an interactive form.
func askTransaction(c *cobra.Command, in *txInput) error {
	typ, allocation, date := in.typ, in.allocation, in.date
	amount := ""

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOption("Deposit", "deposit"), huh.NewOption("Withdraw", "withdraw")).
				Value(&typ),
			huh.NewInput().Title("Amount").Value(&amount).Validate(validatePositive),
			huh.NewSelect[string]().
				Title("Pocket").
				Options(huh.NewOption("MAIN", "MAIN"), huh.NewOption("TEMP", "TEMP")).
				Value(&allocation),
			huh.NewInput().Title("Date").Description(`YYYY-MM-DD[ HH:MM] or "now"`).Value(&date),
		),
	).Run()
	if err != nil {
		return err
	}

	return setFlags(c, map[string]string{
		"type":       typ,
		"amount":     amount,
		"allocation": allocation,
		"date":       date,
	})
}
