package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/ledger"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record, edit or delete closed trades",
	Long: `Manage closed trades in the record store.

Subcommands:
  add    - Record a closed trade
  edit   - Change fields of an existing trade
  delete - Remove a trade

Examples:
  pocketbook trade add -i
  pocketbook trade add --side sell --lots 0.5 --entry 2345.1 --exit 2339.8 --gross 265
  pocketbook trade edit ID-01HZX3... --net 120
  pocketbook trade delete ID-01HZX3...`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a closed trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeEditCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Change fields of an existing trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeEdit,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Remove a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	tradeAddIn       tradeInput
	tradeEditIn      tradeInput
	tradeInteractive bool
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeEditCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	tradeAddIn.register(tradeAddCmd)
	tradeEditIn.register(tradeEditCmd)
	tradeAddCmd.Flags().BoolVarP(&tradeInteractive, "interactive", "i", false, "enter the trade in a form")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if tradeInteractive {
		if err := askTrade(cmd, &tradeAddIn); err != nil {
			return err
		}
	}

	var t ledger.TradeRecord
	err = tradeAddIn.apply(&t, cmd, true, e.cfg.LedgerOptions().Zone(), e.cfg.Trading.CommissionPerLot, time.Now())
	if err != nil {
		return err
	}
	return e.submit(cmd.Context(), journal.NewAddTrade(t))
}

func runTradeEdit(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, ok := e.state.Dataset().Trade(args[0])
	if !ok {
		return fmt.Errorf("trade %s: %w", args[0], journal.ErrNotFound)
	}
	err = tradeEditIn.apply(&t, cmd, false, e.cfg.LedgerOptions().Zone(), e.cfg.Trading.CommissionPerLot, time.Now())
	if err != nil {
		return err
	}
	return e.submit(cmd.Context(), journal.NewEditTrade(t))
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return e.submit(cmd.Context(), journal.NewDeleteTrade(args[0]))
}
