package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/ledger"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Record, edit or delete deposits and withdrawals",
	Long: `Manage cash transactions in the record store. Every transaction names the
pocket it moves money in or out of.

Examples:
  pocketbook tx add -i
  pocketbook tx add --type deposit --amount 500 --allocation TEMP
  pocketbook tx edit ID-01HZX3... --amount 450
  pocketbook tx delete ID-01HZX3...`,
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a deposit or withdrawal",
	Args:  cobra.NoArgs,
	RunE:  runTxAdd,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <tx-id>",
	Short: "Change fields of an existing transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <tx-id>",
	Short: "Remove a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxDelete,
}

var (
	txAddIn       txInput
	txEditIn      txInput
	txInteractive bool
)

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txEditCmd)
	txCmd.AddCommand(txDeleteCmd)

	txAddIn.register(txAddCmd)
	txEditIn.register(txEditCmd)
	txAddCmd.Flags().BoolVarP(&txInteractive, "interactive", "i", false, "enter the transaction in a form")
}

func runTxAdd(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if txInteractive {
		if err := askTransaction(cmd, &txAddIn); err != nil {
			return err
		}
	}

	var t ledger.TransactionRecord
	if err := txAddIn.apply(&t, cmd, true, e.cfg.LedgerOptions().Zone(), time.Now()); err != nil {
		return err
	}
	return e.submit(cmd.Context(), journal.NewAddTransaction(t))
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	t, ok := e.state.Dataset().Transaction(args[0])
	if !ok {
		return fmt.Errorf("transaction %s: %w", args[0], journal.ErrNotFound)
	}
	if err := txEditIn.apply(&t, cmd, false, e.cfg.LedgerOptions().Zone(), time.Now()); err != nil {
		return err
	}
	return e.submit(cmd.Context(), journal.NewEditTransaction(t))
}

func runTxDelete(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return e.submit(cmd.Context(), journal.NewDeleteTransaction(args[0]))
}
