package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pocketbook",
	Short: "A personal trading ledger with MAIN/TEMP pocket accounting",
	Long: `Pocketbook keeps a ledger of closed trades and cash transactions and
reports on them.

It provides tools for:
  - Splitting every trade's P/L between the MAIN and TEMP pockets
  - Dashboards and reports per calendar month or all time
  - Recording, editing and deleting trades and transactions
  - Exporting the timeline to CSV and Org-mode

Records live either in a local SQLite file or in a hosted spreadsheet web app.`,
	SilenceUsage: true,
}

var (
	cfgFile    string
	periodFlag string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "pocketbook.yaml", "config file")
	rootCmd.PersistentFlags().StringVarP(&periodFlag, "period", "p", "all", `period to show: "all" or YYYY-MM`)
}
