package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/render"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show balances and recent activity",
	Long: `Show total equity, the MAIN and TEMP pockets and the latest events for the
selected period.

Examples:
  pocketbook dashboard
  pocketbook dashboard --period 2024-03`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the statistics of a period",
	Long: `Show trade statistics, pocket balances, sessions and cash flow for the
selected period.

Examples:
  pocketbook report --period 2024-03
  pocketbook report --markdown > march.md
  pocketbook report --pretty`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the events of a period, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List the selectable periods",
	Args:  cobra.NoArgs,
	RunE:  runMonths,
}

var (
	reportMarkdown bool
	reportPretty   bool
	historyOrg     bool
)

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(monthsCmd)

	reportCmd.Flags().BoolVar(&reportMarkdown, "markdown", false, "print the report as markdown")
	reportCmd.Flags().BoolVar(&reportPretty, "pretty", false, "render the markdown report for the terminal")
	historyCmd.Flags().BoolVar(&historyOrg, "org", false, "print Org-mode blocks")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.out.Dashboard(e.state.View())
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	v := e.state.View()
	pretty := reportPretty || (e.cfg.Display.Pretty && !cmd.Flags().Changed("pretty"))
	if !reportMarkdown && !pretty {
		e.out.Report(v)
		return nil
	}

	md, err := render.Markdown(v, e.cfg.Display.Currency)
	if err != nil {
		return err
	}
	if !pretty {
		fmt.Print(md)
		return nil
	}
	return render.Pretty(os.Stdout, md, e.cfg.Display.Color, 100)
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	events := e.state.View().Events
	if historyOrg {
		fmt.Println(journal.FormatEventsOrg(events))
		return nil
	}
	e.out.History(events)
	return nil
}

func runMonths(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.out.Months(e.state.Periods(), e.state.Period())
	return nil
}
