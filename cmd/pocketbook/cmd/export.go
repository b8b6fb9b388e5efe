package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pocketbook/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the selected period",
	Long: `Write the enriched timeline of the selected period to files.

Subcommands:
  csv - Timeline and equity curve as CSV
  org - Org-mode review with one block per event

Examples:
  pocketbook export csv --period 2024-03
  pocketbook export org --period 2024-03 -o march.org`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write the timeline and equity curve as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExportCSV,
}

var exportOrgCmd = &cobra.Command{
	Use:   "org",
	Short: "Write an Org-mode review of the period",
	Args:  cobra.NoArgs,
	RunE:  runExportOrg,
}

var (
	exportTimelinePath string
	exportEquityPath   string
	exportOrgPath      string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportOrgCmd)

	exportCSVCmd.Flags().StringVar(&exportTimelinePath, "timeline", "timeline.csv", "timeline CSV path")
	exportCSVCmd.Flags().StringVar(&exportEquityPath, "equity", "equity.csv", "equity curve CSV path")
	exportOrgCmd.Flags().StringVarP(&exportOrgPath, "output", "o", "", "output file (default stdout)")
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	v := e.state.View()
	x, err := journal.NewCSV(exportTimelinePath, exportEquityPath)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := x.Export(v.Events, v.Curve); err != nil {
		_ = x.Close()
		return fmt.Errorf("export csv: %w", err)
	}
	if err := x.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}

	fmt.Printf("✓ Wrote %d events to %s\n", len(v.Events), exportTimelinePath)
	fmt.Printf("✓ Wrote %d points to %s\n", len(v.Curve), exportEquityPath)
	return nil
}

func runExportOrg(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	v := e.state.View()
	review := journal.Review{
		Period:  v.Period,
		Created: time.Now(),
		Report:  v.Report,
		Events:  v.Events,
	}

	if exportOrgPath == "" {
		return journal.WriteReviewOrg(os.Stdout, review)
	}

	f, err := os.Create(exportOrgPath)
	if err != nil {
		return fmt.Errorf("create org file: %w", err)
	}
	if err := journal.WriteReviewOrg(f, review); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close org file: %w", err)
	}
	fmt.Printf("✓ Wrote review to %s\n", exportOrgPath)
	return nil
}
