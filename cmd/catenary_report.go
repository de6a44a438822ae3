package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k-mcmonagle/gocable/internal/catenary"
	"github.com/k-mcmonagle/gocable/internal/export"
)

var (
	reportFile   string
	reportOutput string
)

var catenaryReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF calculation report for one cable case",
	Long: `Solve a cable case defined in a JSON file and write an A4 PDF
calculation report with the inputs and solved results.

Example:
  gocable catenary report --file cable.json --output cable-report.pdf`,
	Run: runCatenaryReport,
}

func init() {
	catenaryCmd.AddCommand(catenaryReportCmd)

	catenaryReportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to cable case JSON file [required]")
	catenaryReportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.pdf", "Output PDF path")

	catenaryReportCmd.MarkFlagRequired("file")
}

func runCatenaryReport(cmd *cobra.Command, args []string) {
	cfg, err := catenary.LoadFromFile(reportFile)
	if err != nil {
		fmt.Printf("Error loading case: %v\n", err)
		return
	}

	shape, err := catenary.Solve(cfg)
	if err != nil {
		fmt.Printf("Error solving case: %v\n", err)
		return
	}

	if err := export.WriteReportPDF(cfg, shape, reportOutput); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to %s\n", reportOutput)
}
