package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simreport/internal/report"
)

const (
	defaultInputPath  = "analysis_results_all.csv"
	defaultOutputPath = "full_simulation_results.md"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the Markdown simulation results table",
	Long: `Read simulation results from a CSV file and write a Markdown table
sorted by profit descending.

Examples:
  simreport report
  simreport report --input analysis_results_all.csv --outfile full_simulation_results.md`,
	Run: runReportCommand,
}

var (
	reportInput   string
	reportOutfile string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportInput, "input", defaultInputPath, "Path to the simulation results CSV")
	reportCmd.Flags().StringVar(&reportOutfile, "outfile", defaultOutputPath, "Path for the generated Markdown report")
}

// runReportCommand prints one line either way and never fails the process;
// generation errors are reported, not propagated.
func runReportCommand(cmd *cobra.Command, args []string) {
	rows, err := report.Generate(reportInput, reportOutfile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Successfully wrote %d rows to %s\n", rows, reportOutfile)
}
