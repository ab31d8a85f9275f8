package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsg",
	Short: "AI Lab Timesheet Generator – fabricate plausible timesheet data",
	Long: `tsg fabricates internally consistent timesheet entries for the lab
roster over a date range, skipping weekends, public holidays, and
marked leave days, and exports the result as CSV or Excel workbooks.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(leaveCmd)
	rootCmd.AddCommand(outlookCmd)
	rootCmd.AddCommand(serveCmd)
}
