package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ailab/timesheetgen/internal/export"
	"github.com/ailab/timesheetgen/internal/generator"
	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/refdata"
)

var (
	exportFrom     string
	exportTo       string
	exportDays     int
	exportFormat   string
	exportOut      string
	exportEmployee string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate entries and write them as csv, xlsx, json, or md",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	exportCmd.Flags().IntVar(&exportDays, "days", 15, "Range length when --from is omitted")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, xlsx, json, md")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file; \"-\" writes text formats to stdout")
	exportCmd.Flags().StringVar(&exportEmployee, "employee", "", "Export a single employee (ID, e.g. emp-002)")
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	dates, err := resolveDates(exportFrom, exportTo, exportDays)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gen := generator.New(env.employees, env.projects, env.cal, nil)
	entries := gen.Generate(env.leave, dates)

	var employee model.Employee
	if exportEmployee != "" {
		var ok bool
		employee, ok = refdata.EmployeeByID(env.employees, exportEmployee)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown employee %q\n", exportEmployee)
			os.Exit(1)
		}
		entries = generator.FilterByEmployee(entries, employee.ID)
	}

	switch exportFormat {
	case "xlsx":
		var data []byte
		var name string
		if exportEmployee != "" {
			data, err = export.EmployeeWorkbook(entries, employee)
			name = export.EmployeeXLSXFilename(employee.Name)
		} else {
			data, err = export.Workbook(entries, env.employees, env.projects)
			name = export.XLSXFilename
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return writeBinary(data, name)

	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		return writeText(string(data)+"\n", "timesheet.json")

	case "md":
		return writeText(markdownTable(entries), "timesheet.md")

	default: // csv
		return writeText(export.CSV(entries), export.CSVFilename)
	}
}

// writeText writes content to --out (default name when unset, stdout on "-").
func writeText(content, defaultName string) error {
	out := exportOut
	if out == "-" {
		fmt.Print(content)
		return nil
	}
	if out == "" {
		out = defaultName
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

func writeBinary(data []byte, defaultName string) error {
	out := exportOut
	if out == "" || out == "-" {
		out = defaultName
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

// markdownTable renders the flat projection as a Markdown table.
func markdownTable(entries []model.Entry) string {
	if len(entries) == 0 {
		return "No entries.\n"
	}
	s := "| Date | Employee | Project | Project Code | Task | Hours |\n"
	s += "|------|----------|---------|--------------|------|-------|\n"
	for _, e := range entries {
		row := export.Row(e)
		s += "|"
		for _, f := range row {
			s += " " + f + " |"
		}
		s += "\n"
	}
	return s
}
