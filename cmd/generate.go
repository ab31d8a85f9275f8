package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/config"
	"github.com/ailab/timesheetgen/internal/export"
	"github.com/ailab/timesheetgen/internal/generator"
	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/refdata"
	"github.com/ailab/timesheetgen/internal/storage"
)

var (
	generateFrom      string
	generateTo        string
	generateDays      int
	generateSynthetic int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate timesheet entries and print a preview",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateFrom, "from", "", "Start date (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&generateTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	generateCmd.Flags().IntVar(&generateDays, "days", 15, "Range length when --from is omitted")
	generateCmd.Flags().IntVar(&generateSynthetic, "synthetic", 0, "Append N fabricated employees to the roster")
}

// environment bundles everything a generation-driven command needs.
type environment struct {
	employees []model.Employee
	projects  []model.Project
	holidays  []model.Holiday
	cal       *calendar.Calendar
	leave     model.LeaveMap
}

// loadEnvironment reads config and the persisted leave map and builds
// the roster, project list, and calendar.
func loadEnvironment(synthetic int) (environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return environment{}, err
	}

	base, err := storage.BaseDir()
	if err != nil {
		return environment{}, err
	}
	leave, err := storage.LoadLeave(base)
	if err != nil {
		return environment{}, err
	}

	holidays := cfg.Holidays
	if len(holidays) == 0 {
		holidays = refdata.Holidays()
	}

	employees := refdata.Employees()
	if synthetic > 0 {
		employees = append(employees, refdata.Synthesize(synthetic)...)
	}

	return environment{
		employees: employees,
		projects:  refdata.Projects(),
		holidays:  holidays,
		cal:       calendar.New(holidays),
		leave:     leave,
	}, nil
}

// resolveDates expands --from/--to, defaulting to the last --days days
// ending today.
func resolveDates(from, to string, days int) ([]string, error) {
	if from == "" && to == "" {
		return calendar.LastNDays(days, time.Now()), nil
	}
	if to == "" {
		to = time.Now().Format(calendar.DateLayout)
	}
	if from == "" {
		from = to
	}
	return calendar.ExpandRange(from, to)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(generateSynthetic)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	dates, err := resolveDates(generateFrom, generateTo, generateDays)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gen := generator.New(env.employees, env.projects, env.cal, nil)
	entries := gen.Generate(env.leave, dates)

	fmt.Printf("Period %s to %s (%d days)\n", dates[0], dates[len(dates)-1], len(dates))
	printPreview(entries)

	if len(entries) > 0 {
		fmt.Println()
		printTotals(entries, env.employees, env.projects)
	}
	return nil
}

// printPreview groups entries by date and prints them.
func printPreview(entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries generated.")
		return
	}

	var currentDay string
	for _, e := range entries {
		if e.Date != currentDay {
			fmt.Println(e.Date)
			currentDay = e.Date
		}
		fmt.Printf("  %-10s %-14s %5sh  %s\n",
			e.EmployeeName, e.ProjectName, export.FormatHours(e.Hours), e.TaskDescription)
	}
}

// printTotals prints the per-employee × per-project pivot.
func printTotals(entries []model.Entry, employees []model.Employee, projects []model.Project) {
	fmt.Println("Totals")
	fmt.Println("--------------------------------")
	for _, row := range export.Summary(entries, employees, projects) {
		fmt.Printf("%-12s", row.Employee)
		for _, h := range row.ProjectHours {
			fmt.Printf("%8s", export.FormatHours(h))
		}
		fmt.Printf("%10sh\n", export.FormatHours(row.TotalHours))
	}
}
