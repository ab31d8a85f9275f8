package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ailab/timesheetgen/internal/model"
)

var (
	calendarFrom string
	calendarTo   string
	calendarDays int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the day-classification grid for a date range",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarFrom, "from", "", "Start date (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calendarTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	calendarCmd.Flags().IntVar(&calendarDays, "days", 15, "Range length when --from is omitted")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	dates, err := resolveDates(calendarFrom, calendarTo, calendarDays)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Header: one column per employee.
	fmt.Printf("%-12s", "Date")
	for _, emp := range env.employees {
		fmt.Printf("%-10s", emp.Name)
	}
	fmt.Println()

	working := make(map[string]int, len(env.employees))
	for _, date := range dates {
		fmt.Printf("%-12s", date)
		for _, emp := range env.employees {
			status := env.cal.Classify(date, emp.ID, env.leave)
			fmt.Printf("%-10s", dayMarker(status))
			if status.Working() {
				working[emp.ID]++
			}
		}
		fmt.Println()
	}

	fmt.Println()
	for _, emp := range env.employees {
		fmt.Printf("%-12s%d working days\n", emp.Name, working[emp.ID])
	}
	fmt.Println("\nLegend: · working  W weekend  H holiday  L leave")
	return nil
}

// dayMarker renders a DayStatus as a single grid cell.
func dayMarker(s model.DayStatus) string {
	switch {
	case s.IsLeave:
		return "L"
	case s.IsHoliday:
		return "H"
	case s.IsWeekend:
		return "W"
	default:
		return "·"
	}
}
