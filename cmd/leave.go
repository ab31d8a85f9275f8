package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/refdata"
	"github.com/ailab/timesheetgen/internal/storage"
)

var leaveClearEmployee string

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Maintain the per-employee leave map",
}

var leaveAddCmd = &cobra.Command{
	Use:   "add <employee-id> <date>...",
	Short: "Mark one or more dates as leave",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLeaveAdd,
}

var leaveRemoveCmd = &cobra.Command{
	Use:   "remove <employee-id> <date>...",
	Short: "Unmark one or more leave dates",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLeaveRemove,
}

var leaveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all leave dates",
	Args:  cobra.NoArgs,
	RunE:  runLeaveClear,
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marked leave dates",
	Args:  cobra.NoArgs,
	RunE:  runLeaveList,
}

func init() {
	leaveClearCmd.Flags().StringVar(&leaveClearEmployee, "employee", "", "Clear only this employee's dates")
	leaveCmd.AddCommand(leaveAddCmd)
	leaveCmd.AddCommand(leaveRemoveCmd)
	leaveCmd.AddCommand(leaveClearCmd)
	leaveCmd.AddCommand(leaveListCmd)
}

// loadLeaveMap loads the persisted leave map, exiting on storage errors.
func loadLeaveMap() (string, model.LeaveMap) {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	leave, err := storage.LoadLeave(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return base, leave
}

func saveLeaveMap(base string, leave model.LeaveMap) {
	if err := storage.SaveLeave(base, leave); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// checkLeaveArgs validates the employee ID and date arguments.
func checkLeaveArgs(args []string) (string, []string) {
	employeeID := args[0]
	if _, ok := refdata.EmployeeByID(refdata.Employees(), employeeID); !ok {
		fmt.Fprintf(os.Stderr, "unknown employee %q\n", employeeID)
		os.Exit(1)
	}
	dates := args[1:]
	for _, d := range dates {
		if _, err := time.Parse(calendar.DateLayout, d); err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q: expected YYYY-MM-DD\n", d)
			os.Exit(1)
		}
	}
	return employeeID, dates
}

func runLeaveAdd(cmd *cobra.Command, args []string) error {
	employeeID, dates := checkLeaveArgs(args)
	base, leave := loadLeaveMap()

	for _, d := range dates {
		if leave.Has(employeeID, d) {
			fmt.Printf("%s already on leave for %s\n", d, employeeID)
			continue
		}
		leave.Toggle(employeeID, d)
		fmt.Printf("Marked %s as leave for %s\n", d, employeeID)
	}

	saveLeaveMap(base, leave)
	return nil
}

func runLeaveRemove(cmd *cobra.Command, args []string) error {
	employeeID, dates := checkLeaveArgs(args)
	base, leave := loadLeaveMap()

	for _, d := range dates {
		if !leave.Has(employeeID, d) {
			fmt.Printf("%s was not on leave for %s\n", d, employeeID)
			continue
		}
		leave.Toggle(employeeID, d)
		fmt.Printf("Unmarked %s for %s\n", d, employeeID)
	}

	saveLeaveMap(base, leave)
	return nil
}

func runLeaveClear(cmd *cobra.Command, args []string) error {
	base, leave := loadLeaveMap()
	leave.Clear(leaveClearEmployee)
	saveLeaveMap(base, leave)

	if leaveClearEmployee != "" {
		fmt.Printf("Cleared leave dates for %s\n", leaveClearEmployee)
	} else {
		fmt.Println("Cleared all leave dates.")
	}
	return nil
}

func runLeaveList(cmd *cobra.Command, args []string) error {
	_, leave := loadLeaveMap()
	if len(leave) == 0 {
		fmt.Println("No leave dates marked.")
		return nil
	}

	ids := make([]string, 0, len(leave))
	for id := range leave {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	roster := refdata.Employees()
	for _, id := range ids {
		dates := append([]string(nil), leave[id]...)
		sort.Strings(dates)

		name := id
		if emp, ok := refdata.EmployeeByID(roster, id); ok {
			name = fmt.Sprintf("%s (%s)", emp.Name, id)
		}
		fmt.Println(name)
		for _, d := range dates {
			fmt.Printf("  %s\n", d)
		}
	}
	return nil
}
