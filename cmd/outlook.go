package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/config"
	"github.com/ailab/timesheetgen/internal/msgraph"
	"github.com/ailab/timesheetgen/internal/refdata"
	"github.com/ailab/timesheetgen/internal/storage"
)

var (
	outlookImportEmployee string
	outlookImportFrom     string
	outlookImportTo       string
	outlookImportDryRun   bool
	outlookImportTZ       string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Record Outlook out-of-office days as leave for an employee",
	Args:  cobra.NoArgs,
	RunE:  runOutlookImport,
}

func init() {
	outlookImportCmd.Flags().StringVar(&outlookImportEmployee, "employee", "", "Employee ID to mark (required)")
	outlookImportCmd.Flags().StringVar(&outlookImportFrom, "from", "", "Start date (YYYY-MM-DD); defaults to 15 days ago")
	outlookImportCmd.Flags().StringVar(&outlookImportTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	outlookImportCmd.Flags().BoolVar(&outlookImportDryRun, "dry-run", false, "Print planned operations without writing")
	outlookImportCmd.Flags().StringVar(&outlookImportTZ, "timezone", "", "IANA timezone for event times (e.g. Asia/Kolkata)")
	_ = outlookImportCmd.MarkFlagRequired("employee")
	outlookCmd.AddCommand(outlookImportCmd)
}

func runOutlookImport(cmd *cobra.Command, args []string) error {
	if _, ok := refdata.EmployeeByID(refdata.Employees(), outlookImportEmployee); !ok {
		fmt.Fprintf(os.Stderr, "unknown employee %q\n", outlookImportEmployee)
		os.Exit(1)
	}

	now := time.Now()
	from := calendar.StartOfDay(now.AddDate(0, 0, -14))
	to := calendar.EndOfDay(now)

	if outlookImportFrom != "" {
		d, err := time.Parse(calendar.DateLayout, outlookImportFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --from value %q: %v\n", outlookImportFrom, err)
			os.Exit(1)
		}
		from = calendar.StartOfDay(d)
	}
	if outlookImportTo != "" {
		d, err := time.Parse(calendar.DateLayout, outlookImportTo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --to value %q: %v\n", outlookImportTo, err)
			os.Exit(1)
		}
		to = calendar.EndOfDay(d)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	timezone := outlookImportTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}

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

	dryTag := ""
	if outlookImportDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Importing out-of-office days for %s (%s → %s)%s...\n",
		outlookImportEmployee, from.Format(calendar.DateLayout), to.Format(calendar.DateLayout), dryTag)
	fmt.Println()

	ctx := context.Background()

	tok, oauthCfg, err := msgraph.Authenticate(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	client := msgraph.NewClient(ctx, tok, oauthCfg)
	events, err := client.GetCalendarView(ctx, from, to, timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch calendar events: %v\n", err)
		os.Exit(1)
	}

	opts := msgraph.ImportOptions{
		EmployeeID: outlookImportEmployee,
		DryRun:     outlookImportDryRun,
	}
	result := msgraph.ImportLeave(events, leave, opts, timezone)

	if !outlookImportDryRun {
		if err := storage.SaveLeave(base, leave); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d imported\n", result.Imported)
	fmt.Printf("  %d already set\n", result.AlreadySet)
	fmt.Printf("  %d skipped\n", result.Skipped)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
