package msgraph

import (
	"fmt"
	"time"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/model"
)

// ImportResult holds counters for a leave import run.
type ImportResult struct {
	Imported   int // leave days newly marked
	AlreadySet int // dates that were already on leave
	Skipped    int // events not eligible for import
	Errors     int
}

// ImportOptions configures a leave import run.
type ImportOptions struct {
	EmployeeID string
	DryRun     bool
}

// parseGraphTime parses a Graph API dateTime string in the given timezone.
// Graph returns times like "2026-02-27T09:00:00.0000000" without a zone suffix
// when a Prefer: outlook.timezone header is set.
func parseGraphTime(dt, tz string) (time.Time, error) {
	// Try RFC3339 first (includes timezone offset).
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	// Try RFC3339Nano.
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	// Graph returns fractional seconds: "2026-02-27T09:00:00.0000000"
	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.ParseInLocation(layout, dt, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}

// isAbsence reports whether the event counts as a leave marker: an
// all-day event or anything the owner shows as out-of-office.
func isAbsence(event CalendarEvent) bool {
	if event.IsCancelled {
		return false
	}
	if event.Start.DateTime == "" || event.End.DateTime == "" {
		return false
	}
	return event.IsAllDay || event.ShowAs == "oof"
}

// EventLeaveDates maps an absence event to the ISO dates it covers.
// All-day events carry an exclusive end (midnight of the following
// day); timed out-of-office blocks cover every day they touch.
func EventLeaveDates(event CalendarEvent, timezone string) ([]string, error) {
	start, err := parseGraphTime(event.Start.DateTime, timezone)
	if err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	end, err := parseGraphTime(event.End.DateTime, timezone)
	if err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}

	last := end
	if event.IsAllDay || end.Equal(calendar.StartOfDay(end)) {
		// Exclusive end: step back into the final covered day.
		last = end.Add(-time.Second)
	}

	var dates []string
	for d := calendar.StartOfDay(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(calendar.DateLayout))
	}
	return dates, nil
}

// ImportLeave records absence events as leave days for one employee,
// mutating leave in place. It prints progress to stdout and returns
// counters; with DryRun set nothing is mutated.
func ImportLeave(events []CalendarEvent, leave model.LeaveMap, opts ImportOptions, timezone string) ImportResult {
	var result ImportResult

	for _, event := range events {
		if !isAbsence(event) {
			result.Skipped++
			continue
		}

		dates, err := EventLeaveDates(event, timezone)
		if err != nil {
			fmt.Printf("  ! Error mapping event %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}

		for _, date := range dates {
			if leave.Has(opts.EmployeeID, date) {
				fmt.Printf("  – Skipped:  %s (already on leave)\n", date)
				result.AlreadySet++
				continue
			}
			if !opts.DryRun {
				leave.Toggle(opts.EmployeeID, date)
			}
			fmt.Printf("  + Imported: %s (%s)\n", date, event.Subject)
			result.Imported++
		}
	}
	return result
}
