// Package calendar classifies dates (weekend / holiday / leave) and
// expands date ranges. All dates cross package boundaries as ISO
// YYYY-MM-DD strings, which compare chronologically as plain strings.
package calendar

import (
	"fmt"
	"time"

	"github.com/ailab/timesheetgen/internal/model"
)

// DateLayout is the ISO date layout used everywhere.
const DateLayout = "2006-01-02"

// Calendar answers holiday and working-day questions for one holiday table.
type Calendar struct {
	holidays map[string]string // date -> name
}

// New builds a Calendar from a holiday table.
func New(holidays []model.Holiday) *Calendar {
	m := make(map[string]string, len(holidays))
	for _, h := range holidays {
		m[h.Date] = h.Name
	}
	return &Calendar{holidays: m}
}

// Holiday returns the holiday name for the date, or ok=false.
func (c *Calendar) Holiday(date string) (string, bool) {
	name, ok := c.holidays[date]
	return name, ok
}

// Classify derives the DayStatus for one date and one employee. It is
// pure: identical inputs always yield identical statuses. Malformed
// dates are a caller contract violation; they classify as plain
// non-weekend working days rather than erroring.
func (c *Calendar) Classify(date, employeeID string, leave model.LeaveMap) model.DayStatus {
	status := model.DayStatus{Date: date}

	if t, err := time.Parse(DateLayout, date); err == nil {
		wd := t.Weekday()
		status.IsWeekend = wd == time.Saturday || wd == time.Sunday
	}
	if name, ok := c.holidays[date]; ok {
		status.IsHoliday = true
		status.HolidayName = name
	}
	status.IsLeave = leave.Has(employeeID, date)
	return status
}

// IsWorkingDay reports whether the date is neither a weekend, a
// holiday, nor a leave day for the employee.
func (c *Calendar) IsWorkingDay(date, employeeID string, leave model.LeaveMap) bool {
	return c.Classify(date, employeeID, leave).Working()
}

// ExpandRange returns every date from start to end inclusive, ascending.
func ExpandRange(start, end string) ([]string, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if from.After(to) {
		return nil, fmt.Errorf("start date %s is after end date %s", start, end)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// LastNDays returns the n contiguous dates ending at end, ascending.
func LastNDays(n int, end time.Time) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, end.AddDate(0, 0, -i).Format(DateLayout))
	}
	return dates
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
