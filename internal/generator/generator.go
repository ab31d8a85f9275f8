// Package generator fabricates timesheet entries: for every employee
// and working day in a range it distributes a randomised daily total
// across the project list.
package generator

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/model"
)

const (
	// minDailyHours and maxDailyHours bound the uniformly drawn daily
	// total before it is rounded to the nearest half hour.
	minDailyHours = 7.5
	maxDailyHours = 14.0

	// projectShareCap limits any single non-final project slot to this
	// fraction of the daily total. The final slot in the permutation
	// absorbs the remainder instead, which is what makes the per-day
	// sum exact; the permutation randomises which project that is.
	projectShareCap = 0.6

	// minSlotHours is the floor for every allocated project slot.
	minSlotHours = 1.0
)

// Generator produces timesheet entries for a fixed roster, project
// list, and holiday calendar. The random source is injectable so tests
// can seed it; passing nil to New selects a freshly seeded one.
type Generator struct {
	employees []model.Employee
	projects  []model.Project
	cal       *calendar.Calendar
	rnd       *rand.Rand
}

// New builds a Generator. rnd may be nil.
func New(employees []model.Employee, projects []model.Project, cal *calendar.Calendar, rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		employees: employees,
		projects:  projects,
		cal:       cal,
		rnd:       rnd,
	}
}

// roundHalf rounds to the nearest multiple of 0.5.
func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}

// Generate produces entries for every (employee, date) pair in dates,
// skipping non-working days. The result is sorted by date, then
// employee name, then project name. An empty result is valid, not an
// error: an empty range or an all-leave employee simply contributes
// nothing.
func (g *Generator) Generate(leave model.LeaveMap, dates []string) []model.Entry {
	var entries []model.Entry

	for _, emp := range g.employees {
		for _, date := range dates {
			if !g.cal.IsWorkingDay(date, emp.ID, leave) {
				continue
			}
			entries = append(entries, g.generateDay(emp, date)...)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.ProjectName < b.ProjectName
	})
	return entries
}

// generateDay allocates one working day's hours across all projects.
func (g *Generator) generateDay(emp model.Employee, date string) []model.Entry {
	dailyTotal := roundHalf(minDailyHours + g.rnd.Float64()*(maxDailyHours-minDailyHours))
	remaining := dailyTotal

	order := g.rnd.Perm(len(g.projects))
	entries := make([]model.Entry, 0, len(order))

	for i, idx := range order {
		project := g.projects[idx]

		var hours float64
		if i == len(order)-1 {
			// Final slot takes the remainder so the day sums exactly.
			hours = remaining
		} else {
			slotsLeft := len(order) - i
			// Leave at least the 1-hour floor for every slot still to come.
			maxHours := math.Min(projectShareCap*dailyTotal, remaining-float64(slotsLeft-1))
			if maxHours <= minSlotHours {
				hours = minSlotHours
			} else {
				hours = roundHalf(minSlotHours + g.rnd.Float64()*(maxHours-minSlotHours))
			}
		}
		remaining -= hours

		entries = append(entries, model.Entry{
			ID:              emp.ID + "-" + date + "-" + project.Code,
			EmployeeID:      emp.ID,
			EmployeeName:    emp.Name,
			Date:            date,
			ProjectCode:     project.Code,
			ProjectName:     project.Name,
			TaskDescription: emp.TaskCategories[g.rnd.IntN(len(emp.TaskCategories))],
			Hours:           hours,
		})
	}
	return entries
}

// FilterByEmployee returns only the entries belonging to one employee,
// preserving order.
func FilterByEmployee(entries []model.Entry, employeeID string) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out
}

// TotalHours sums the hours of all entries.
func TotalHours(entries []model.Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return sum
}
