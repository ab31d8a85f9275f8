// Package export serialises generated entries as CSV text, Excel
// workbooks, and the per-employee/per-project summary pivot.
package export

import (
	"strconv"

	"github.com/ailab/timesheetgen/internal/model"
)

// Headers is the column order of the flat tabular projection.
var Headers = []string{"Date", "Employee", "Project", "Project Code", "Task", "Hours"}

// FormatHours renders an hour value without trailing zeros ("8", "2.5").
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Row projects one entry into the flat column order.
func Row(e model.Entry) []string {
	return []string{
		e.Date,
		e.EmployeeName,
		e.ProjectName,
		e.ProjectCode,
		e.TaskDescription,
		FormatHours(e.Hours),
	}
}

// Rows projects all entries.
func Rows(entries []model.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row(e))
	}
	return rows
}

// SummaryRow is one line of the pivot: an employee's hours per project
// plus the row total. The final row carries Employee "TOTAL" and the
// per-project column sums.
type SummaryRow struct {
	Employee     string
	ProjectHours []float64 // aligned with the projects passed to Summary
	TotalHours   float64
}

// Summary builds the per-employee × per-project pivot. Every roster
// employee gets a row even with zero entries, followed by the TOTAL row.
func Summary(entries []model.Entry, employees []model.Employee, projects []model.Project) []SummaryRow {
	sums := map[string]map[string]float64{} // employeeID -> projectCode -> hours
	for _, e := range entries {
		if sums[e.EmployeeID] == nil {
			sums[e.EmployeeID] = map[string]float64{}
		}
		sums[e.EmployeeID][e.ProjectCode] += e.Hours
	}

	rows := make([]SummaryRow, 0, len(employees)+1)
	columnTotals := make([]float64, len(projects))
	var grandTotal float64

	for _, emp := range employees {
		row := SummaryRow{Employee: emp.Name, ProjectHours: make([]float64, len(projects))}
		for i, p := range projects {
			h := sums[emp.ID][p.Code]
			row.ProjectHours[i] = h
			row.TotalHours += h
			columnTotals[i] += h
		}
		grandTotal += row.TotalHours
		rows = append(rows, row)
	}

	rows = append(rows, SummaryRow{
		Employee:     "TOTAL",
		ProjectHours: columnTotals,
		TotalHours:   grandTotal,
	})
	return rows
}

// SummaryHeaders returns the pivot's column order: Employee, one column
// per project, then Total Hours.
func SummaryHeaders(projects []model.Project) []string {
	headers := make([]string, 0, len(projects)+2)
	headers = append(headers, "Employee")
	for _, p := range projects {
		headers = append(headers, p.Name)
	}
	return append(headers, "Total Hours")
}
