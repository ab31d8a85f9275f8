package model

// Employee is one member of the lab roster.
type Employee struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Skills         []string `json:"skills"`
	TaskCategories []string `json:"task_categories"`
}

// Project is one billable project code.
type Project struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Holiday is a single public holiday (exact-date lookup, no recurrence).
type Holiday struct {
	Date string `json:"date"` // ISO date, YYYY-MM-DD
	Name string `json:"name"`
}

// LeaveMap maps an employee ID to the ISO dates that employee is marked
// absent. A missing key is an empty leave set. Dates are unique per
// employee; Toggle keeps that invariant.
type LeaveMap map[string][]string

// Has reports whether the employee is on leave on the given date.
func (m LeaveMap) Has(employeeID, date string) bool {
	for _, d := range m[employeeID] {
		if d == date {
			return true
		}
	}
	return false
}

// Toggle adds the date to the employee's leave set, or removes it if
// already present. It reports whether the date is on leave afterwards.
func (m LeaveMap) Toggle(employeeID, date string) bool {
	dates := m[employeeID]
	for i, d := range dates {
		if d == date {
			m[employeeID] = append(dates[:i], dates[i+1:]...)
			return false
		}
	}
	m[employeeID] = append(dates, date)
	return true
}

// Clear removes all leave dates for one employee, or for everyone when
// employeeID is empty.
func (m LeaveMap) Clear(employeeID string) {
	if employeeID == "" {
		for k := range m {
			delete(m, k)
		}
		return
	}
	delete(m, employeeID)
}

// DayStatus is the derived classification of one date for one employee.
// It is computed on demand and never stored.
type DayStatus struct {
	Date        string `json:"date"`
	IsWeekend   bool   `json:"is_weekend"`
	IsHoliday   bool   `json:"is_holiday"`
	HolidayName string `json:"holiday_name,omitempty"`
	IsLeave     bool   `json:"is_leave"`
}

// Working reports whether the day counts as a working day.
func (s DayStatus) Working() bool {
	return !s.IsWeekend && !s.IsHoliday && !s.IsLeave
}

// Entry is one generated (employee, date, project) hour allocation.
// ID is derived as employeeID-date-projectCode, so two generation runs
// collide in ID but may differ in hours.
type Entry struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Date            string  `json:"date"`
	ProjectCode     string  `json:"project_code"`
	ProjectName     string  `json:"project_name"`
	TaskDescription string  `json:"task_description"`
	Hours           float64 `json:"hours"`
}
