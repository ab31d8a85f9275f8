// Package refdata holds the static reference tables: the lab roster,
// the project list, and the public holiday calendar. All of it is
// immutable; callers receive copies where mutation would matter.
package refdata

import "github.com/ailab/timesheetgen/internal/model"

// employees is the fixed lab roster.
var employees = []model.Employee{
	{
		ID:     "emp-001",
		Name:   "Aarav",
		Role:   "ML Engineer",
		Skills: []string{"Python", "PyTorch", "Vector Search"},
		TaskCategories: []string{
			"Model training and evaluation",
			"Embedding pipeline tuning",
			"Search relevance experiments",
			"Offline metric analysis",
		},
	},
	{
		ID:     "emp-002",
		Name:   "Diya",
		Role:   "Backend Engineer",
		Skills: []string{"Go", "PostgreSQL", "Kubernetes"},
		TaskCategories: []string{
			"API endpoint development",
			"Database schema migrations",
			"Service deployment and monitoring",
			"Load testing and profiling",
		},
	},
	{
		ID:     "emp-003",
		Name:   "Kabir",
		Role:   "Data Engineer",
		Skills: []string{"Spark", "Airflow", "dbt"},
		TaskCategories: []string{
			"Data pipeline maintenance",
			"Crawl ingestion and cleanup",
			"Warehouse modelling",
			"Data quality checks",
		},
	},
	{
		ID:     "emp-004",
		Name:   "Meera",
		Role:   "Frontend Engineer",
		Skills: []string{"TypeScript", "React", "Tailwind"},
		TaskCategories: []string{
			"Dashboard component development",
			"Persona editor UI",
			"Cross-browser, accessibility fixes",
			"Design review follow-ups",
		},
	},
	{
		ID:     "emp-005",
		Name:   "Rohan",
		Role:   "Research Scientist",
		Skills: []string{"LLMs", "Prompt Engineering", "Statistics"},
		TaskCategories: []string{
			"Prompt strategy research",
			"Synthetic persona calibration",
			"Paper reading and write-ups",
			"Evaluation rubric design",
		},
	},
}

// projects is the fixed project list.
var projects = []model.Project{
	{Code: "SPARK", Name: "Spark", Description: "AI Search Discovery Platform"},
	{Code: "RADIATE", Name: "Radiate", Description: "GEO Optimization Tool"},
	{Code: "SYNTHPERSONA", Name: "SynthPersona", Description: "Synthetic Persona Generation"},
}

// holidays2026 is the public holiday table for calendar year 2026.
// There is no holiday computation; lookup is by exact date match.
var holidays2026 = []model.Holiday{
	{Date: "2026-01-01", Name: "New Year's Day"},
	{Date: "2026-01-14", Name: "Sankranti"},
	{Date: "2026-01-26", Name: "Republic Day"},
	{Date: "2026-03-04", Name: "Holi"},
	{Date: "2026-05-01", Name: "Labour Day"},
	{Date: "2026-08-17", Name: "Independence Day"},
	{Date: "2026-08-28", Name: "Rakshabandhan"},
	{Date: "2026-09-14", Name: "Ganesha Chaturthi"},
	{Date: "2026-10-02", Name: "Gandhi Jayanti"},
	{Date: "2026-10-20", Name: "Dussehra/Vijayadasami"},
	{Date: "2026-11-09", Name: "Diwali"},
	{Date: "2026-11-11", Name: "Bhai Duj"},
	{Date: "2026-12-25", Name: "Christmas"},
}

// Employees returns the fixed roster.
func Employees() []model.Employee {
	out := make([]model.Employee, len(employees))
	copy(out, employees)
	return out
}

// Projects returns the fixed project list.
func Projects() []model.Project {
	out := make([]model.Project, len(projects))
	copy(out, projects)
	return out
}

// Holidays returns the built-in 2026 holiday table.
func Holidays() []model.Holiday {
	out := make([]model.Holiday, len(holidays2026))
	copy(out, holidays2026)
	return out
}

// EmployeeByID looks up a roster employee. ok is false when the ID is unknown.
func EmployeeByID(roster []model.Employee, id string) (model.Employee, bool) {
	for _, e := range roster {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}
