package export_test

import (
	"testing"

	"github.com/ailab/timesheetgen/internal/export"
	"github.com/ailab/timesheetgen/internal/refdata"
)

func TestSummaryPivot(t *testing.T) {
	employees := refdata.Employees()
	projects := refdata.Projects()
	rows := export.Summary(twoDayEntries(), employees, projects)

	if len(rows) != len(employees)+1 {
		t.Fatalf("summary rows = %d, want %d", len(rows), len(employees)+1)
	}

	// Aarav: SPARK 5 + RADIATE 3.
	aarav := rows[0]
	if aarav.Employee != "Aarav" {
		t.Fatalf("first row = %q, want Aarav", aarav.Employee)
	}
	if aarav.ProjectHours[0] != 5 || aarav.ProjectHours[1] != 3 || aarav.ProjectHours[2] != 0 {
		t.Errorf("Aarav project hours = %v", aarav.ProjectHours)
	}
	if aarav.TotalHours != 8 {
		t.Errorf("Aarav total = %v, want 8", aarav.TotalHours)
	}

	// Employees with no entries still get a zero row.
	kabir := rows[2]
	if kabir.Employee != "Kabir" || kabir.TotalHours != 0 {
		t.Errorf("Kabir row = %+v, want zero totals", kabir)
	}

	total := rows[len(rows)-1]
	if total.Employee != "TOTAL" {
		t.Fatalf("last row = %q, want TOTAL", total.Employee)
	}
	if total.ProjectHours[0] != 12.5 || total.ProjectHours[1] != 3 {
		t.Errorf("column totals = %v", total.ProjectHours)
	}
	if total.TotalHours != 15.5 {
		t.Errorf("grand total = %v, want 15.5", total.TotalHours)
	}

	headers := export.SummaryHeaders(projects)
	want := []string{"Employee", "Spark", "Radiate", "SynthPersona", "Total Hours"}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("header %d = %q, want %q", i, headers[i], want[i])
		}
	}
}
