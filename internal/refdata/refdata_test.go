package refdata_test

import (
	"strings"
	"testing"

	"github.com/ailab/timesheetgen/internal/refdata"
)

func TestRosterIntegrity(t *testing.T) {
	employees := refdata.Employees()
	if len(employees) == 0 {
		t.Fatal("empty roster")
	}

	seen := map[string]bool{}
	for _, e := range employees {
		if e.ID == "" || e.Name == "" || e.Role == "" {
			t.Errorf("employee %+v has empty fields", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate employee ID %s", e.ID)
		}
		seen[e.ID] = true
		if len(e.TaskCategories) == 0 {
			t.Errorf("employee %s has no task categories", e.ID)
		}
	}
}

func TestProjectCodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range refdata.Projects() {
		if seen[p.Code] {
			t.Errorf("duplicate project code %s", p.Code)
		}
		seen[p.Code] = true
	}
}

func TestHolidaysWellFormed(t *testing.T) {
	for _, h := range refdata.Holidays() {
		if !strings.HasPrefix(h.Date, "2026-") {
			t.Errorf("holiday %q outside calendar year 2026", h.Date)
		}
		if h.Name == "" {
			t.Errorf("holiday %s has no name", h.Date)
		}
	}
}

func TestSynthesize(t *testing.T) {
	extra := refdata.Synthesize(4)
	if len(extra) != 4 {
		t.Fatalf("Synthesize(4) returned %d employees", len(extra))
	}

	for i, e := range extra {
		if e.ID == "" || e.Name == "" {
			t.Errorf("synthetic employee %d missing ID or name", i)
		}
		if len(e.TaskCategories) != 4 {
			t.Errorf("synthetic employee %d has %d task categories, want 4", i, len(e.TaskCategories))
		}
		if len(e.Skills) != 3 {
			t.Errorf("synthetic employee %d has %d skills, want 3", i, len(e.Skills))
		}
	}

	// IDs continue after the fixed roster, emp-006 onwards.
	if extra[0].ID != "emp-006" {
		t.Errorf("first synthetic ID = %s, want emp-006", extra[0].ID)
	}
}
