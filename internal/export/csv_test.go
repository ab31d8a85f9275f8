package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/ailab/timesheetgen/internal/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{8, "8"},
		{2.5, "2.5"},
		{0.5, "0.5"},
		{10.5, "10.5"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func sampleEntries() []model.Entry {
	return []model.Entry{
		{
			ID:              "emp-001-2026-02-23-SPARK",
			EmployeeID:      "emp-001",
			EmployeeName:    "Aarav",
			Date:            "2026-02-23",
			ProjectCode:     "SPARK",
			ProjectName:     "Spark",
			TaskDescription: "Model training and evaluation",
			Hours:           4.5,
		},
		{
			ID:              "emp-001-2026-02-23-RADIATE",
			EmployeeID:      "emp-001",
			EmployeeName:    "Aarav",
			Date:            "2026-02-23",
			ProjectCode:     "RADIATE",
			ProjectName:     "Radiate",
			TaskDescription: `Cross-browser, "a11y" fixes`,
			Hours:           3.5,
		},
	}
}

// TestCSVRoundTrip parses the generated CSV back and checks the tuples
// survive, including unescaping of commas and quotes in tasks.
func TestCSVRoundTrip(t *testing.T) {
	entries := sampleEntries()
	out := CSV(entries)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parsing generated CSV: %v", err)
	}
	if len(records) != len(entries)+1 {
		t.Fatalf("records = %d, want %d", len(records), len(entries)+1)
	}

	wantHeader := "Date,Employee,Project,Project Code,Task,Hours"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}

	for i, e := range entries {
		rec := records[i+1]
		want := []string{e.Date, e.EmployeeName, e.ProjectName, e.ProjectCode, e.TaskDescription, FormatHours(e.Hours)}
		for col := range want {
			if rec[col] != want[col] {
				t.Errorf("row %d col %d = %q, want %q", i, col, rec[col], want[col])
			}
		}
	}
}
