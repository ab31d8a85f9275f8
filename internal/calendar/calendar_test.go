package calendar_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/ailab/timesheetgen/internal/calendar"
	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/refdata"
)

func TestClassify(t *testing.T) {
	cal := calendar.New(refdata.Holidays())
	leave := model.LeaveMap{"emp-001": {"2026-02-24"}}

	tests := []struct {
		date       string
		employeeID string
		weekend    bool
		holiday    bool
		name       string
		onLeave    bool
	}{
		{"2026-02-23", "emp-001", false, false, "", false}, // Monday
		{"2026-02-28", "emp-001", true, false, "", false},  // Saturday
		{"2026-03-01", "emp-001", true, false, "", false},  // Sunday
		{"2026-01-01", "emp-001", false, true, "New Year's Day", false}, // Thursday
		{"2026-11-09", "emp-001", false, true, "Diwali", false},         // Monday
		{"2026-02-24", "emp-001", false, false, "", true},
		{"2026-02-24", "emp-002", false, false, "", false}, // other employee unaffected
	}
	for _, tt := range tests {
		got := cal.Classify(tt.date, tt.employeeID, leave)
		if got.IsWeekend != tt.weekend {
			t.Errorf("Classify(%s, %s).IsWeekend = %v, want %v", tt.date, tt.employeeID, got.IsWeekend, tt.weekend)
		}
		if got.IsHoliday != tt.holiday {
			t.Errorf("Classify(%s, %s).IsHoliday = %v, want %v", tt.date, tt.employeeID, got.IsHoliday, tt.holiday)
		}
		if got.HolidayName != tt.name {
			t.Errorf("Classify(%s, %s).HolidayName = %q, want %q", tt.date, tt.employeeID, got.HolidayName, tt.name)
		}
		if got.IsLeave != tt.onLeave {
			t.Errorf("Classify(%s, %s).IsLeave = %v, want %v", tt.date, tt.employeeID, got.IsLeave, tt.onLeave)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	cal := calendar.New(refdata.Holidays())
	leave := model.LeaveMap{"emp-001": {"2026-02-24"}}

	first := cal.Classify("2026-02-24", "emp-001", leave)
	second := cal.Classify("2026-02-24", "emp-001", leave)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify not idempotent: %+v vs %+v", first, second)
	}
}

func TestIsWorkingDay(t *testing.T) {
	cal := calendar.New(refdata.Holidays())
	leave := model.LeaveMap{"emp-001": {"2026-02-24"}}

	tests := []struct {
		date       string
		employeeID string
		want       bool
	}{
		{"2026-02-23", "emp-001", true},
		{"2026-02-28", "emp-001", false}, // Saturday
		{"2026-01-01", "emp-001", false}, // holiday
		{"2026-02-24", "emp-001", false}, // leave
		{"2026-02-24", "emp-002", true},
	}
	for _, tt := range tests {
		if got := cal.IsWorkingDay(tt.date, tt.employeeID, leave); got != tt.want {
			t.Errorf("IsWorkingDay(%s, %s) = %v, want %v", tt.date, tt.employeeID, got, tt.want)
		}
	}
}

func TestExpandRange(t *testing.T) {
	got, err := calendar.ExpandRange("2026-02-26", "2026-03-02")
	if err != nil {
		t.Fatalf("ExpandRange: %v", err)
	}
	want := []string{"2026-02-26", "2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRange = %v, want %v", got, want)
	}
}

func TestExpandRangeSingleDay(t *testing.T) {
	got, err := calendar.ExpandRange("2026-02-27", "2026-02-27")
	if err != nil {
		t.Fatalf("ExpandRange: %v", err)
	}
	if len(got) != 1 || got[0] != "2026-02-27" {
		t.Errorf("ExpandRange single day = %v, want [2026-02-27]", got)
	}
}

func TestExpandRangeErrors(t *testing.T) {
	if _, err := calendar.ExpandRange("2026-03-02", "2026-02-26"); err == nil {
		t.Error("expected error for reversed range")
	}
	if _, err := calendar.ExpandRange("garbage", "2026-02-26"); err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestLastNDays(t *testing.T) {
	end := time.Date(2026, 2, 27, 15, 30, 0, 0, time.UTC)
	got := calendar.LastNDays(15, end)
	if len(got) != 15 {
		t.Fatalf("LastNDays length = %d, want 15", len(got))
	}
	if got[0] != "2026-02-13" {
		t.Errorf("LastNDays first = %s, want 2026-02-13", got[0])
	}
	if got[14] != "2026-02-27" {
		t.Errorf("LastNDays last = %s, want 2026-02-27", got[14])
	}
}
