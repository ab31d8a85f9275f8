package msgraph_test

import (
	"reflect"
	"testing"

	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/msgraph"
)

func makeEvent(subject, start, end string, allDay bool, showAs string) msgraph.CalendarEvent {
	ev := msgraph.CalendarEvent{
		ID:       "ext-" + subject,
		Subject:  subject,
		IsAllDay: allDay,
		ShowAs:   showAs,
	}
	ev.Start.DateTime = start
	ev.Start.TimeZone = "UTC"
	ev.End.DateTime = end
	ev.End.TimeZone = "UTC"
	return ev
}

func TestEventLeaveDatesAllDay(t *testing.T) {
	// Graph all-day events end at midnight of the following day (exclusive).
	ev := makeEvent("Vacation", "2026-02-23T00:00:00", "2026-02-26T00:00:00", true, "oof")
	dates, err := msgraph.EventLeaveDates(ev, "UTC")
	if err != nil {
		t.Fatalf("EventLeaveDates: %v", err)
	}
	want := []string{"2026-02-23", "2026-02-24", "2026-02-25"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("EventLeaveDates = %v, want %v", dates, want)
	}
}

func TestEventLeaveDatesTimedBlock(t *testing.T) {
	// A timed out-of-office block covers every day it touches.
	ev := makeEvent("Offsite", "2026-02-24T09:00:00", "2026-02-25T17:00:00", false, "oof")
	dates, err := msgraph.EventLeaveDates(ev, "UTC")
	if err != nil {
		t.Fatalf("EventLeaveDates: %v", err)
	}
	want := []string{"2026-02-24", "2026-02-25"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("EventLeaveDates = %v, want %v", dates, want)
	}
}

func TestImportLeave(t *testing.T) {
	events := []msgraph.CalendarEvent{
		makeEvent("Vacation", "2026-02-23T00:00:00", "2026-02-24T00:00:00", true, "oof"),
		makeEvent("Standup", "2026-02-23T10:00:00", "2026-02-23T10:15:00", false, "busy"),
		makeEvent("Doctor", "2026-02-25T13:00:00", "2026-02-25T15:00:00", false, "oof"),
	}

	leave := model.LeaveMap{"emp-004": {"2026-02-25"}}
	result := msgraph.ImportLeave(events, leave, msgraph.ImportOptions{EmployeeID: "emp-004"}, "UTC")

	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if result.AlreadySet != 1 {
		t.Errorf("AlreadySet = %d, want 1", result.AlreadySet)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (busy standup)", result.Skipped)
	}
	if !leave.Has("emp-004", "2026-02-23") {
		t.Error("2026-02-23 not marked as leave")
	}
}

func TestImportLeaveDryRun(t *testing.T) {
	events := []msgraph.CalendarEvent{
		makeEvent("Vacation", "2026-02-23T00:00:00", "2026-02-24T00:00:00", true, "oof"),
	}
	leave := model.LeaveMap{}
	result := msgraph.ImportLeave(events, leave, msgraph.ImportOptions{EmployeeID: "emp-001", DryRun: true}, "UTC")

	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1 (counted even in dry-run)", result.Imported)
	}
	if leave.Has("emp-001", "2026-02-23") {
		t.Error("dry-run mutated the leave map")
	}
}

func TestImportLeaveSkipsCancelled(t *testing.T) {
	ev := makeEvent("Vacation", "2026-02-23T00:00:00", "2026-02-24T00:00:00", true, "oof")
	ev.IsCancelled = true

	leave := model.LeaveMap{}
	result := msgraph.ImportLeave([]msgraph.CalendarEvent{ev}, leave, msgraph.ImportOptions{EmployeeID: "emp-001"}, "UTC")
	if result.Skipped != 1 || result.Imported != 0 {
		t.Errorf("result = %+v, want 1 skipped, 0 imported", result)
	}
}
