package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ailab/timesheetgen/internal/model"
	"github.com/ailab/timesheetgen/internal/storage"
)

func TestLoadLeaveNotExist(t *testing.T) {
	base := t.TempDir()
	m, err := storage.LoadLeave(base)
	if err != nil {
		t.Fatalf("LoadLeave on missing file: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("LoadLeave entries = %d, want 0", len(m))
	}
}

func TestSaveLeaveAndLoadLeave(t *testing.T) {
	base := t.TempDir()

	m := model.LeaveMap{
		"emp-001": {"2026-02-24", "2026-02-25"},
		"emp-003": {"2026-03-02"},
	}
	if err := storage.SaveLeave(base, m); err != nil {
		t.Fatalf("SaveLeave: %v", err)
	}

	loaded, err := storage.LoadLeave(base)
	if err != nil {
		t.Fatalf("LoadLeave after save: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("LoadLeave employees = %d, want 2", len(loaded))
	}
	if !loaded.Has("emp-001", "2026-02-25") {
		t.Error("emp-001 2026-02-25 missing after round trip")
	}
	if loaded.Has("emp-003", "2026-02-24") {
		t.Error("emp-003 unexpectedly on leave 2026-02-24")
	}
}

func TestLoadLeaveCorrupt(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "leave.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := storage.LoadLeave(base)
	if err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}

	// Backup file should exist.
	if _, err2 := os.Stat(path + ".corrupt"); os.IsNotExist(err2) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	base := t.TempDir()

	m := model.LeaveMap{}
	m.Toggle("emp-002", "2026-02-24")
	m.Toggle("emp-002", "2026-02-24") // toggled back off
	m.Toggle("emp-002", "2026-02-26")

	if err := storage.SaveLeave(base, m); err != nil {
		t.Fatal(err)
	}
	loaded, err := storage.LoadLeave(base)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Has("emp-002", "2026-02-24") {
		t.Error("toggled-off date survived round trip")
	}
	if !loaded.Has("emp-002", "2026-02-26") {
		t.Error("toggled-on date lost in round trip")
	}
}
