package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ailab/timesheetgen/internal/model"
)

// BaseDir returns the root data directory (~/.tsg).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tsg"), nil
}

// leaveFilePath returns the path of the persisted leave map.
func leaveFilePath(base string) string {
	return filepath.Join(base, "leave.json")
}

// LoadLeave loads the leave map. Returns an empty map if the file does
// not exist yet.
func LoadLeave(base string) (model.LeaveMap, error) {
	path := leaveFilePath(base)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.LeaveMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var m model.LeaveMap
	if err := json.Unmarshal(data, &m); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return nil, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if m == nil {
		m = model.LeaveMap{}
	}
	return m, nil
}

// SaveLeave atomically writes the leave map.
func SaveLeave(base string, m model.LeaveMap) error {
	path := leaveFilePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
