package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/tempo/internal/constants"
)

func writeDataFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "tempo.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeDataFile(t, dir, `{"version": 2, "tasks": []}`)

	mgr := NewManager(path)
	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version": 2, "tasks": []}` {
		t.Errorf("backup content differs from data file: %s", data)
	}
	if filepath.Dir(backupPath) != mgr.BackupDir() {
		t.Errorf("backup landed outside the backup dir: %s", backupPath)
	}
}

func TestCreateBackupWithoutDataFileFails(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error when the data file does not exist")
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	path := writeDataFile(t, dir, "{}")
	mgr := NewManager(path)

	names := []string{
		constants.BackupFilePrefix + "20250101-0900.json",
		constants.BackupFilePrefix + "20250301-1500.json",
		constants.BackupFilePrefix + "20250201-1200.json",
	}
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	// A stray file is ignored
	if err := os.WriteFile(filepath.Join(mgr.BackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v", backups)
		}
	}
}

func TestListEmptyWithoutBackupDir(t *testing.T) {
	path := writeDataFile(t, t.TempDir(), "{}")
	backups, err := NewManager(path).List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotationKeepsRetentionLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeDataFile(t, dir, "{}")
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	// More backups than the retention limit, all distinct timestamps
	for i := 0; i < constants.MaxBackups+5; i++ {
		name := fmt.Sprintf("%s2025%02d%02d-0900.json", constants.BackupFilePrefix, i/28+1, i%28+1)
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
}

func TestRestoreReplacesDataFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDataFile(t, dir, "current")
	mgr := NewManager(path)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("changed"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "current" {
		t.Errorf("expected restored content, got %q", data)
	}

	// The pre-restore state was backed up as a safety copy
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup before restore, got %d backups", len(backups))
	}
}

func TestRestoreMissingBackupFails(t *testing.T) {
	path := writeDataFile(t, t.TempDir(), "{}")
	mgr := NewManager(path)
	if err := mgr.Restore(filepath.Join(mgr.BackupDir(), "missing.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
