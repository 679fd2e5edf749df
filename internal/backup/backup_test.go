package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
)

func setupTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "focusdeck.db")
	if err := os.WriteFile(dbPath, []byte("live database"), 0600); err != nil {
		t.Fatalf("write db: %v", err)
	}
	return NewManager(dbPath), dbPath
}

// writeBackupFile drops a fake backup with a timestamped name directly
// into the backup directory.
func writeBackupFile(t *testing.T, m *Manager, ts time.Time, content string) string {
	t.Helper()
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	name := constants.BackupFilePrefix + ts.Format(timestampLayout) + constants.BackupFileSuffix
	path := filepath.Join(m.GetBackupDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	return path
}

func TestCreateBackupCopiesDatabase(t *testing.T) {
	m, _ := setupTestManager(t)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(content) != "live database" {
		t.Errorf("backup content mismatch: %q", content)
	}
}

func TestCreateBackupFailsWithoutDatabase(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error when database file is missing")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	m, _ := setupTestManager(t)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.Local)
	writeBackupFile(t, m, base, "old")
	writeBackupFile(t, m, base.Add(time.Hour), "new")
	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(m.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if !backups[0].Timestamp.After(backups[1].Timestamp) {
		t.Error("expected newest backup first")
	}
}

func TestListBackupsEmptyWithoutDirectory(t *testing.T) {
	m, _ := setupTestManager(t)
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotationKeepsMostRecent(t *testing.T) {
	m, _ := setupTestManager(t)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < constants.MaxBackups+3; i++ {
		writeBackupFile(t, m, base.Add(time.Duration(i)*time.Minute), fmt.Sprintf("b%d", i))
	}

	// CreateBackup adds one more, then prunes down to the limit.
	if _, err := m.CreateBackup(); err != nil {
		t.Fatalf("create backup: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
}

func TestRestoreBackupReplacesDatabase(t *testing.T) {
	m, dbPath := setupTestManager(t)

	backupPath := writeBackupFile(t, m, time.Date(2026, 5, 1, 9, 0, 0, 0, time.Local), "restored state")

	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore: %v", err)
	}

	content, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read db: %v", err)
	}
	if string(content) != "restored state" {
		t.Errorf("expected restored content, got %q", content)
	}

	// The pre-restore database is saved as a fresh backup.
	backups, _ := m.ListBackups()
	found := false
	for _, b := range backups {
		data, _ := os.ReadFile(b.Path)
		if string(data) == "live database" {
			found = true
		}
	}
	if !found {
		t.Error("expected the previous database preserved among backups")
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	m, _ := setupTestManager(t)
	if err := m.RestoreBackup(filepath.Join(m.GetBackupDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
