package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationsSortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INTEGER)")},
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id INTEGER)")},
		"010_tenth.sql":  {Data: []byte("CREATE TABLE c (id INTEGER)")},
		"README.md":      {Data: []byte("not a migration")},
	}

	r := NewRunner(nil, fsys)
	migrations, err := r.ReadMigrations()
	if err != nil {
		t.Fatalf("ReadMigrations failed: %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	for i, want := range []int{1, 2, 10} {
		if migrations[i].Version != want {
			t.Errorf("position %d: expected version %d, got %d", i, want, migrations[i].Version)
		}
	}
	if migrations[0].Name != "first" {
		t.Errorf("expected name 'first', got %q", migrations[0].Name)
	}
}

func TestReadMigrationsRejectsBadFilenames(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"missing underscore", "001.sql"},
		{"non-numeric version", "abc_test.sql"},
		{"zero version", "000_zero.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{tt.file: {Data: []byte("SELECT 1")}}
			if _, err := NewRunner(nil, fsys).ReadMigrations(); err == nil {
				t.Errorf("expected error for %s", tt.file)
			}
		})
	}
}

func TestReadMigrationsRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1")},
		"001_b.sql": {Data: []byte("SELECT 1")},
	}

	if _, err := NewRunner(nil, fsys).ReadMigrations(); err == nil {
		t.Error("expected duplicate version error")
	}
}

func TestApplyRunsPendingMigrationsOnce(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY)")},
		"002_more.sql": {Data: []byte("ALTER TABLE things ADD COLUMN name TEXT")},
	}
	r := NewRunner(db, fsys)

	applied, err := r.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	current, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if current != 2 {
		t.Errorf("expected version 2, got %d", current)
	}

	// Second run is a no-op
	applied, err = r.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected no migrations on second run, got %d", applied)
	}

	if err := r.ValidateVersion(); err != nil {
		t.Errorf("expected valid schema, got %v", err)
	}
}

func TestValidateVersionDetectsDrift(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY)")},
		"002_more.sql": {Data: []byte("ALTER TABLE things ADD COLUMN name TEXT")},
	}
	r := NewRunner(db, fsys)

	// Behind: only the first migration applied
	behind := NewRunner(db, fstest.MapFS{
		"001_init.sql": fsys["001_init.sql"],
	})
	if _, err := behind.Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := r.ValidateVersion(); err == nil {
		t.Error("expected behind-schema error")
	}

	// Ahead: recorded version exceeds every known migration
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatalf("failed to clear version: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatalf("failed to set version: %v", err)
	}
	if err := r.ValidateVersion(); err == nil {
		t.Error("expected newer-schema error")
	}
}
