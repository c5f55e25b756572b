package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "json" {
		t.Errorf("expected json backend, got %q", cfg.Backend)
	}
	if cfg.DataPath == "" {
		t.Error("expected a default data path")
	}
	if cfg.Debug {
		t.Error("expected debug off by default")
	}
}

func TestLoadParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "backend = \"sqlite\"\ndata_path = \"/tmp/tempo-test/data.db\"\ndebug = true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Backend)
	}
	if cfg.DataPath != "/tmp/tempo-test/data.db" {
		t.Errorf("unexpected data path: %q", cfg.DataPath)
	}
	if !cfg.Debug {
		t.Error("expected debug on")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("backend = \"postgres\"\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("expected unknown backend error, got %v", err)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("backend = [broken"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSQLiteBackendSwapsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "backend = \"sqlite\"\ndata_path = \"/tmp/tempo-test/tempo.json\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.HasSuffix(cfg.DataPath, ".db") {
		t.Errorf("expected .db data path for sqlite backend, got %q", cfg.DataPath)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Config{Backend: "sqlite", DataPath: "/tmp/tempo-test/x.db", Debug: true}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
