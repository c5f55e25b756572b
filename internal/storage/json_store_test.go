package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/tempo/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	s := NewJSONStore(filepath.Join(t.TempDir(), "tempo.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	s := newTestJSONStore(t)

	if err := s.Init(); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestJSONStoreLoadWithoutInitFails(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "tempo.json"))
	if err := s.Load(); err == nil {
		t.Error("expected Load to fail before Init")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	task := models.Task{ID: "t1", Title: "write", Status: models.TaskPlanned, Priority: models.PriorityHigh, Tags: []string{"a"}}
	if err := s.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := s.AddProject(models.Project{ID: "p1", Name: "site"}); err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	if err := s.AddNote(models.Note{ID: "n1", Title: "idea"}); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}

	// Fresh instance over the same file sees the same data
	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reloaded.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "write" || got.Priority != models.PriorityHigh {
		t.Errorf("round trip lost task fields: %+v", got)
	}
	if _, err := reloaded.GetProject("p1"); err != nil {
		t.Errorf("GetProject failed: %v", err)
	}
	if _, err := reloaded.GetNote("n1"); err != nil {
		t.Errorf("GetNote failed: %v", err)
	}

	settings, err := reloaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", settings)
	}
}

func TestJSONStoreNotFoundErrors(t *testing.T) {
	s := newTestJSONStore(t)

	if _, err := s.GetTask("missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
	if err := s.UpdateTask(models.Task{ID: "missing"}); err == nil {
		t.Error("expected UpdateTask to fail for unknown id")
	}
	if err := s.DeleteTask("missing"); err == nil {
		t.Error("expected DeleteTask to fail for unknown id")
	}
}

func TestJSONStoreLoadRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.json")
	blob := `{"version": 99, "tasks": []}`
	if err := os.WriteFile(path, []byte(blob), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s := NewJSONStore(path)
	err := s.Load()
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("expected newer-version error, got %v", err)
	}
}

func TestJSONStoreLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err == nil {
		t.Error("expected Load to fail on unparsable data")
	}
}

func TestJSONStoreLoadUpgradesLegacyBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.json")
	legacy := `{
		"tasks": [{"id": "t1", "title": "old task", "status": "planned", "priority": "low", "created_at": "2024-01-01T00:00:00Z"}],
		"settings": {"theme": "light"}
	}`
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s := NewJSONStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	task, err := s.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Title != "old task" {
		t.Errorf("expected legacy task carried over, got %+v", task)
	}

	settings, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Theme != "light" {
		t.Errorf("expected overlaid theme, got %q", settings.Theme)
	}
	if settings.DefaultView != "board" {
		t.Errorf("expected absent settings fields defaulted, got %q", settings.DefaultView)
	}

	// The upgrade is persisted: the file now carries the current version
	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	snapshot, err := reloaded.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snapshot.Version != models.StateVersion {
		t.Errorf("expected upgraded version %d, got %d", models.StateVersion, snapshot.Version)
	}
}

func TestJSONStoreSnapshotIsDeepCopy(t *testing.T) {
	s := newTestJSONStore(t)

	if err := s.AddTask(models.Task{ID: "t1", Title: "original", Tags: []string{"a"}}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	snapshot, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	snapshot.Tasks[0].Title = "mutated"
	snapshot.Tasks[0].Tags[0] = "z"

	got, err := s.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "original" || got.Tags[0] != "a" {
		t.Errorf("snapshot mutation leaked into the store: %+v", got)
	}
}

func TestJSONStoreReplace(t *testing.T) {
	s := newTestJSONStore(t)

	if err := s.AddTask(models.Task{ID: "old", Title: "old"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	next := models.NewState()
	next.Tasks = []models.Task{{ID: "new", Title: "new"}}
	if err := s.Replace(next); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if _, err := s.GetTask("old"); err == nil {
		t.Error("expected the old task to be gone after Replace")
	}
	if _, err := s.GetTask("new"); err != nil {
		t.Errorf("expected the new task after Replace: %v", err)
	}
}
