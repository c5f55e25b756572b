package transfer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/tempo/internal/models"
)

func sampleState() models.State {
	st := models.NewState()
	st.Tasks = []models.Task{{
		ID: "t1", Title: "write", Status: models.TaskPlanned, Priority: models.PriorityHigh,
		Tags: []string{"a"}, CreatedAt: "2025-01-01T00:00:00Z",
		Sessions: []models.TimeSession{{ID: "s1", StartedAt: 1000, StartClock: "09:00"}},
	}}
	st.Projects = []models.Project{{ID: "p1", Name: "site", CreatedAt: "2025-01-01T00:00:00Z", UpdatedAt: "2025-01-01T00:00:00Z"}}
	st.Notes = []models.Note{{ID: "n1", Title: "idea", CreatedAt: "2025-01-01T00:00:00Z", UpdatedAt: "2025-01-01T00:00:00Z"}}
	st.Payments = []models.Payment{{ID: "m1", ProjectID: "p1", Amount: 10, Currency: "EUR", CreatedAt: "2025-01-01T00:00:00Z"}}
	return st
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)
	if got := ExportFileName(now); got != "tempo-export-2025-01-10.json" {
		t.Errorf("unexpected export filename: %s", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	state := sampleState()

	if err := Export(state, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	got, err := Import(data, models.NewState())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(got.Tasks) != 1 || got.Tasks[0].ID != "t1" {
		t.Errorf("tasks lost in round trip: %+v", got.Tasks)
	}
	if len(got.Tasks[0].Sessions) != 1 {
		t.Errorf("sessions lost in round trip: %+v", got.Tasks[0])
	}
	if len(got.Projects) != 1 || len(got.Notes) != 1 || len(got.Payments) != 1 {
		t.Error("collections lost in round trip")
	}
	if got.Version != models.StateVersion {
		t.Errorf("expected version %d, got %d", models.StateVersion, got.Version)
	}
}

func TestImportRejectsNewerVersion(t *testing.T) {
	blob := `{"version": 99, "tasks": []}`
	_, err := Import([]byte(blob), models.NewState())
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("expected newer-version error, got %v", err)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	for _, blob := range []string{"not json", `{"settings": {}}`, `{"version": 2}`} {
		if _, err := Import([]byte(blob), models.NewState()); err == nil {
			t.Errorf("expected error for %q", blob)
		}
	}
}

func TestImportLegacyNarrowShapePreservesOtherCollections(t *testing.T) {
	current := sampleState()

	legacy := `{
		"tasks": [{"id": "imported", "title": "from old export", "status": "planned", "priority": "low", "created_at": "2024-01-01T00:00:00Z"}],
		"settings": {"theme": "light"}
	}`

	got, err := Import([]byte(legacy), current)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// Tasks replaced wholesale
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "imported" {
		t.Errorf("expected replaced tasks, got %+v", got.Tasks)
	}
	// Settings merged onto the current ones
	if got.Settings.Theme != "light" {
		t.Errorf("expected merged theme, got %q", got.Settings.Theme)
	}
	// Everything else survives
	if len(got.Projects) != 1 || len(got.Notes) != 1 || len(got.Payments) != 1 {
		t.Error("expected current collections preserved on narrow import")
	}
}

func TestImportFailureLeavesCurrentUsable(t *testing.T) {
	current := sampleState()

	if _, err := Import([]byte(`{"tasks": null}`), current); err == nil {
		t.Fatal("expected error")
	}

	// A rejected import must not have touched the caller's state
	if len(current.Tasks) != 1 || current.Tasks[0].ID != "t1" {
		t.Errorf("rejected import mutated current state: %+v", current.Tasks)
	}
}

func TestImportUnversionedFullShape(t *testing.T) {
	legacy := `{
		"tasks": [],
		"projects": [{"id": "p9", "name": "legacy", "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"}]
	}`

	got, err := Import([]byte(legacy), sampleState())
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// An unversioned full blob replaces the state, it does not merge
	if len(got.Projects) != 1 || got.Projects[0].ID != "p9" {
		t.Errorf("expected replaced projects, got %+v", got.Projects)
	}
	if len(got.Payments) != 0 {
		t.Errorf("expected payments replaced away, got %+v", got.Payments)
	}
}
