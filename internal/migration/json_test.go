package migration

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/julianstephens/tempo/internal/models"
)

func TestUpgradeJSONNarrowShape(t *testing.T) {
	legacy := `{
		"tasks": [{"id": "t1", "title": "old", "status": "planned", "priority": "low", "created_at": "2024-01-01T00:00:00Z"}],
		"settings": {"theme": "light", "week_start": "sunday"}
	}`

	st, err := UpgradeJSON([]byte(legacy))
	if err != nil {
		t.Fatalf("UpgradeJSON failed: %v", err)
	}

	if st.Version != models.StateVersion {
		t.Errorf("expected version %d, got %d", models.StateVersion, st.Version)
	}
	if len(st.Tasks) != 1 || st.Tasks[0].ID != "t1" {
		t.Errorf("tasks lost in upgrade: %+v", st.Tasks)
	}
	if st.Settings.Theme != "light" || st.Settings.WeekStart != "sunday" {
		t.Errorf("settings overlay lost: %+v", st.Settings)
	}
	// Fields absent from the legacy blob keep their defaults
	if st.Settings.DefaultView != "board" {
		t.Errorf("expected defaulted view, got %q", st.Settings.DefaultView)
	}
	// Collections the narrow shape never had come back empty, not nil
	if st.Projects == nil || st.Events == nil || st.Notes == nil {
		t.Error("expected empty collections, got nil")
	}
}

func TestUpgradeJSONFullUnversionedShape(t *testing.T) {
	legacy := `{
		"tasks": [],
		"projects": [{"id": "p1", "name": "site", "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"}],
		"notes": [{"id": "n1", "title": "idea", "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-01-01T00:00:00Z"}],
		"payments": [{"id": "m1", "project_id": "p1", "amount": 10, "currency": "EUR", "created_at": "2024-01-01T00:00:00Z"}]
	}`

	st, err := UpgradeJSON([]byte(legacy))
	if err != nil {
		t.Fatalf("UpgradeJSON failed: %v", err)
	}

	if len(st.Projects) != 1 || st.Projects[0].Name != "site" {
		t.Errorf("projects lost in upgrade: %+v", st.Projects)
	}
	if len(st.Notes) != 1 {
		t.Errorf("notes lost in upgrade: %+v", st.Notes)
	}
	if len(st.Payments) != 1 || st.Payments[0].Amount != 10 {
		t.Errorf("payments lost in upgrade: %+v", st.Payments)
	}
}

func TestUpgradeJSONRejectsUnknownShapes(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"no tasks key", `{"settings": {}}`},
		{"tasks is null", `{"tasks": null}`},
		{"tasks not an array", `{"tasks": {"a": 1}}`},
		{"not an object", `[1, 2, 3]`},
		{"garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UpgradeJSON([]byte(tt.blob)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestMergeSettingsOverlaysOnlyPresentFields(t *testing.T) {
	base := models.DefaultSettings()

	merged, err := MergeSettings(base, json.RawMessage(`{"theme": "light"}`))
	if err != nil {
		t.Fatalf("MergeSettings failed: %v", err)
	}

	if merged.Theme != "light" {
		t.Errorf("expected overlaid theme, got %q", merged.Theme)
	}
	if merged.DefaultView != base.DefaultView || merged.DayStart != base.DayStart {
		t.Errorf("expected absent fields preserved, got %+v", merged)
	}
	if !merged.Notifications {
		t.Error("expected notifications preserved")
	}
}

func TestMergeSettingsRejectsBadJSON(t *testing.T) {
	_, err := MergeSettings(models.DefaultSettings(), json.RawMessage(`"not an object"`))
	if err == nil || !strings.Contains(err.Error(), "cannot unmarshal") {
		t.Errorf("expected unmarshal error, got %v", err)
	}
}
