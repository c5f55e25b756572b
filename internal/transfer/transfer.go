// Package transfer implements export and import of the full state tree.
// Export and import are symmetric: an export file is a complete versioned
// state blob and can be imported losslessly. The legacy narrow export shape
// (tasks + settings only) is still accepted on import for old backups.
package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/tempo/internal/constants"
	"github.com/julianstephens/tempo/internal/migration"
	"github.com/julianstephens/tempo/internal/models"
)

// ExportFileName returns the dated default export filename, e.g.
// "tempo-export-2025-01-10.json".
func ExportFileName(now time.Time) string {
	return constants.ExportFilePrefix + now.Format(constants.DateFormat) + ".json"
}

// Export writes the state tree as pretty-printed JSON to path.
func Export(state models.State, path string) error {
	state.Version = models.StateVersion
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Import parses an export file and returns the state tree that should
// replace the current one. The parse and shape check happen before any
// mutation, so a rejected import leaves the caller's state untouched:
//
//   - a versioned export replaces the whole state (older versions are
//     upgraded first)
//   - the legacy narrow shape {tasks, settings} replaces tasks and
//     shallow-merges settings, preserving every other collection of current
//   - anything else is rejected
func Import(data []byte, current models.State) (models.State, error) {
	var probe struct {
		Version  int             `json:"version"`
		Tasks    json.RawMessage `json:"tasks"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return models.State{}, fmt.Errorf("invalid import file: %w", err)
	}

	if probe.Version > models.StateVersion {
		return models.State{}, fmt.Errorf("import version %d is newer than supported version %d", probe.Version, models.StateVersion)
	}

	if probe.Version == models.StateVersion {
		var st models.State
		if err := json.Unmarshal(data, &st); err != nil {
			return models.State{}, fmt.Errorf("invalid import file: %w", err)
		}
		if st.Tasks == nil {
			return models.State{}, fmt.Errorf("invalid import file: missing tasks collection")
		}
		return st, nil
	}

	// Unversioned: distinguish the legacy narrow shape from an old full blob
	// by the presence of collections beyond tasks and settings.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return models.State{}, fmt.Errorf("invalid import file: %w", err)
	}
	if _, ok := keys["tasks"]; !ok {
		return models.State{}, fmt.Errorf("invalid import file: missing tasks collection")
	}

	if isNarrowShape(keys) {
		tasks := []models.Task{}
		if err := json.Unmarshal(keys["tasks"], &tasks); err != nil || tasks == nil {
			// nil after a successful unmarshal means the field was JSON null
			return models.State{}, fmt.Errorf("invalid import file: tasks is not an array")
		}

		out := current.Clone()
		out.Tasks = tasks
		if rawSettings, ok := keys["settings"]; ok {
			merged, err := migration.MergeSettings(out.Settings, rawSettings)
			if err != nil {
				return models.State{}, fmt.Errorf("invalid import file: bad settings: %w", err)
			}
			out.Settings = merged
		}
		return out, nil
	}

	return migration.UpgradeJSON(data)
}

func isNarrowShape(keys map[string]json.RawMessage) bool {
	for _, collection := range []string{"projects", "events", "notes", "payments", "expenses", "resources"} {
		if _, ok := keys[collection]; ok {
			return false
		}
	}
	return true
}
