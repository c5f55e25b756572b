package migration

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/tempo/internal/models"
)

// UpgradeJSON upgrades an older persisted JSON blob to the current state
// version. Two legacy shapes exist:
//
//   - version 1: the full state tree written without a version field
//   - version 0: the narrow export shape {tasks, settings} produced by the
//     original export feature, which dropped every other collection
//
// Both carry a "tasks" array; anything without one is rejected rather than
// silently replaced with an empty state.
func UpgradeJSON(data []byte) (models.State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.State{}, fmt.Errorf("unparsable state: %w", err)
	}

	rawTasks, ok := raw["tasks"]
	if !ok {
		return models.State{}, fmt.Errorf("unrecognized state shape: missing tasks collection")
	}

	st := models.NewState()
	if err := json.Unmarshal(rawTasks, &st.Tasks); err != nil {
		return models.State{}, fmt.Errorf("invalid tasks collection: %w", err)
	}
	if st.Tasks == nil {
		return models.State{}, fmt.Errorf("unrecognized state shape: tasks is not an array")
	}

	if rawSettings, ok := raw["settings"]; ok {
		merged, err := MergeSettings(st.Settings, rawSettings)
		if err != nil {
			return models.State{}, fmt.Errorf("invalid settings: %w", err)
		}
		st.Settings = merged
	}

	// Optional collections of the unversioned full shape
	collections := map[string]any{
		"projects":  &st.Projects,
		"events":    &st.Events,
		"notes":     &st.Notes,
		"payments":  &st.Payments,
		"expenses":  &st.Expenses,
		"resources": &st.Resources,
	}
	for key, dst := range collections {
		if rawColl, ok := raw[key]; ok {
			if err := json.Unmarshal(rawColl, dst); err != nil {
				return models.State{}, fmt.Errorf("invalid %s collection: %w", key, err)
			}
		}
	}

	st.Version = models.StateVersion
	return st, nil
}

// MergeSettings overlays only the fields present in the raw JSON object onto
// base, leaving absent fields at their prior values.
func MergeSettings(base models.Settings, raw json.RawMessage) (models.Settings, error) {
	baseJSON, err := json.Marshal(base)
	if err != nil {
		return models.Settings{}, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(baseJSON, &merged); err != nil {
		return models.Settings{}, err
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return models.Settings{}, err
	}
	for k, v := range overlay {
		merged[k] = v
	}

	mergedJSON, err := json.Marshal(merged)
	if err != nil {
		return models.Settings{}, err
	}

	var out models.Settings
	if err := json.Unmarshal(mergedJSON, &out); err != nil {
		return models.Settings{}, err
	}
	return out, nil
}
