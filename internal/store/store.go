// Package store is the single source of truth for tempo's application data.
// A Store wraps a storage.Provider and owns id generation, timestamping,
// patch merging, the time-tracking protocol, and cross-entity cleanup. It is
// an explicitly constructed container: callers receive one by injection and
// there is no package-level instance.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tempo/internal/constants"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/storage"
)

// Store coordinates CRUD, derived queries, and the timer protocol over a
// persistence provider. Not safe for concurrent use; tempo runs one
// operation at a time.
type Store struct {
	provider storage.Provider

	// now is the clock used for timestamps and timer arithmetic,
	// overridable in tests.
	now func() time.Time
}

func New(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		now:      time.Now,
	}
}

// Provider exposes the underlying persistence backend for lifecycle and
// bulk-state operations (init, load, export, import).
func (s *Store) Provider() storage.Provider {
	return s.provider
}

func (s *Store) newID() string {
	return uuid.New().String()
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Store) clock() string {
	return s.now().Format(constants.TimeFormat)
}

func (s *Store) today() string {
	return s.now().Format(constants.DateFormat)
}

// Settings returns the application settings record.
func (s *Store) Settings() (models.Settings, error) {
	return s.provider.GetSettings()
}

// SettingsPatch is a shallow-merge patch for the settings singleton. Nil
// fields keep their prior values. No range validation is performed here.
type SettingsPatch struct {
	DefaultView   *string
	Theme         *string
	Notifications *bool
	WeekStart     *string
	DayStart      *string
	DayEnd        *string
}

// UpdateSettings overlays the patch onto the current settings and persists
// the result.
func (s *Store) UpdateSettings(patch SettingsPatch) (models.Settings, error) {
	settings, err := s.provider.GetSettings()
	if err != nil {
		return models.Settings{}, err
	}

	if patch.DefaultView != nil {
		settings.DefaultView = *patch.DefaultView
	}
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		settings.Notifications = *patch.Notifications
	}
	if patch.WeekStart != nil {
		settings.WeekStart = *patch.WeekStart
	}
	if patch.DayStart != nil {
		settings.DayStart = *patch.DayStart
	}
	if patch.DayEnd != nil {
		settings.DayEnd = *patch.DayEnd
	}

	if err := s.provider.SaveSettings(settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
