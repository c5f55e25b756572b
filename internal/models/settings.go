package models

import "github.com/julianstephens/tempo/internal/constants"

// Settings represents application-wide settings
type Settings struct {
	DefaultView   string `json:"default_view"`  // board|calendar|list
	Theme         string `json:"theme"`         // dark|light
	Notifications bool   `json:"notifications"` // whether notifications are enabled
	WeekStart     string `json:"week_start"`    // monday|sunday
	DayStart      string `json:"day_start"`     // first visible hour of the day grid, e.g. "07:00"
	DayEnd        string `json:"day_end"`       // last visible hour of the day grid, e.g. "22:00"
}

// DefaultSettings returns the settings applied to a fresh store.
func DefaultSettings() Settings {
	return Settings{
		DefaultView:   constants.DefaultView,
		Theme:         constants.DefaultTheme,
		Notifications: constants.DefaultNotifications,
		WeekStart:     constants.DefaultWeekStart,
		DayStart:      constants.DefaultDayStart,
		DayEnd:        constants.DefaultDayEnd,
	}
}
