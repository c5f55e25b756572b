package constants

// Default application settings, applied by 'tempo init' and whenever a
// stored settings record is missing.
const (
	DefaultView          = "board"
	DefaultTheme         = "dark"
	DefaultNotifications = true
	DefaultWeekStart     = "monday"
	DefaultDayStart      = "07:00"
	DefaultDayEnd        = "22:00"
)

// Recognized values for enumerated settings fields. The store itself does
// not validate these; the CLI layer does.
var (
	Views      = []string{"board", "calendar", "list"}
	Themes     = []string{"dark", "light"}
	WeekStarts = []string{"monday", "sunday"}
)
