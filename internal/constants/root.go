package constants

const (
	AppName           = "tempo"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/tempo/config.toml"
	DefaultDataPath   = "~/.config/tempo/tempo.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tempo-"

	// ExportFilePrefix is the prefix for export files; the current date and
	// ".json" are appended to it
	ExportFilePrefix = "tempo-export-"

	// KeyringSecretPrefix namespaces resource secrets within the OS keyring
	KeyringSecretPrefix = "resource-"
)
