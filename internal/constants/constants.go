package constants

const (
	AppName           = "mindease"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/mindease/mindease.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage record keys. Each key maps to one serialized JSON value.
	MoodEntriesKey = "mood_entries"
	UserStatsKey   = "user_stats"

	// StreakLookbackDays bounds the mood streak walk. The calculator never
	// reports a streak longer than this, even when the log supports one.
	StreakLookbackDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mindease-"

	// Suggestion and prompt lists are always truncated to this many items.
	ContentLimit = 3
)
