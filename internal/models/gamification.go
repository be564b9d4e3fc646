package models

// AchievementType groups achievements by what their progress is derived from.
type AchievementType string

const (
	AchievementStreak      AchievementType = "streak"
	AchievementMood        AchievementType = "mood"
	AchievementReflection  AchievementType = "reflection"
	AchievementConsistency AchievementType = "consistency"
)

// Achievement is a badge with a fixed definition and per-user progress.
// Once unlocked it never reverts and its progress is frozen.
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Type        AchievementType `json:"type"`
	Requirement int             `json:"requirement"`
	IsUnlocked  bool            `json:"isUnlocked"`
	UnlockedAt  *int64          `json:"unlockedAt,omitempty"` // epoch milliseconds
	Progress    int             `json:"progress"`
}

// HabitFrequency is how often a habit is meant to be completed.
type HabitFrequency string

const (
	HabitDaily  HabitFrequency = "daily"
	HabitWeekly HabitFrequency = "weekly"
)

// HabitTracker tracks completions of one recurring practice.
// CompletedDates holds unique date strings (YYYY-MM-DD) and only grows.
// BestStreak ratchets independently of CurrentStreak, which may fall to 0.
type HabitTracker struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Icon             string         `json:"icon"`
	Description      string         `json:"description"`
	Frequency        HabitFrequency `json:"frequency"`
	CompletedDates   []string       `json:"completedDates"`
	CurrentStreak    int            `json:"currentStreak"`
	BestStreak       int            `json:"bestStreak"`
	TotalCompletions int            `json:"totalCompletions"`
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *HabitTracker) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// UserStats is the singleton per-user aggregate, created lazily on first
// read and read-modify-write persisted after every mutating operation.
type UserStats struct {
	TotalMoodEntries   int            `json:"totalMoodEntries"`
	CurrentStreak      int            `json:"currentStreak"`
	LongestStreak      int            `json:"longestStreak"`
	TotalReflections   int            `json:"totalReflections"`
	FavoriteActivities []string       `json:"favoriteActivities"`
	JoinedDate         int64          `json:"joinedDate"` // epoch milliseconds, set once
	Achievements       []Achievement  `json:"achievements"`
	Habits             []HabitTracker `json:"habits"`
}

// Habit returns the habit with the given id, or nil if not present.
func (s *UserStats) Habit(id string) *HabitTracker {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}
