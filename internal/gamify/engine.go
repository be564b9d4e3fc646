package gamify

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lunarhare/mindease/internal/constants"
	"github.com/lunarhare/mindease/internal/logger"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/moodlog"
	"github.com/lunarhare/mindease/internal/storage"
	"github.com/lunarhare/mindease/internal/utils"
)

// Engine owns the UserStats aggregate: cumulative counters, achievement
// unlocks, and habit streaks. Stats are loaded, recomputed from the mood
// log, and persisted whole on every mutating call. There is exactly one
// writer; the read-modify-write sequence is not atomic across calls.
type Engine struct {
	provider storage.Provider
	moods    *moodlog.Store

	// now is swapped out in tests to pin the calendar day.
	now func() time.Time
}

func NewEngine(provider storage.Provider, moods *moodlog.Store) *Engine {
	return &Engine{
		provider: provider,
		moods:    moods,
		now:      time.Now,
	}
}

// UserStats returns the persisted stats, initializing and persisting
// defaults on first call. An unparseable record is treated as absent.
func (e *Engine) UserStats() (*models.UserStats, error) {
	data, ok, err := e.provider.Get(constants.UserStatsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	if ok {
		var stats models.UserStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
		logger.Debug("user stats record unparseable, reinitializing defaults")
	}

	stats := &models.UserStats{
		FavoriteActivities: []string{},
		JoinedDate:         e.now().UnixMilli(),
		Achievements:       DefaultAchievements(),
		Habits:             DefaultHabits(),
	}

	if err := e.persist(stats); err != nil {
		return nil, err
	}

	return stats, nil
}

// Update recomputes all derived stats from the full mood log, evaluates
// locked achievements, and (when newEntry is non-nil) marks the daily-mood
// habit for today. It returns the achievements unlocked during this call.
//
// Unlocked achievements are never re-evaluated: progress freezes at unlock
// and IsUnlocked never reverts.
func (e *Engine) Update(newEntry *models.MoodEntry) ([]models.Achievement, error) {
	stats, err := e.UserStats()
	if err != nil {
		return nil, err
	}

	entries, err := e.moods.List()
	if err != nil {
		return nil, err
	}

	now := e.now()
	currentStreak := moodlog.CurrentStreak(entries, now)

	stats.TotalMoodEntries = len(entries)
	stats.CurrentStreak = currentStreak
	stats.LongestStreak = max(stats.LongestStreak, currentStreak)
	stats.TotalReflections = countReflections(entries)

	var newAchievements []models.Achievement
	for i := range stats.Achievements {
		ach := &stats.Achievements[i]
		if ach.IsUnlocked {
			continue
		}

		ach.Progress = achievementProgress(ach, stats, entries, currentStreak)

		if ach.Progress >= ach.Requirement {
			ach.IsUnlocked = true
			unlockedAt := now.UnixMilli()
			ach.UnlockedAt = &unlockedAt
			newAchievements = append(newAchievements, *ach)
			logger.Info("achievement unlocked", "id", ach.ID)
		}
	}

	if newEntry != nil {
		e.markDailyMood(stats, currentStreak, now)
	}

	if err := e.persist(stats); err != nil {
		return nil, err
	}

	return newAchievements, nil
}

// CompleteHabit records today's completion for the habit and recomputes its
// streak. Unknown ids are a silent no-op, as is a second completion on the
// same calendar day. Achievements are not re-evaluated on this path.
func (e *Engine) CompleteHabit(habitID string) error {
	stats, err := e.UserStats()
	if err != nil {
		return err
	}

	habit := stats.Habit(habitID)
	if habit == nil {
		logger.Debug("ignoring completion for unknown habit", "id", habitID)
		return nil
	}

	now := e.now()
	today := utils.DayKey(now)
	if !habit.CompletedOn(today) {
		habit.CompletedDates = append(habit.CompletedDates, today)
		habit.TotalCompletions++

		// Unlike the mood streak, this walk has no lookback cap.
		habit.CurrentStreak = habitStreak(habit.CompletedDates, now)
		habit.BestStreak = max(habit.BestStreak, habit.CurrentStreak)
	}

	return e.persist(stats)
}

func (e *Engine) persist(stats *models.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to serialize user stats: %w", err)
	}
	if err := e.provider.Put(constants.UserStatsKey, data); err != nil {
		return fmt.Errorf("failed to persist user stats: %w", err)
	}
	return nil
}

// markDailyMood stamps the daily-mood habit for today. Idempotent per
// calendar day; the habit's streak mirrors the mood streak value.
func (e *Engine) markDailyMood(stats *models.UserStats, currentStreak int, now time.Time) {
	habit := stats.Habit(HabitDailyMood)
	if habit == nil {
		return
	}

	today := utils.DayKey(now)
	if habit.CompletedOn(today) {
		return
	}

	habit.CompletedDates = append(habit.CompletedDates, today)
	habit.TotalCompletions++
	habit.CurrentStreak = currentStreak
	habit.BestStreak = max(habit.BestStreak, currentStreak)
}

func achievementProgress(ach *models.Achievement, stats *models.UserStats, entries []models.MoodEntry, currentStreak int) int {
	switch ach.Type {
	case models.AchievementMood:
		if ach.ID == AchFirstCheckin {
			return min(stats.TotalMoodEntries, ach.Requirement)
		}
		return countPositive(entries)
	case models.AchievementStreak:
		return currentStreak
	case models.AchievementConsistency:
		return stats.TotalMoodEntries
	case models.AchievementReflection:
		return stats.TotalReflections
	default:
		return 0
	}
}

func countReflections(entries []models.MoodEntry) int {
	count := 0
	for _, e := range entries {
		if strings.TrimSpace(e.Note) != "" {
			count++
		}
	}
	return count
}

func countPositive(entries []models.MoodEntry) int {
	count := 0
	for _, e := range entries {
		if e.Mood.IsPositive() {
			count++
		}
	}
	return count
}

// habitStreak counts consecutive completed calendar days ending today.
func habitStreak(completedDates []string, now time.Time) int {
	days := make(map[string]bool, len(completedDates))
	for _, d := range completedDates {
		days[d] = true
	}

	streak := 0
	for i := 0; ; i++ {
		if !days[utils.DaysAgo(now, i)] {
			break
		}
		streak++
	}

	return streak
}
