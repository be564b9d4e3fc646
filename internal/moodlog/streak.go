package moodlog

import (
	"time"

	"github.com/lunarhare/mindease/internal/constants"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/utils"
)

// CurrentStreak counts consecutive calendar days with at least one check-in,
// ending today. A missed check-in today breaks the streak immediately, even
// if yesterday was tracked. Multiple entries on one day count once.
//
// The walk is bounded by constants.StreakLookbackDays, so a genuine streak
// longer than 7 days is still reported as 7. Habit streaks elsewhere walk
// unbounded; keeping the cap here matches long-standing display behavior.
func CurrentStreak(entries []models.MoodEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[utils.DayKeyFromMillis(e.Timestamp)] = true
	}

	if !days[utils.DayKey(now)] {
		return 0
	}

	streak := 0
	for i := 0; i < constants.StreakLookbackDays; i++ {
		if !days[utils.DaysAgo(now, i)] {
			break
		}
		streak++
	}

	return streak
}

// Streak is the convenience form over the store's current log.
func (s *Store) Streak(now time.Time) (int, error) {
	entries, err := s.List()
	if err != nil {
		return 0, err
	}
	return CurrentStreak(entries, now), nil
}
