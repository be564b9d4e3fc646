package moodlog

import (
	"testing"
	"time"

	"github.com/lunarhare/mindease/internal/models"
)

func entryOn(t time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        t.Format("20060102150405.000"),
		Mood:      models.MoodOkay,
		Timestamp: t.UnixMilli(),
	}
}

func TestCurrentStreak_EmptyLog(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	if got := CurrentStreak(nil, now); got != 0 {
		t.Errorf("expected 0 for empty log, got %d", got)
	}
}

func TestCurrentStreak_NoEntryTodayBreaksStreak(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	// Five consecutive days ending yesterday. Missing today means 0,
	// regardless of the run before it.
	var entries []models.MoodEntry
	for i := 1; i <= 5; i++ {
		entries = append(entries, entryOn(now.AddDate(0, 0, -i)))
	}

	if got := CurrentStreak(entries, now); got != 0 {
		t.Errorf("expected 0 when today is missing, got %d", got)
	}
}

func TestCurrentStreak_CountsConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	entries := []models.MoodEntry{
		entryOn(now),
		entryOn(now.AddDate(0, 0, -1)),
		entryOn(now.AddDate(0, 0, -2)),
		// Gap at -3 stops the walk.
		entryOn(now.AddDate(0, 0, -4)),
	}

	if got := CurrentStreak(entries, now); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestCurrentStreak_CapsAtSevenDays(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	// Today plus the preceding 10 consecutive days: the lookback cap means
	// the reported streak is exactly 7, not 11.
	var entries []models.MoodEntry
	for i := 0; i <= 10; i++ {
		entries = append(entries, entryOn(now.AddDate(0, 0, -i)))
	}

	if got := CurrentStreak(entries, now); got != 7 {
		t.Errorf("expected capped streak of 7, got %d", got)
	}
}

func TestCurrentStreak_MultipleEntriesSameDayCountOnce(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	entries := []models.MoodEntry{
		entryOn(now),
		entryOn(now.Add(-2 * time.Hour)),
		entryOn(now.Add(-5 * time.Hour)),
		entryOn(now.AddDate(0, 0, -1)),
	}

	if got := CurrentStreak(entries, now); got != 2 {
		t.Errorf("expected 2 (same-day entries collapse), got %d", got)
	}
}

func TestCurrentStreak_SingleEntryToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	entries := []models.MoodEntry{entryOn(now)}

	if got := CurrentStreak(entries, now); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}
