package gamify

import (
	"testing"
	"time"

	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/moodlog"
	"github.com/lunarhare/mindease/internal/storage"
)

func newTestEngine(t *testing.T) (*Engine, *moodlog.Store) {
	t.Helper()
	provider := storage.NewMemoryStore()
	moods := moodlog.NewStore(provider)
	engine := NewEngine(provider, moods)
	engine.now = func() time.Time {
		return time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	}
	return engine, moods
}

func setNow(e *Engine, t time.Time) {
	e.now = func() time.Time { return t }
}

func saveEntry(t *testing.T, moods *moodlog.Store, mood models.Mood, note string, at time.Time) models.MoodEntry {
	t.Helper()
	entry := moods.NewEntry(mood, note, at)
	if err := moods.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return entry
}

func findAchievement(t *testing.T, stats *models.UserStats, id string) *models.Achievement {
	t.Helper()
	for i := range stats.Achievements {
		if stats.Achievements[i].ID == id {
			return &stats.Achievements[i]
		}
	}
	t.Fatalf("achievement %s not in catalog", id)
	return nil
}

func TestUserStats_InitializesDefaults(t *testing.T) {
	engine, _ := newTestEngine(t)

	stats, err := engine.UserStats()
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}

	if stats.TotalMoodEntries != 0 || stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Error("expected zeroed counters on first init")
	}
	if stats.JoinedDate == 0 {
		t.Error("expected joinedDate to be set")
	}
	if len(stats.Achievements) != 6 {
		t.Fatalf("expected 6 achievements, got %d", len(stats.Achievements))
	}
	for _, a := range stats.Achievements {
		if a.IsUnlocked || a.Progress != 0 {
			t.Errorf("achievement %s should start locked at zero progress", a.ID)
		}
	}
	if len(stats.Habits) != 3 {
		t.Fatalf("expected 3 habits, got %d", len(stats.Habits))
	}
}

func TestUserStats_JoinedDateSurvivesReload(t *testing.T) {
	engine, _ := newTestEngine(t)

	first, err := engine.UserStats()
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}

	setNow(engine, time.Date(2025, 4, 1, 9, 0, 0, 0, time.Local))
	second, err := engine.UserStats()
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}

	if second.JoinedDate != first.JoinedDate {
		t.Error("joinedDate must be set once and persist")
	}
}

func TestUserStats_CorruptRecordReinitializes(t *testing.T) {
	provider := storage.NewMemoryStore()
	moods := moodlog.NewStore(provider)
	engine := NewEngine(provider, moods)

	if err := provider.Put("user_stats", []byte("%%%")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	stats, err := engine.UserStats()
	if err != nil {
		t.Fatalf("UserStats should silently recover from corrupt data: %v", err)
	}
	if len(stats.Achievements) != 6 {
		t.Error("expected fresh defaults after corrupt record")
	}
}

func TestUpdate_FirstCheckinScenario(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	entry := saveEntry(t, moods, models.MoodGreat, "", now)

	unlocked, err := engine.Update(&entry)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(unlocked) != 1 || unlocked[0].ID != AchFirstCheckin {
		t.Fatalf("expected exactly first-checkin to unlock, got %v", unlocked)
	}
	if unlocked[0].UnlockedAt == nil {
		t.Error("unlocked achievement must carry unlockedAt")
	}

	stats, err := engine.UserStats()
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}

	if stats.TotalMoodEntries != 1 || stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Errorf("unexpected counters: total=%d streak=%d longest=%d",
			stats.TotalMoodEntries, stats.CurrentStreak, stats.LongestStreak)
	}

	habit := stats.Habit(HabitDailyMood)
	if habit.TotalCompletions != 1 || habit.CurrentStreak != 1 {
		t.Errorf("daily-mood habit: completions=%d streak=%d, want 1/1",
			habit.TotalCompletions, habit.CurrentStreak)
	}
}

func TestUpdate_AchievementsAreMonotone(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	entry := saveEntry(t, moods, models.MoodGreat, "", now)
	if _, err := engine.Update(&entry); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stats, _ := engine.UserStats()
	before := *findAchievement(t, stats, AchFirstCheckin)
	if !before.IsUnlocked {
		t.Fatal("first-checkin should be unlocked")
	}

	// Further updates must not report it again nor touch its fields.
	setNow(engine, now.Add(time.Hour))
	unlocked, err := engine.Update(nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	for _, a := range unlocked {
		if a.ID == AchFirstCheckin {
			t.Error("already-unlocked achievement reported again")
		}
	}

	stats, _ = engine.UserStats()
	after := *findAchievement(t, stats, AchFirstCheckin)
	if !after.IsUnlocked {
		t.Error("unlock must never revert")
	}
	if *after.UnlockedAt != *before.UnlockedAt {
		t.Error("unlockedAt changed after unlock")
	}
	if after.Progress != before.Progress {
		t.Error("progress must freeze after unlock")
	}
}

func TestUpdate_ReflectionMasterUnlocksOnTenth(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	// Nine reflections are not enough.
	for i := 0; i < 9; i++ {
		saveEntry(t, moods, models.MoodOkay, "a note", now.AddDate(0, 0, -i-1))
	}
	unlocked, err := engine.Update(nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	for _, a := range unlocked {
		if a.ID == AchReflectionMaster {
			t.Fatal("reflection-master unlocked too early")
		}
	}

	stats, _ := engine.UserStats()
	if stats.TotalReflections != 9 {
		t.Fatalf("expected 9 reflections, got %d", stats.TotalReflections)
	}

	// The tenth qualifying entry unlocks it, exactly once.
	saveEntry(t, moods, models.MoodOkay, "  tenth note  ", now)
	unlocked, err = engine.Update(nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found := false
	for _, a := range unlocked {
		if a.ID == AchReflectionMaster {
			found = true
		}
	}
	if !found {
		t.Error("expected reflection-master to unlock on the tenth reflection")
	}
}

func TestUpdate_WhitespaceNotesAreNotReflections(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	saveEntry(t, moods, models.MoodOkay, "   ", now)
	saveEntry(t, moods, models.MoodOkay, "\t\n", now.Add(time.Minute))

	if _, err := engine.Update(nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stats, _ := engine.UserStats()
	if stats.TotalReflections != 0 {
		t.Errorf("whitespace-only notes counted as reflections: %d", stats.TotalReflections)
	}
}

func TestUpdate_PositivitySeekerCountsGreatAndGood(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	saveEntry(t, moods, models.MoodGreat, "", now)
	saveEntry(t, moods, models.MoodGood, "", now.Add(time.Minute))
	saveEntry(t, moods, models.MoodDown, "", now.Add(2*time.Minute))
	saveEntry(t, moods, models.MoodGood, "", now.Add(3*time.Minute))

	if _, err := engine.Update(nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stats, _ := engine.UserStats()
	ach := findAchievement(t, stats, AchPositivitySeeker)
	if ach.Progress != 3 {
		t.Errorf("expected positivity progress 3, got %d", ach.Progress)
	}
	if ach.IsUnlocked {
		t.Error("positivity-seeker needs 5; should still be locked")
	}
}

func TestUpdate_LongestStreakRatchets(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	// Three-day streak ending today.
	for i := 0; i < 3; i++ {
		saveEntry(t, moods, models.MoodOkay, "", now.AddDate(0, 0, -i))
	}
	if _, err := engine.Update(nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stats, _ := engine.UserStats()
	if stats.LongestStreak != 3 {
		t.Fatalf("expected longest streak 3, got %d", stats.LongestStreak)
	}

	// Two days later the current streak collapses to 0; longest must not.
	setNow(engine, now.AddDate(0, 0, 2))
	if _, err := engine.Update(nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stats, _ = engine.UserStats()
	if stats.CurrentStreak != 0 {
		t.Errorf("expected current streak 0 after gap, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("longest streak must ratchet, got %d", stats.LongestStreak)
	}
}

func TestUpdate_SameDaySavesAppendButHabitIsIdempotent(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	first := saveEntry(t, moods, models.MoodOkay, "", now)
	if _, err := engine.Update(&first); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	second := saveEntry(t, moods, models.MoodGreat, "", now.Add(time.Hour))
	if _, err := engine.Update(&second); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stats, _ := engine.UserStats()
	if stats.TotalMoodEntries != 2 {
		t.Errorf("each save appends: expected 2 entries, got %d", stats.TotalMoodEntries)
	}

	habit := stats.Habit(HabitDailyMood)
	if len(habit.CompletedDates) != 1 {
		t.Errorf("expected one completed date for today, got %d", len(habit.CompletedDates))
	}
	if habit.TotalCompletions != 1 {
		t.Errorf("second same-day check-in must not bump completions: got %d", habit.TotalCompletions)
	}
}

func TestCompleteHabit_UnknownIDIsSilentNoop(t *testing.T) {
	engine, _ := newTestEngine(t)

	if err := engine.CompleteHabit("does-not-exist"); err != nil {
		t.Fatalf("unknown habit id must be a silent no-op, got %v", err)
	}

	stats, _ := engine.UserStats()
	for _, h := range stats.Habits {
		if h.TotalCompletions != 0 {
			t.Errorf("habit %s changed by unknown-id completion", h.ID)
		}
	}
}

func TestCompleteHabit_StreakAndRatchet(t *testing.T) {
	engine, _ := newTestEngine(t)
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

	// Three consecutive days.
	for i := 0; i < 3; i++ {
		setNow(engine, day.AddDate(0, 0, i))
		if err := engine.CompleteHabit(HabitGratitude); err != nil {
			t.Fatalf("CompleteHabit failed: %v", err)
		}
	}

	stats, _ := engine.UserStats()
	habit := stats.Habit(HabitGratitude)
	if habit.CurrentStreak != 3 || habit.BestStreak != 3 {
		t.Fatalf("expected streak 3/3, got %d/%d", habit.CurrentStreak, habit.BestStreak)
	}
	if habit.TotalCompletions != 3 {
		t.Fatalf("expected 3 completions, got %d", habit.TotalCompletions)
	}

	// Miss day 3, complete on day 4: streak resets, best stays.
	setNow(engine, day.AddDate(0, 0, 4))
	if err := engine.CompleteHabit(HabitGratitude); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	stats, _ = engine.UserStats()
	habit = stats.Habit(HabitGratitude)
	if habit.CurrentStreak != 1 {
		t.Errorf("expected streak reset to 1, got %d", habit.CurrentStreak)
	}
	if habit.BestStreak != 3 {
		t.Errorf("best streak must ratchet at 3, got %d", habit.BestStreak)
	}
	if habit.TotalCompletions != 4 {
		t.Errorf("expected 4 completions, got %d", habit.TotalCompletions)
	}
}

func TestCompleteHabit_SameDayIsIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t)

	if err := engine.CompleteHabit(HabitMindfulBreathing); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}
	if err := engine.CompleteHabit(HabitMindfulBreathing); err != nil {
		t.Fatalf("CompleteHabit failed: %v", err)
	}

	stats, _ := engine.UserStats()
	habit := stats.Habit(HabitMindfulBreathing)
	if habit.TotalCompletions != 1 {
		t.Errorf("same-day completion must be idempotent, got %d", habit.TotalCompletions)
	}
	if len(habit.CompletedDates) != 1 {
		t.Errorf("expected one completed date, got %d", len(habit.CompletedDates))
	}
}

func TestCompleteHabit_StreakIsUnbounded(t *testing.T) {
	engine, _ := newTestEngine(t)
	day := time.Date(2025, 2, 1, 8, 0, 0, 0, time.Local)

	// Twelve consecutive days: unlike the mood streak, no 7-day cap here.
	for i := 0; i < 12; i++ {
		setNow(engine, day.AddDate(0, 0, i))
		if err := engine.CompleteHabit(HabitGratitude); err != nil {
			t.Fatalf("CompleteHabit failed: %v", err)
		}
	}

	stats, _ := engine.UserStats()
	habit := stats.Habit(HabitGratitude)
	if habit.CurrentStreak != 12 {
		t.Errorf("habit streak must be unbounded: expected 12, got %d", habit.CurrentStreak)
	}
}

func TestUpdate_WeekWarriorUnlocksAtCap(t *testing.T) {
	engine, moods := newTestEngine(t)
	now := engine.now()

	// Seven consecutive days ending today unlock the 7-day streak badge.
	for i := 0; i < 7; i++ {
		saveEntry(t, moods, models.MoodOkay, "", now.AddDate(0, 0, -i))
	}

	unlocked, err := engine.Update(nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found := false
	for _, a := range unlocked {
		if a.ID == AchWeekWarrior {
			found = true
		}
	}
	if !found {
		t.Error("expected week-warrior to unlock at a 7-day streak")
	}

	// consistency-champion needs 14 consecutive days, but the streak
	// calculator caps at 7, so it can never unlock through this path.
	stats, _ := engine.UserStats()
	champion := findAchievement(t, stats, AchConsistencyChampion)
	if champion.IsUnlocked {
		t.Error("consistency-champion cannot unlock while the streak caps at 7")
	}
	if champion.Progress != 7 {
		t.Errorf("expected champion progress pinned at 7, got %d", champion.Progress)
	}
}
