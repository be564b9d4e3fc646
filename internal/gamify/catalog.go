package gamify

import "github.com/lunarhare/mindease/internal/models"

// Achievement and habit ids. The catalogs are fixed; user progress is keyed
// by these ids.
const (
	AchFirstCheckin        = "first-checkin"
	AchWeekWarrior         = "week-warrior"
	AchMindfulMonth        = "mindful-month"
	AchReflectionMaster    = "reflection-master"
	AchPositivitySeeker    = "positivity-seeker"
	AchConsistencyChampion = "consistency-champion"

	HabitDailyMood        = "daily-mood"
	HabitGratitude        = "gratitude-practice"
	HabitMindfulBreathing = "mindful-breathing"
)

// DefaultAchievements returns the fixed 6-item achievement catalog at zero
// progress. Order is stable; display code relies on it.
func DefaultAchievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:          AchFirstCheckin,
			Title:       "First Steps",
			Description: "Complete your first mood check-in",
			Icon:        "🌱",
			Type:        models.AchievementMood,
			Requirement: 1,
		},
		{
			ID:          AchWeekWarrior,
			Title:       "Week Warrior",
			Description: "Maintain a 7-day mood tracking streak",
			Icon:        "🏆",
			Type:        models.AchievementStreak,
			Requirement: 7,
		},
		{
			ID:          AchMindfulMonth,
			Title:       "Mindful Month",
			Description: "Track your mood for 30 days",
			Icon:        "🧘",
			Type:        models.AchievementConsistency,
			Requirement: 30,
		},
		{
			ID:          AchReflectionMaster,
			Title:       "Reflection Master",
			Description: "Add notes to 10 mood entries",
			Icon:        "✍️",
			Type:        models.AchievementReflection,
			Requirement: 10,
		},
		{
			ID:          AchPositivitySeeker,
			Title:       "Positivity Seeker",
			Description: "Log 5 \"Great\" or \"Good\" moods",
			Icon:        "☀️",
			Type:        models.AchievementMood,
			Requirement: 5,
		},
		{
			ID:          AchConsistencyChampion,
			Title:       "Consistency Champion",
			Description: "Check in for 14 consecutive days",
			Icon:        "💪",
			Type:        models.AchievementStreak,
			Requirement: 14,
		},
	}
}

// DefaultHabits returns the fixed 3-item habit catalog with no completions.
func DefaultHabits() []models.HabitTracker {
	return []models.HabitTracker{
		{
			ID:          HabitDailyMood,
			Name:        "Daily Mood Check-in",
			Icon:        "😊",
			Description: "Track your mood every day",
			Frequency:   models.HabitDaily,
		},
		{
			ID:          HabitGratitude,
			Name:        "Gratitude Practice",
			Icon:        "🙏",
			Description: "Practice gratitude regularly",
			Frequency:   models.HabitDaily,
		},
		{
			ID:          HabitMindfulBreathing,
			Name:        "Mindful Breathing",
			Icon:        "🌬️",
			Description: "Take time for breathing exercises",
			Frequency:   models.HabitDaily,
		},
	}
}
