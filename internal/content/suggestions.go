package content

import (
	"math/rand"

	"github.com/lunarhare/mindease/internal/constants"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/utils"
)

// SuggestionType categorizes personalized suggestions.
type SuggestionType string

const (
	SuggestionActivity      SuggestionType = "activity"
	SuggestionJournalPrompt SuggestionType = "journal_prompt"
	SuggestionBreathing     SuggestionType = "breathing"
	SuggestionMindfulness   SuggestionType = "mindfulness"
)

// Suggestion is a ranked self-care recommendation.
type Suggestion struct {
	ID          string
	Type        SuggestionType
	Title       string
	Description string
	Duration    string
	Difficulty  string
	Tags        []string
}

// Suggestions assembles recommendations for the current mood, recent entry
// pattern, and time of day. Mood-specific items rank first, then time-based,
// then pattern-based; the result is capped to constants.ContentLimit.
func Suggestions(mood models.Mood, recent []models.MoodEntry, timeOfDay utils.TimeOfDay) []Suggestion {
	var suggestions []Suggestion

	if mood == models.MoodAnxious {
		suggestions = append(suggestions,
			Suggestion{
				ID:          "breathing-4-7-8",
				Type:        SuggestionBreathing,
				Title:       "4-7-8 Breathing Exercise",
				Description: "A proven technique to calm anxiety. Inhale for 4, hold for 7, exhale for 8.",
				Duration:    "5 minutes",
				Difficulty:  "easy",
				Tags:        []string{"anxiety", "breathing", "quick"},
			},
			Suggestion{
				ID:          "progressive-relaxation",
				Type:        SuggestionActivity,
				Title:       "Progressive Muscle Relaxation",
				Description: "Tense and release each muscle group to reduce physical anxiety.",
				Duration:    "15 minutes",
				Difficulty:  "medium",
				Tags:        []string{"anxiety", "relaxation", "body"},
			},
		)
	}

	if mood == models.MoodDown {
		suggestions = append(suggestions,
			Suggestion{
				ID:          "gratitude-practice",
				Type:        SuggestionActivity,
				Title:       "Three Good Things",
				Description: "Write down three things that went well today and why they were meaningful.",
				Duration:    "10 minutes",
				Difficulty:  "easy",
				Tags:        []string{"gratitude", "reflection", "positive"},
			},
			Suggestion{
				ID:          "gentle-movement",
				Type:        SuggestionActivity,
				Title:       "Gentle Movement",
				Description: "Take a slow walk or do some light stretching to boost your mood.",
				Duration:    "10-20 minutes",
				Difficulty:  "easy",
				Tags:        []string{"movement", "mood-boost", "gentle"},
			},
		)
	}

	if timeOfDay == utils.Morning {
		suggestions = append(suggestions, Suggestion{
			ID:          "morning-intention",
			Type:        SuggestionMindfulness,
			Title:       "Set Morning Intention",
			Description: "Take a moment to set a positive intention for your day ahead.",
			Duration:    "3 minutes",
			Difficulty:  "easy",
			Tags:        []string{"morning", "intention", "mindfulness"},
		})
	}

	if timeOfDay == utils.Evening {
		suggestions = append(suggestions, Suggestion{
			ID:          "evening-reflection",
			Type:        SuggestionJournalPrompt,
			Title:       "Evening Reflection",
			Description: "Reflect on your day and acknowledge one thing you did well.",
			Duration:    "10 minutes",
			Difficulty:  "easy",
			Tags:        []string{"evening", "reflection", "self-compassion"},
		})
	}

	if hasDifficultStretch(recent) {
		suggestions = append(suggestions, Suggestion{
			ID:          "self-compassion",
			Type:        SuggestionMindfulness,
			Title:       "Self-Compassion Break",
			Description: "Practice being kind to yourself during this difficult time.",
			Duration:    "8 minutes",
			Difficulty:  "medium",
			Tags:        []string{"self-compassion", "difficult-times", "kindness"},
		})
	}

	if len(suggestions) > constants.ContentLimit {
		suggestions = suggestions[:constants.ContentLimit]
	}

	return suggestions
}

// hasDifficultStretch reports whether the three most recent entries are all
// anxious or down.
func hasDifficultStretch(recent []models.MoodEntry) bool {
	if len(recent) < 3 {
		return false
	}
	for _, e := range recent[:3] {
		if e.Mood != models.MoodAnxious && e.Mood != models.MoodDown {
			return false
		}
	}
	return true
}

// Tip is a short self-care suggestion shown after a check-in.
type Tip struct {
	ID          string
	Title       string
	Description string
	Mood        models.Mood // empty when the tip applies to any mood
}

var selfCareTips = []Tip{
	{ID: "1", Title: "Take Deep Breaths", Description: "Try the 4-7-8 breathing technique: inhale for 4, hold for 7, exhale for 8.", Mood: models.MoodAnxious},
	{ID: "2", Title: "Practice Gratitude", Description: "Write down 3 things you're grateful for today, no matter how small.", Mood: models.MoodDown},
	{ID: "3", Title: "Go for a Walk", Description: "A 10-minute walk outside can boost your mood and energy."},
	{ID: "4", Title: "Listen to Music", Description: "Put on your favorite song and let yourself feel the rhythm."},
	{ID: "5", Title: "Drink Water", Description: "Stay hydrated! Your body and mind will thank you."},
	{ID: "6", Title: "Text a Friend", Description: "Reach out to someone you care about. Connection heals."},
	{ID: "7", Title: "Stretch Your Body", Description: "Do some gentle stretches to release tension and feel more relaxed."},
	{ID: "8", Title: "Write in a Journal", Description: "Express your thoughts and feelings on paper. It can be very therapeutic."},
	{ID: "9", Title: "Take a Warm Shower", Description: "Let the warm water wash away stress and help you feel refreshed."},
	{ID: "10", Title: "Practice Self-Compassion", Description: "Be kind to yourself today. You're doing the best you can."},
}

// SelfCareTips returns tips matching the mood, or the full catalog when no
// mood-specific tips exist.
func SelfCareTips(mood models.Mood) []Tip {
	var matched []Tip
	for _, t := range selfCareTips {
		if t.Mood == mood {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		return selfCareTips
	}
	return matched
}

// RandomTip picks one tip for the mood.
func RandomTip(mood models.Mood) Tip {
	tips := SelfCareTips(mood)
	return tips[rand.Intn(len(tips))]
}
