package content

import (
	"github.com/lunarhare/mindease/internal/constants"
	"github.com/lunarhare/mindease/internal/models"
)

// PromptCategory groups journal prompts.
type PromptCategory string

const (
	PromptReflection PromptCategory = "reflection"
	PromptGratitude  PromptCategory = "gratitude"
	PromptGoals      PromptCategory = "goals"
	PromptEmotions   PromptCategory = "emotions"
)

// IsValid reports whether c names a known category.
func (c PromptCategory) IsValid() bool {
	switch c {
	case PromptReflection, PromptGratitude, PromptGoals, PromptEmotions:
		return true
	default:
		return false
	}
}

// Prompt is one journal prompt. Mood is set when the prompt targets a
// specific mood.
type Prompt struct {
	ID       string
	Prompt   string
	Category PromptCategory
	Mood     models.Mood
}

var journalPrompts = []Prompt{
	{ID: "1", Prompt: "What challenged me today, and how did I handle it?", Category: PromptReflection},
	{ID: "2", Prompt: "What am I learning about myself lately?", Category: PromptReflection},
	{ID: "3", Prompt: "How have I grown in the past week?", Category: PromptReflection},

	{ID: "4", Prompt: "What small moment brought me joy today?", Category: PromptGratitude},
	{ID: "5", Prompt: "Who am I grateful for and why?", Category: PromptGratitude},
	{ID: "6", Prompt: "What part of my daily routine am I most thankful for?", Category: PromptGratitude},

	{ID: "7", Prompt: "What small step can I take tomorrow toward my goals?", Category: PromptGoals},
	{ID: "8", Prompt: "What would I do if I knew I couldn't fail?", Category: PromptGoals},
	{ID: "9", Prompt: "How can I be kinder to myself this week?", Category: PromptGoals},

	{ID: "10", Prompt: "What emotions am I feeling right now, and where do I feel them in my body?", Category: PromptEmotions, Mood: models.MoodAnxious},
	{ID: "11", Prompt: "What would I tell a friend who was feeling the way I feel right now?", Category: PromptEmotions, Mood: models.MoodDown},
	{ID: "12", Prompt: "What activities make me feel most like myself?", Category: PromptEmotions},
}

// JournalPrompts returns prompts for the mood and optional category (empty
// category means all). Mood-specific matches win outright when present;
// either way the result is capped to constants.ContentLimit.
func JournalPrompts(mood models.Mood, category PromptCategory) []Prompt {
	filtered := journalPrompts
	if category != "" {
		filtered = nil
		for _, p := range journalPrompts {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
	}

	if mood != "" {
		var moodSpecific []Prompt
		for _, p := range filtered {
			if p.Mood == mood {
				moodSpecific = append(moodSpecific, p)
			}
		}
		if len(moodSpecific) > 0 {
			filtered = moodSpecific
		}
	}

	if len(filtered) > constants.ContentLimit {
		filtered = filtered[:constants.ContentLimit]
	}

	return filtered
}
