package cli

import (
	"fmt"
	"time"

	"github.com/lunarhare/mindease/internal/content"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/utils"
)

type SuggestCmd struct {
	Mood string `short:"m" help:"Mood to tailor suggestions to. Defaults to the most recent check-in."`
}

func (c *SuggestCmd) Run(ctx *Context) error {
	entries, err := ctx.Moods.List()
	if err != nil {
		return err
	}

	var mood models.Mood
	if c.Mood != "" {
		mood, err = parseMood(c.Mood)
		if err != nil {
			return err
		}
	} else if len(entries) > 0 {
		mood = entries[0].Mood
	} else {
		mood = models.MoodOkay
	}

	suggestions := content.Suggestions(mood, entries, utils.TimeOfDayFor(time.Now()))
	if len(suggestions) == 0 {
		fmt.Println("No suggestions right now — you're doing great.")
		return nil
	}

	fmt.Printf("Suggestions for feeling %s:\n\n", mood.Label())
	for _, s := range suggestions {
		fmt.Printf("• %s (%s, %s)\n  %s\n", s.Title, s.Duration, s.Difficulty, s.Description)
	}

	return nil
}

type PromptsCmd struct {
	Category string `short:"c" help:"Prompt category (reflection|gratitude|goals|emotions)."`
	Mood     string `short:"m" help:"Mood to tailor prompts to. Defaults to the most recent check-in."`
}

func (c *PromptsCmd) Run(ctx *Context) error {
	category := content.PromptCategory(c.Category)
	if c.Category != "" && !category.IsValid() {
		return fmt.Errorf("invalid category %q (expected reflection|gratitude|goals|emotions)", c.Category)
	}

	var mood models.Mood
	if c.Mood != "" {
		m, err := parseMood(c.Mood)
		if err != nil {
			return err
		}
		mood = m
	} else {
		entries, err := ctx.Moods.List()
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			mood = entries[0].Mood
		}
	}

	prompts := content.JournalPrompts(mood, category)

	fmt.Println("Journal prompts:")
	for _, p := range prompts {
		fmt.Printf("  %s (%s)\n", p.Prompt, p.Category)
	}

	return nil
}
