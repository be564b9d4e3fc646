package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/lunarhare/mindease/internal/content"
	"github.com/lunarhare/mindease/internal/models"
)

type CheckinCmd struct {
	Mood string `short:"m" help:"Mood to log (great|good|okay|down|anxious). Prompts interactively when omitted."`
	Note string `short:"n" help:"Optional reflection note."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	var mood models.Mood
	note := c.Note

	if c.Mood == "" {
		m, n, err := promptCheckin()
		if err != nil {
			return err
		}
		mood = m
		if note == "" {
			note = n
		}
	} else {
		m, err := parseMood(c.Mood)
		if err != nil {
			return err
		}
		mood = m
	}

	entry := ctx.Moods.NewEntry(mood, note, time.Now())
	if err := ctx.Moods.Save(entry); err != nil {
		return err
	}

	unlocked, err := ctx.Engine.Update(&entry)
	if err != nil {
		return err
	}

	streak, err := ctx.Moods.Streak(time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s %s\n", mood.Emoji(), mood.Label())
	if streak > 1 {
		fmt.Printf("You're on a %d-day streak. Keep it up!\n", streak)
	}

	announceUnlocks(unlocked)

	tip := content.RandomTip(mood)
	fmt.Printf("\n💡 Self-care tip: %s — %s\n", tip.Title, tip.Description)

	return nil
}

func promptCheckin() (models.Mood, string, error) {
	var mood models.Mood
	var note string

	options := make([]huh.Option[models.Mood], 0, len(models.AllMoods()))
	for _, m := range models.AllMoods() {
		options = append(options, huh.NewOption(m.Emoji()+" "+m.Label(), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&mood),
			huh.NewText().
				Title("What's on your mind? (optional)").
				Placeholder("Write a short reflection...").
				Value(&note),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return "", "", err
	}

	return mood, note, nil
}
