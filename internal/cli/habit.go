package cli

import (
	"fmt"
	"time"

	"github.com/lunarhare/mindease/internal/utils"
)

type HabitCmd struct {
	List HabitListCmd `cmd:"" help:"List habits and their streaks." default:"1"`
	Done HabitDoneCmd `cmd:"" help:"Mark a habit completed for today."`
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	stats, err := ctx.Engine.UserStats()
	if err != nil {
		return err
	}

	today := utils.DayKey(time.Now())
	for _, h := range stats.Habits {
		marker := "○"
		if h.CompletedOn(today) {
			marker = "✓"
		}
		fmt.Printf("%s %s %-22s (%s)  streak %d, best %d, total %d\n",
			marker, h.Icon, h.Name, h.ID, h.CurrentStreak, h.BestStreak, h.TotalCompletions)
	}

	return nil
}

type HabitDoneCmd struct {
	ID string `arg:"" help:"Habit id (e.g. gratitude-practice)."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	stats, err := ctx.Engine.UserStats()
	if err != nil {
		return err
	}

	// Completing an unknown id is a silent no-op in the engine; give the
	// CLI user a hint instead of false confirmation.
	habit := stats.Habit(c.ID)
	if habit == nil {
		fmt.Printf("Unknown habit %q. Run 'mindease habit list' to see ids.\n", c.ID)
		return nil
	}

	if err := ctx.Engine.CompleteHabit(c.ID); err != nil {
		return err
	}

	stats, err = ctx.Engine.UserStats()
	if err != nil {
		return err
	}
	habit = stats.Habit(c.ID)

	fmt.Printf("%s %s completed for today. Streak: %d day(s), best %d.\n",
		habit.Icon, habit.Name, habit.CurrentStreak, habit.BestStreak)
	return nil
}
