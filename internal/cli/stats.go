package cli

import (
	"fmt"
	"time"

	"github.com/lunarhare/mindease/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	// Re-sync derived counters before displaying.
	if _, err := ctx.Engine.Update(nil); err != nil {
		return err
	}

	stats, err := ctx.Engine.UserStats()
	if err != nil {
		return err
	}

	joined := time.UnixMilli(stats.JoinedDate).Local().Format(constants.DateFormat)

	fmt.Printf("Member since:     %s\n", joined)
	fmt.Printf("Check-ins:        %d\n", stats.TotalMoodEntries)
	fmt.Printf("Current streak:   %d day(s)\n", stats.CurrentStreak)
	fmt.Printf("Longest streak:   %d day(s)\n", stats.LongestStreak)
	fmt.Printf("Reflections:      %d\n", stats.TotalReflections)

	fmt.Println("\nAchievements:")
	for _, a := range stats.Achievements {
		marker := "[ ]"
		progress := fmt.Sprintf("%d/%d", a.Progress, a.Requirement)
		if a.IsUnlocked {
			marker = "[x]"
			progress = "unlocked"
			if a.UnlockedAt != nil {
				progress += " " + time.UnixMilli(*a.UnlockedAt).Local().Format(constants.DateFormat)
			}
		}
		fmt.Printf("  %s %s %-22s %s\n", marker, a.Icon, a.Title, progress)
	}

	return nil
}
