package cli

import (
	"fmt"
	"time"
)

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	streak, err := ctx.Moods.Streak(time.Now())
	if err != nil {
		return err
	}

	switch streak {
	case 0:
		fmt.Println("No streak yet — check in today to start one.")
	case 1:
		fmt.Println("🔥 1-day streak. Come back tomorrow to keep it going!")
	default:
		fmt.Printf("🔥 %d-day streak!\n", streak)
	}

	return nil
}
