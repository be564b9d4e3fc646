package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/lunarhare/mindease/internal/utils"
)

type HistoryCmd struct {
	Days int `help:"Only show entries from the last N days (0 = all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	entries, err := ctx.Moods.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No check-ins yet. Run 'mindease checkin' to log your first mood.")
		return nil
	}

	var cutoff string
	if c.Days > 0 {
		cutoff = utils.DaysAgo(time.Now(), c.Days-1)
	}

	shown := 0
	for _, entry := range entries {
		day := utils.DayKeyFromMillis(entry.Timestamp)
		if cutoff != "" && day < cutoff {
			break
		}

		line := fmt.Sprintf("%s  %s %-8s", day, entry.Mood.Emoji(), entry.Mood.Label())
		if note := strings.TrimSpace(entry.Note); note != "" {
			line += "  " + note
		}
		fmt.Println(line)
		shown++
	}

	fmt.Printf("\n%d check-in(s)\n", shown)
	return nil
}
