package cli

import (
	"fmt"
	"strings"

	"github.com/lunarhare/mindease/internal/gamify"
	"github.com/lunarhare/mindease/internal/models"
	"github.com/lunarhare/mindease/internal/moodlog"
	"github.com/lunarhare/mindease/internal/storage"
)

// Context carries the wired application services into command Run methods.
type Context struct {
	Store  storage.Provider
	Moods  *moodlog.Store
	Engine *gamify.Engine
}

// parseMood maps user input to a Mood, accepting labels case-insensitively.
func parseMood(input string) (models.Mood, error) {
	lowered := strings.ToLower(strings.TrimSpace(input))
	for _, m := range models.AllMoods() {
		if lowered == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mood %q (expected great|good|okay|down|anxious)", input)
}

// announceUnlocks prints newly unlocked achievements, if any.
func announceUnlocks(unlocked []models.Achievement) {
	for _, a := range unlocked {
		fmt.Printf("\n%s Achievement unlocked: %s — %s\n", a.Icon, a.Title, a.Description)
	}
}
