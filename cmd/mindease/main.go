package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lunarhare/mindease/internal/cli"
	"github.com/lunarhare/mindease/internal/constants"
	"github.com/lunarhare/mindease/internal/errors"
	"github.com/lunarhare/mindease/internal/gamify"
	"github.com/lunarhare/mindease/internal/logger"
	"github.com/lunarhare/mindease/internal/moodlog"
	"github.com/lunarhare/mindease/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for a JSON file)." type:"path" default:"~/.config/mindease/mindease.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize mindease storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Checkin cli.CheckinCmd `cmd:"" help:"Log today's mood."`
	History cli.HistoryCmd `cmd:"" help:"Show past check-ins."`
	Streak  cli.StreakCmd  `cmd:"" help:"Show the current check-in streak (capped at 7 days)."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show totals, streaks, and achievement progress."`
	Habit   cli.HabitCmd   `cmd:"" help:"Track daily self-care habits."`
	Suggest cli.SuggestCmd `cmd:"" help:"Get personalized self-care suggestions."`
	Prompts cli.PromptsCmd `cmd:"" help:"Get journal prompts."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellbeing companion: mood check-ins, streaks, and gentle gamification"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Storage backend is selected by file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	moods := moodlog.NewStore(store)
	appCtx := &cli.Context{
		Store:  store,
		Moods:  moods,
		Engine: gamify.NewEngine(store, moods),
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
