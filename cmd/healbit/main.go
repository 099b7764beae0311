package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/cli/entries"
	"github.com/Akkumon/HealBit/internal/cli/exports"
	"github.com/Akkumon/HealBit/internal/cli/insights"
	"github.com/Akkumon/HealBit/internal/cli/settings"
	"github.com/Akkumon/HealBit/internal/cli/system"
	"github.com/Akkumon/HealBit/internal/constants"
	apperrors "github.com/Akkumon/HealBit/internal/errors"
	"github.com/Akkumon/HealBit/internal/logger"
	"github.com/Akkumon/HealBit/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize healbit storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Purge   system.PurgeCmd   `cmd:"" help:"Delete all local data. Irreversible."`

	Add        entries.AddCmd        `cmd:"" help:"Record a journal entry."`
	List       entries.ListCmd       `cmd:"" help:"List journal entries."`
	Show       entries.ShowCmd       `cmd:"" help:"Show a single entry."`
	Delete     entries.DeleteCmd     `cmd:"" help:"Delete an entry and its audio."`
	Transcript entries.TranscriptCmd `cmd:"" help:"Correct an entry's transcript."`
	Tags       entries.TagsCmd       `cmd:"" help:"Show the emotion tag taxonomy."`

	Streak    insights.StreakCmd    `cmd:"" help:"Show the current daily streak."`
	Moods     insights.MoodsCmd     `cmd:"" help:"Show mood frequency across all entries."`
	Sentiment insights.SentimentCmd `cmd:"" help:"Show the sentiment trend."`
	Avatar    insights.AvatarCmd    `cmd:"" help:"Show avatar evolution dimensions."`

	Export exports.ExportCmd `cmd:"" help:"Export entries to a JSON backup file."`
	Import exports.ImportCmd `cmd:"" help:"Import entries from a backup file."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first mood journal and reflection companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %v", err)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{Store: store}

	// Load the store before running the command. Init handles its own setup
	// and the tag taxonomy is static.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" && ctx.Selected().Name != "tags" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
