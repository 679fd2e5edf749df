package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/focusdeck/focusdeck/internal/cli"
	"github.com/focusdeck/focusdeck/internal/cli/backups"
	"github.com/focusdeck/focusdeck/internal/cli/days"
	"github.com/focusdeck/focusdeck/internal/cli/pomo"
	"github.com/focusdeck/focusdeck/internal/cli/settings"
	"github.com/focusdeck/focusdeck/internal/cli/system"
	"github.com/focusdeck/focusdeck/internal/cli/tasks"
	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/keyring"
	"github.com/focusdeck/focusdeck/internal/logger"
	"github.com/focusdeck/focusdeck/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or OS keyring instead." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize focusdeck storage and the 60-day tracker."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Task    struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List the task tree."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task and its subtasks."`
		Toggle tasks.TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
	} `cmd:"" help:"Manage tasks."`
	Day struct {
		List   days.DayListCmd   `cmd:"" help:"Show the 60-day tracker." default:"1"`
		Show   days.DayShowCmd   `cmd:"" help:"Show the tasks assigned to a day."`
		Assign days.DayAssignCmd `cmd:"" help:"Assign a task to a day."`
	} `cmd:"" help:"Manage the day tracker."`
	Pomo struct {
		Start   pomo.PomoStartCmd   `cmd:"" help:"Start a focus session."`
		Stop    pomo.PomoStopCmd    `cmd:"" help:"Complete the active session."`
		Status  pomo.PomoStatusCmd  `cmd:"" help:"Show the active session." default:"1"`
		Stats   pomo.PomoStatsCmd   `cmd:"" help:"Show streak statistics."`
		History pomo.PomoHistoryCmd `cmd:"" help:"List completed sessions."`
	} `cmd:"" help:"Manage focus sessions."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Task tree, 60-day tracker, and pomodoro companion"),
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

	config := resolveConfig(CLI.Config)

	logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath)),
	})

	var store storage.Provider
	if storage.IsPostgresURL(config) {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Store the connection string in the OS keyring ('focusdeck keyring set'),")
			fmt.Fprintln(os.Stderr, "       use the FOCUSDECK_DB_CONNECTION environment variable, or a .pgpass file.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(config)
	} else {
		store = storage.NewSQLiteStore(config)
	}

	appCtx := cli.NewContext(store)

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig picks the database location: an explicit flag wins,
// then the environment, then a keyring-stored connection string, and
// finally the default sqlite path.
func resolveConfig(flagValue string) string {
	if flagValue != constants.DefaultConfigPath {
		return flagValue
	}
	if env := os.Getenv("FOCUSDECK_DB_CONNECTION"); env != "" {
		return env
	}
	if stored, err := keyring.GetConnectionString(); err == nil && stored != "" {
		return stored
	}
	return flagValue
}
