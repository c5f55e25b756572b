package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/cli/backups"
	"github.com/julianstephens/tempo/internal/cli/events"
	"github.com/julianstephens/tempo/internal/cli/finance"
	"github.com/julianstephens/tempo/internal/cli/notes"
	"github.com/julianstephens/tempo/internal/cli/projects"
	"github.com/julianstephens/tempo/internal/cli/resources"
	"github.com/julianstephens/tempo/internal/cli/settings"
	"github.com/julianstephens/tempo/internal/cli/system"
	"github.com/julianstephens/tempo/internal/cli/tasks"
	"github.com/julianstephens/tempo/internal/cli/timer"
	"github.com/julianstephens/tempo/internal/config"
	"github.com/julianstephens/tempo/internal/constants"
	"github.com/julianstephens/tempo/internal/errors"
	"github.com/julianstephens/tempo/internal/logger"
	"github.com/julianstephens/tempo/internal/storage"
	"github.com/julianstephens/tempo/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/tempo/config.toml"`
	Data    string `help:"Data file path, overrides the config file." type:"path"`
	Backend string `help:"Storage backend (json|sqlite), overrides the config file."`
	Debug   bool   `help:"Enable verbose logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize tempo storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Export  system.ExportCmd  `cmd:"" help:"Export the full data set to a JSON file."`
	Import  system.ImportCmd  `cmd:"" help:"Import a previously exported JSON file."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks." default:"1"`
		Show   tasks.TaskShowCmd   `cmd:"" help:"Show a task with its time sessions."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Timer struct {
		Start  timer.StartCmd  `cmd:"" help:"Start tracking time on a task."`
		Stop   timer.StopCmd   `cmd:"" help:"Stop the running timer."`
		Status timer.StatusCmd `cmd:"" help:"Show running timers." default:"1"`
	} `cmd:"" help:"Track time on tasks."`
	Project struct {
		Add    projects.ProjectAddCmd    `cmd:"" help:"Add a new project."`
		List   projects.ProjectListCmd   `cmd:"" help:"List projects." default:"1"`
		Show   projects.ProjectShowCmd   `cmd:"" help:"Show a project with tasks, time, and finances."`
		Edit   projects.ProjectEditCmd   `cmd:"" help:"Edit an existing project."`
		Delete projects.ProjectDeleteCmd `cmd:"" help:"Delete a project and its financial records."`
	} `cmd:"" help:"Manage projects."`
	Event struct {
		Add    events.EventAddCmd    `cmd:"" help:"Add a calendar event."`
		List   events.EventListCmd   `cmd:"" help:"List calendar events." default:"1"`
		Edit   events.EventEditCmd   `cmd:"" help:"Edit a calendar event."`
		Delete events.EventDeleteCmd `cmd:"" help:"Delete a calendar event."`
	} `cmd:"" help:"Manage calendar events."`
	Note struct {
		Add    notes.NoteAddCmd    `cmd:"" help:"Add a note."`
		List   notes.NoteListCmd   `cmd:"" help:"List notes." default:"1"`
		Show   notes.NoteShowCmd   `cmd:"" help:"Show a note."`
		Edit   notes.NoteEditCmd   `cmd:"" help:"Edit a note."`
		Delete notes.NoteDeleteCmd `cmd:"" help:"Delete a note."`
	} `cmd:"" help:"Manage notes."`
	Payment struct {
		Add    finance.PaymentAddCmd    `cmd:"" help:"Record a payment."`
		List   finance.PaymentListCmd   `cmd:"" help:"List payments." default:"1"`
		Delete finance.PaymentDeleteCmd `cmd:"" help:"Delete a payment."`
	} `cmd:"" help:"Manage project payments."`
	Expense struct {
		Add    finance.ExpenseAddCmd    `cmd:"" help:"Record an expense."`
		List   finance.ExpenseListCmd   `cmd:"" help:"List expenses." default:"1"`
		Delete finance.ExpenseDeleteCmd `cmd:"" help:"Delete an expense."`
	} `cmd:"" help:"Manage project expenses."`
	Finance  finance.SummaryCmd `cmd:"" help:"Show a project's finance summary."`
	Resource struct {
		Add    resources.ResourceAddCmd    `cmd:"" help:"Attach a resource to a project."`
		List   resources.ResourceListCmd   `cmd:"" help:"List resources." default:"1"`
		Show   resources.ResourceShowCmd   `cmd:"" help:"Show a resource."`
		Delete resources.ResourceDeleteCmd `cmd:"" help:"Delete a resource."`
	} `cmd:"" help:"Manage project resources."`
	Settings struct {
		Show settings.ShowCmd `cmd:"" help:"Show current settings." default:"1"`
		Set  settings.SetCmd  `cmd:"" help:"Change settings."`
	} `cmd:"" help:"Manage application settings."`
	Tags       cli.TagsCmd       `cmd:"" help:"List every tag used by tasks and notes."`
	Categories cli.CategoriesCmd `cmd:"" help:"List every project category in use."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker: tasks, time, projects, and notes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if CLI.Data != "" {
		cfg.DataPath = CLI.Data
	}
	if CLI.Backend != "" {
		cfg.Backend = CLI.Backend
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(cfg.DataPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var provider storage.Provider
	switch cfg.Backend {
	case "sqlite":
		provider = storage.NewSQLiteStore(cfg.DataPath)
	case "json":
		provider = storage.NewJSONStore(cfg.DataPath)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", cfg.Backend)
		os.Exit(1)
	}
	defer provider.Close()

	appCtx := &cli.Context{
		Store:  store.New(provider),
		Config: cfg,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := provider.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
