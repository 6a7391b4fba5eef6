package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/pomotask/internal/config"
	"github.com/akyairhashvil/pomotask/internal/database"
	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/pomodoro"
	"github.com/akyairhashvil/pomotask/internal/report"
	"github.com/akyairhashvil/pomotask/internal/tui"
	"github.com/akyairhashvil/pomotask/internal/util"
	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// CLI is the command line surface. Running with no command opens the task list.
type CLI struct {
	Config string `short:"c" help:"Configuration file path" type:"path"`
	DB     string `name:"db" help:"Database path, overrides the configuration file" type:"path"`

	Run    RunCmd    `cmd:"" default:"1" help:"Open the task list and timer"`
	Status StatusCmd `cmd:"" help:"Print the current timer, tasks and daily target"`
	Report ReportCmd `cmd:"" help:"Write a PDF report of tasks and focus history"`
}

// app carries what every command needs. It is built once per process.
type app struct {
	ctx      context.Context
	settings config.Settings
	db       *database.Database
	engine   *pomodoro.Engine
	log      *zap.Logger
	out      io.Writer
	closers  []func() error
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name(config.AppName),
		kong.Description("A task list with a Pomodoro timer."),
		kong.UsageOnError(),
	)

	a, err := newApp(context.Background(), cli, os.Stdout)
	if err != nil {
		if errors.Is(err, database.ErrStoreUnavailable) {
			fmt.Fprintf(os.Stderr, "Cannot open the task store: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		}
		os.Exit(1)
	}
	err = kctx.Run(a)
	if closeErr := a.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context, cli CLI, out io.Writer) (*app, error) {
	dataDir := util.DataDir(config.AppName)
	cfgPath := cli.Config
	if cfgPath == "" {
		cfgPath = filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
	settings, err := config.LoadOrCreate(cfgPath, dataDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cli.DB != "" {
		settings.DBPath = cli.DB
	}

	log, closeLog, err := util.NewLogger(util.LogConfig{
		Level:    settings.Log.Level,
		Encoding: settings.Log.Encoding,
		File:     settings.Log.File,
	})
	if err != nil {
		return nil, err
	}
	a := &app{ctx: ctx, settings: settings, log: log, out: out}
	a.closers = append(a.closers, func() error {
		_ = log.Sync()
		return closeLog()
	})

	db, err := database.Open(ctx, settings.DBPath, database.WithLogger(log))
	if err != nil {
		log.Error("open store", zap.String("path", settings.DBPath), zap.Error(err))
		_ = a.Close()
		return nil, err
	}
	a.db = db
	a.closers = append([]func() error{db.Close}, a.closers...)

	a.engine = pomodoro.New(db,
		pomodoro.WithLogger(log),
		pomodoro.WithStatsWindow(settings.StatsWindowDays),
		pomodoro.WithDurations(pomodoro.Durations{
			Focus:      time.Duration(settings.Timer.FocusMinutes) * time.Minute,
			ShortBreak: time.Duration(settings.Timer.ShortBreakMinutes) * time.Minute,
			LongBreak:  time.Duration(settings.Timer.LongBreakMinutes) * time.Minute,
		}),
	)
	log.Info("started", zap.String("db", settings.DBPath))
	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

type RunCmd struct{}

func (r *RunCmd) Run(a *app) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		a.log.Info("stdout is not a terminal, printing status")
		return writeStatus(a.ctx, a.out, a.engine)
	}
	filter, err := a.engine.Filter(a.ctx, models.TaskFilter(a.settings.DefaultFilter))
	util.LogError(a.log, "load filter", err)

	tui.SetTheme(a.settings.Theme)
	model := tui.NewMainModel(a.ctx, a.engine, tui.WithFilter(filter), tui.WithLogger(a.log))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

type StatusCmd struct{}

func (s *StatusCmd) Run(a *app) error {
	return writeStatus(a.ctx, a.out, a.engine)
}

// writeStatus prints a one-shot summary of the timer, the tasks and the target.
func writeStatus(ctx context.Context, w io.Writer, engine *pomodoro.Engine) error {
	view, err := engine.Refresh(ctx, models.FilterAll)
	if err != nil {
		return err
	}
	now := engine.Now()

	snap := view.Timer
	switch {
	case snap.Running():
		fmt.Fprintf(w, "%s running: %s left, ends %s\n", snap.Kind, snap.Clock(), humanize.RelTime(snap.EndsAt, now, "ago", "from now"))
	case snap.FocusExpired():
		fmt.Fprintf(w, "Focus finished %s. Add the point to a task.\n", humanize.RelTime(snap.EndsAt, now, "ago", "from now"))
	case view.BreakFinished:
		fmt.Fprintln(w, "Break over.")
	default:
		fmt.Fprintln(w, "No interval running.")
	}

	fmt.Fprintf(w, "Today's target: %s\n", tui.FormatTarget(view.Target))
	if len(view.Tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return nil
	}
	for _, line := range report.TaskLines(view.Tasks) {
		fmt.Fprintln(w, strings.TrimLeft(line, " "))
	}
	return nil
}

type ReportCmd struct {
	Out string `short:"o" help:"Output file, defaults to the documents directory" type:"path"`
}

func (r *ReportCmd) Run(a *app) error {
	data, err := report.Collect(a.ctx, a.engine)
	if err != nil {
		return err
	}
	path := r.Out
	if path == "" {
		path = filepath.Join(util.ReportsDir(config.AppName), report.DefaultFilename(data.GeneratedAt))
	}
	if err := report.WriteFile(data, path); err != nil {
		return err
	}
	a.log.Info("report written", zap.String("path", path))
	fmt.Fprintf(a.out, "PDF report generated: %s\n", path)
	return nil
}
