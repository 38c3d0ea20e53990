// Package cli is the workday command tree. With no subcommand it runs the
// interactive tracker.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/workday/internal/config"
	"github.com/sadopc/workday/internal/store"
	"github.com/sadopc/workday/internal/tui"
	"github.com/sadopc/workday/internal/workcalc"
)

const Version = "0.1.0"

// options is shared by every command; PersistentPreRunE fills it in.
type options struct {
	backend string
	file    string
	db      string

	now func() time.Time

	cfg     *config.Config
	logger  *slog.Logger
	store   store.PreferencesStore
	prefs   workcalc.Preferences
	closers []io.Closer
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, badStyle.Render(iconError+" "+err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	o := &options{now: time.Now}
	defer o.close()

	root := newRootCmd(o)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:               "workday",
		Short:             "Live work-hours tracker",
		Long:              "workday tracks net hours against an 8 hour target and projects the balance for a planned exit time.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runTUI()
		},
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&o.backend, "store", "", "preferences backend: json or sqlite (env WORKDAY_STORE)")
	pf.StringVar(&o.file, "file", "", "JSON preferences file (env WORKDAY_FILE)")
	pf.StringVar(&o.db, "db", "", "SQLite database (env WORKDAY_DB)")

	root.AddCommand(
		newStatusCmd(o),
		newProjectCmd(o),
		newSetCmd(o),
		newExportCmd(o),
	)
	return root
}

// setup resolves configuration, opens the log and the preferences store, and
// loads the stored preferences.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Backend = strings.ToLower(o.backend)
	}
	if flags.Changed("file") {
		cfg.FilePath = o.file
	}
	if flags.Changed("db") {
		cfg.DBPath = o.db
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.cfg = cfg

	logger, closer, err := cfg.OpenLogger()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("logging disabled: "+err.Error()))
		logger = slog.New(slog.DiscardHandler)
	} else {
		o.closers = append(o.closers, closer)
	}
	o.logger = logger.With("command", cmd.Name())

	ps, err := o.openStore()
	if err != nil {
		// Keep going on in-memory defaults; edits will not be persisted.
		o.logger.Warn("Preferences storage unavailable", "backend", cfg.Backend, "error", err)
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(
			"preferences storage unavailable, using defaults: "+err.Error()))
		o.prefs = workcalc.DefaultPreferences()
		return nil
	}
	o.store = ps

	res, err := store.LoadOrInit(ps)
	if err != nil {
		o.logger.Warn("Failed to create preferences", "error", err)
	}
	o.prefs = res.Preferences

	if res.Defaulted() {
		o.logger.Warn("Preferences defaulted",
			"status", res.Status.String(),
			"fallbacks", res.Fallbacks,
			"error", res.Err,
		)
		if res.Status == store.StatusPartial || res.Status == store.StatusCorrupt {
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(
				fmt.Sprintf("using defaults for: %s", strings.Join(res.Fallbacks, ", "))))
		}
	} else {
		o.logger.Debug("Preferences loaded", "backend", cfg.Backend)
	}
	return nil
}

func (o *options) openStore() (store.PreferencesStore, error) {
	switch o.cfg.Backend {
	case config.BackendSQLite:
		s, err := store.New(o.cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		o.closers = append(o.closers, s)
		return s, nil
	default:
		return store.NewFile(o.cfg.FilePath), nil
	}
}

func (o *options) close() {
	for i := len(o.closers) - 1; i >= 0; i-- {
		_ = o.closers[i].Close()
	}
	o.closers = nil
}

func (o *options) runTUI() error {
	o.logger.Info("Starting tracker", "backend", o.cfg.Backend, "tick", o.cfg.Tick.String())

	app := tui.NewApp(o.store, o.prefs, o.logger, o.cfg.Tick)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tracker: %w", err)
	}
	return nil
}

// save persists p, reporting failures as errors.
func (o *options) save(p workcalc.Preferences) error {
	if o.store == nil {
		return fmt.Errorf("%w: storage unavailable, preferences not persisted", store.ErrWrite)
	}
	if err := o.store.SavePreferences(p); err != nil {
		o.logger.Warn("Failed to save preferences", "error", err)
		return fmt.Errorf("save preferences: %w", err)
	}
	o.prefs = p
	o.logger.Info("Preferences saved",
		"in_time", p.ClockIn.String(),
		"tea_break", p.TeaBreak,
		"lunch_break", p.LunchBreak,
		"planned_exit", p.PlannedExit.String(),
	)
	return nil
}
