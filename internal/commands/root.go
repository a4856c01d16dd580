package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
	"github.com/klabast/wb-services/feriados-kalender/internal/config"
	"github.com/klabast/wb-services/feriados-kalender/internal/storage"
	"github.com/klabast/wb-services/feriados-kalender/internal/theme"
)

// options is the state shared by all subcommands of one invocation
type options struct {
	cfgFile string
	verbose bool

	cfg      *config.Config
	calendar calendar.Config
	now      func() time.Time
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd(&options{now: time.Now}).Execute()
}

func newRootCmd(o *options) *cobra.Command {
	if o.now == nil {
		o.now = time.Now
	}

	root := &cobra.Command{
		Use:   "feriados-kalender",
		Short: "Static yearly calendar with holidays and a persisted dark mode",
		Long: `feriados-kalender renders the yearly calendar with the configured holidays
into a static HTML page, or prints it to the terminal. The dark/light theme
preference is persisted between runs and applied to every generated page.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&o.cfgFile, "config", config.DefaultConfigFile, "config file path")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newRenderCmd(o),
		newPreviewCmd(o),
		newThemeCmd(o),
		newHolidaysCmd(o),
		newExportCmd(o),
		newConfigCmd(o),
		newVersionCmd(),
	)
	return root
}

// load reads the config and sets up the default logger.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidLogLevel, err)
	}
	if o.verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "feriados",
		Level:  level,
	})
	log.SetDefault(logger)

	o.cfg = cfg
	o.calendar = calendar.Default()
	log.Debug("config loaded", "file", o.cfgFile, "backend", cfg.Storage.Backend, "system", cfg.Theme.System)
	return nil
}

// openToggle opens the preference store and resolves the theme state. The
// caller closes the returned store.
func (o *options) openToggle(ctx context.Context) (*theme.Toggle, storage.Store, error) {
	store, err := storage.Open(o.cfg.Storage.Backend, o.cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening preference store: %w", err)
	}

	toggle, err := theme.New(ctx, store, theme.ForSystem(o.cfg.Theme.System))
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	log.Debug("theme resolved", "mode", toggle.Mode(), "preference", toggle.Preference())
	return toggle, store, nil
}

func closeStore(store storage.Store) {
	if err := store.Close(); err != nil {
		log.Error("closing preference store", "err", err)
	}
}
