package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"searchtabs/internal/catalog"
	"searchtabs/internal/clock"
	"searchtabs/internal/config"
	"searchtabs/internal/eventbus"
	"searchtabs/internal/ui"
	"searchtabs/internal/ui/coordinator"
)

var (
	// Global flags
	configPath     string
	catalogPath    string
	logPath        string
	debounce       time.Duration
	loading        time.Duration
	instantRescope bool
	verbose        bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "searchtabs",
	Short: "Tabbed quick search over people, files, chats and lists",
	Long: `searchtabs is a terminal quick-search panel.

Typing runs a staged search: a short debounce, a loading phase with
placeholder rows, then the matching rows. Tabs narrow results to one
category and the settings menu (ctrl+s) hides categories entirely.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	bindFlags(rootCmd.Flags())
}

// bindFlags registers the command line overrides for config values
func bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configPath, "config", "c", "", "path to config file (default: user config dir)")
	flags.StringVar(&catalogPath, "catalog", "", "catalog file (toml, yaml or json)")
	flags.StringVar(&logPath, "log-file", "", "log file path")
	flags.DurationVar(&debounce, "debounce", 0, "quiet period before a search starts loading")
	flags.DurationVar(&loading, "loading", 0, "simulated fetch latency")
	flags.BoolVar(&instantRescope, "instant-rescope", false, "re-scope settled results without delay on tab or filter changes")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}
	}
	logger.Info("catalog loaded", zap.Int("items", cat.Len()), zap.String("path", cfg.Catalog.Path))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()

	coord := coordinator.NewCoordinator(cat, coordinator.Settings{
		Debounce:       cfg.Debounce(),
		Loading:        cfg.Loading(),
		CopyAck:        cfg.CopyAck(),
		InstantRescope: cfg.Search.InstantRescope,
		InitialFilters: cfg.InitialFilters(),
	}, clock.Real(), bus, logger)
	defer coord.Close()

	p := tea.NewProgram(ui.NewModel(coord, cfg, logger), tea.WithAltScreen(), tea.WithContext(ctx))

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventPhaseChanged,
		eventbus.EventSearchSettled,
		eventbus.EventSearchCleared,
		eventbus.EventCopySucceeded,
		eventbus.EventCopyFailed,
		eventbus.EventCopyAckExpired,
	} {
		bus.Subscribe(t, forward)
	}

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return nil
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer close(done)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceForPath(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.Path = catalogPath
	}
	if flags.Changed("log-file") {
		cfg.Log.Path = logPath
	}
	if flags.Changed("debounce") {
		cfg.Search.DebounceMS = int(debounce / time.Millisecond)
	}
	if flags.Changed("loading") {
		cfg.Search.LoadingMS = int(loading / time.Millisecond)
	}
	if flags.Changed("instant-rescope") {
		cfg.Search.InstantRescope = instantRescope
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a file logger; the terminal belongs to the UI
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.Log.Path}
	zcfg.ErrorOutputPaths = []string{cfg.Log.Path}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
