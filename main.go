package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"copticsocial/internal/api"
	"copticsocial/internal/config"
	"copticsocial/internal/eventbus"
	"copticsocial/internal/logging"
	"copticsocial/internal/ui"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	apiURL     string
	token      string
	verbose    bool
}

func main() {
	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "copticsocial",
		Short:        "Find and join groups in your Coptic Orthodox community",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is "+config.Dir()+"/config.toml)")
	flags.StringVar(&opts.apiURL, "api", "", "platform API base URL")
	flags.StringVar(&opts.token, "token", "", "API token (or set "+config.TokenEnvVar+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newGroupsCmd(opts), newServeCmd(opts))
	return cmd
}

// loadConfig reads the config file and returns it together with the
// effective settings after environment and flag overrides. Only the
// file copy is ever saved.
func loadConfig(opts *options, bus eventbus.EventBus) (config.ConfigService, *config.Config, *config.Config, error) {
	svc := config.NewConfigServiceWithBus(opts.configPath, bus)
	fileCfg, err := svc.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := *fileCfg
	cfg.ApplyEnv()
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	if opts.token != "" {
		cfg.API.Token = opts.token
	}
	return svc, fileCfg, &cfg, nil
}

func newClient(cfg *config.Config, logger *zap.Logger) (*api.Client, error) {
	return api.NewClient(cfg.API.BaseURL,
		api.WithToken(cfg.API.Token),
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		api.WithLogger(logger),
	)
}

func runTUI(ctx context.Context, opts *options) error {
	logger, err := logging.NewFileLogger(config.Dir(), opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()

	svc, fileCfg, cfg, err := loadConfig(opts, bus)
	if err != nil {
		logger.Error("config", zap.Error(err))
		return err
	}
	logger.Info("starting", zap.String("config", svc.Path()), zap.String("api", cfg.API.BaseURL))

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	model := ui.NewModel(bus, cfg, client, logger)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	// Persist tab and filter preferences
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		fileCfg.UI.LastTab = event.LastTab
		fileCfg.UI.LastGroupType = event.LastGroupType
		fileCfg.UI.LastPrivacy = event.LastPrivacy
		fileCfg.UI.LastSort = event.LastSort
		if err := svc.Save(fileCfg); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
			p.Send(ui.EventMsg{Event: eventbus.ErrorEvent{Message: "saving preferences failed", Err: err}})
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			logger.Debug("config saved", zap.String("path", event.Path))
		}
	})
	bus.Subscribe(eventbus.EventMembershipChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MembershipChangedEvent); ok {
			logger.Info("membership changed",
				zap.String("group", event.GroupID),
				zap.Bool("joined", event.Joined),
				zap.String("role", string(event.Role)))
		}
	})
	bus.Subscribe(eventbus.EventJoinRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.JoinRequestedEvent); ok {
			logger.Info("join requested", zap.String("group", event.GroupID))
		}
	})

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}
