package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	filesource "github.com/bnema/paws-quests-cli/internal/adapters/input/file"
	pawsapi "github.com/bnema/paws-quests-cli/internal/adapters/paws"
	profileadapter "github.com/bnema/paws-quests-cli/internal/adapters/render/profile"
	tokenstore "github.com/bnema/paws-quests-cli/internal/adapters/tokens/toml"
	"github.com/bnema/paws-quests-cli/internal/adapters/transport"
	"github.com/bnema/paws-quests-cli/internal/application"
	"github.com/bnema/paws-quests-cli/internal/config"
	"github.com/bnema/paws-quests-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type app struct {
	cfg             config.Config
	logger          *log.Logger
	source          *filesource.Source
	tokens          *tokenstore.Store
	orchestrator    *application.Orchestrator
	profileRenderer func([]application.AccountView, profileadapter.RenderOptions) (string, error)
	questsRenderer  func([]application.AccountView, profileadapter.RenderOptions) (string, error)
	now             func() time.Time
}

func wireApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, err
	}

	tokens, err := tokenstore.NewStore(cfg.Files.Tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("wire token store: %w", err)
	}

	client, err := transport.NewClient(transport.Options{
		BaseURL:        cfg.API.BaseURL,
		MaxAttempts:    cfg.Retry.Attempts,
		RetryDelay:     cfg.Retry.Delay,
		RequestTimeout: cfg.API.Timeout,
		Headers:        pawsapi.DefaultHeaders(),
	}, &http.Client{}, logger)
	if err != nil {
		return nil, fmt.Errorf("wire transport: %w", err)
	}

	api := pawsapi.NewClient(client, cfg.API.ReferralCode, logger)
	clock := ports.SystemClock{}
	pacing := application.Pacing{
		QuestDelay:    cfg.Pacing.QuestDelay,
		AccountDelay:  cfg.Pacing.AccountDelay,
		CycleInterval: cfg.Pacing.CycleInterval,
	}

	sessions := application.NewSessionService(api, tokens, clock, logger)
	wallets := application.NewWalletService(api, logger)
	quests := application.NewQuestService(api, clock, pacing.QuestDelay, logger)

	return &app{
		cfg:             cfg,
		logger:          logger,
		source:          filesource.NewSource(cfg.Files.Accounts, cfg.Files.Wallets),
		tokens:          tokens,
		orchestrator:    application.NewOrchestrator(api, sessions, wallets, quests, clock, pacing, logger),
		profileRenderer: profileadapter.Render,
		questsRenderer:  profileadapter.RenderQuests,
		now:             time.Now,
	}, nil
}

// loadConfig resolves defaults, file and environment, then lets explicit
// flags win over all of them.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(config.NewViper(opts.configFile))
	if err != nil {
		return config.Config{}, err
	}

	if flagChanged(cmd, "log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flagChanged(cmd, "log-format") {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

func newLogger(w io.Writer, cfg config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	formatter := log.TextFormatter
	switch strings.ToLower(cfg.Format) {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}), nil
}
