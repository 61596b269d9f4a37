package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bnema/paws-quests-cli/internal/adapters/transport"
	"github.com/bnema/paws-quests-cli/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "PAWS_"
	configName     = "paws"
	configType     = "toml"
	defaultBaseURL = "https://api.paws.community/v1"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "logfmt"}
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Retry  RetryConfig  `mapstructure:"retry"`
	Pacing PacingConfig `mapstructure:"pacing"`
	Files  FilesConfig  `mapstructure:"files"`
	Log    LogConfig    `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL      string        `mapstructure:"base_url" env:"BASE_URL"`
	// ReferralCode is the fixed code sent with every login; blank by default.
	ReferralCode string        `mapstructure:"referral_code" env:"REFERRAL_CODE"`
	Timeout      time.Duration `mapstructure:"timeout" env:"TIMEOUT"`
}

type RetryConfig struct {
	Attempts int           `mapstructure:"attempts" env:"RETRY_ATTEMPTS"`
	Delay    time.Duration `mapstructure:"delay" env:"RETRY_DELAY"`
}

type PacingConfig struct {
	QuestDelay    time.Duration `mapstructure:"quest_delay" env:"QUEST_DELAY"`
	AccountDelay  time.Duration `mapstructure:"account_delay" env:"ACCOUNT_DELAY"`
	CycleInterval time.Duration `mapstructure:"cycle_interval" env:"CYCLE_INTERVAL"`
}

type FilesConfig struct {
	Accounts string `mapstructure:"accounts" env:"ACCOUNTS_FILE"`
	Wallets  string `mapstructure:"wallets" env:"WALLETS_FILE"`
	Tokens   string `mapstructure:"tokens" env:"TOKENS_FILE"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" env:"LOG_LEVEL"`
	Format string `mapstructure:"format" env:"LOG_FORMAT"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.referral_code", "")
	v.SetDefault("api.timeout", transport.DefaultRequestTimeout)
	v.SetDefault("retry.attempts", transport.DefaultMaxAttempts)
	v.SetDefault("retry.delay", transport.DefaultRetryDelay)
	v.SetDefault("pacing.quest_delay", 2*time.Second)
	v.SetDefault("pacing.account_delay", time.Second)
	v.SetDefault("pacing.cycle_interval", 24*time.Hour)
	v.SetDefault("files.accounts", "data.txt")
	v.SetDefault("files.wallets", "wallet.txt")
	v.SetDefault("files.tokens", "tokens.toml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// NewViper points v at configFile, or at paws.toml in the working directory
// and the user config directory when configFile is empty.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetConfigType(configType)

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		return v
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, configName))
	}
	return v
}

// Load layers defaults, the optional config file and PAWS_* environment
// variables, in that order of precedence.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("read environment overrides: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := transport.ParseBaseURL(c.API.BaseURL); err != nil {
		return &domain.ConfigError{Reason: err.Error()}
	}
	if c.API.Timeout <= 0 {
		return &domain.ConfigError{Reason: "api.timeout must be positive"}
	}
	if c.Retry.Attempts < 1 {
		return &domain.ConfigError{Reason: "retry.attempts must be at least 1"}
	}

	for _, delay := range []struct {
		key   string
		value time.Duration
	}{
		{key: "retry.delay", value: c.Retry.Delay},
		{key: "pacing.quest_delay", value: c.Pacing.QuestDelay},
		{key: "pacing.account_delay", value: c.Pacing.AccountDelay},
		{key: "pacing.cycle_interval", value: c.Pacing.CycleInterval},
	} {
		if delay.value < 0 {
			return &domain.ConfigError{Reason: fmt.Sprintf("%s must not be negative", delay.key)}
		}
	}

	for _, file := range []struct {
		key  string
		path string
	}{
		{key: "files.accounts", path: c.Files.Accounts},
		{key: "files.wallets", path: c.Files.Wallets},
		{key: "files.tokens", path: c.Files.Tokens},
	} {
		if strings.TrimSpace(file.path) == "" {
			return &domain.ConfigError{Reason: fmt.Sprintf("%s is required", file.key)}
		}
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return &domain.ConfigError{Reason: fmt.Sprintf("log.level %q must be one of %s", c.Log.Level, strings.Join(logLevels, ", "))}
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return &domain.ConfigError{Reason: fmt.Sprintf("log.format %q must be one of %s", c.Log.Format, strings.Join(logFormats, ", "))}
	}

	return nil
}
