package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Approvals service specifics
	Vault    VaultConfig
	Store    StoreConfig
	Notifier NotifierConfig
	Telegram TelegramConfig
	Sync     SyncConfig

	// API hardening
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// VaultConfig locates the markdown vault the automation backend writes into.
type VaultConfig struct {
	Root string
}

// StoreConfig locates the embedded SQLite store.
type StoreConfig struct {
	Path string
}

// NotifierConfig tunes the new-draft watcher and notification dispatch.
type NotifierConfig struct {
	Enabled      bool
	PollInterval time.Duration
	Debounce     time.Duration
}

type TelegramConfig struct {
	BotToken   string
	ChatID     int64
	WebhookURL string
}

// SyncConfig configures the offline action syncer agent.
type SyncConfig struct {
	APIBaseURL    string
	DrainInterval time.Duration
	HTTPTimeout   time.Duration
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
	Burst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; env vars and defaults carry the service.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Environment: EnvironmentConfig{
			Name: viper.GetString("environment.name"),
		},
		HTTPServer: HTTPServerConfig{
			Port: viper.GetInt("http_server.port"),
			Mode: viper.GetString("http_server.mode"),
		},
		Logger: LoggerConfig{
			Level:        viper.GetString("logger.level"),
			Mode:         viper.GetString("logger.mode"),
			Encoding:     viper.GetString("logger.encoding"),
			ColorEnabled: viper.GetBool("logger.color_enabled"),
		},
		Vault: VaultConfig{
			Root: viper.GetString("vault.root"),
		},
		Store: StoreConfig{
			Path: viper.GetString("store.path"),
		},
		Notifier: NotifierConfig{
			Enabled:      viper.GetBool("notifier.enabled"),
			PollInterval: viper.GetDuration("notifier.poll_interval"),
			Debounce:     viper.GetDuration("notifier.debounce"),
		},
		Telegram: TelegramConfig{
			BotToken:   viper.GetString("telegram.bot_token"),
			ChatID:     viper.GetInt64("telegram.chat_id"),
			WebhookURL: viper.GetString("telegram.webhook_url"),
		},
		Sync: SyncConfig{
			APIBaseURL:    viper.GetString("sync.api_base_url"),
			DrainInterval: viper.GetDuration("sync.drain_interval"),
			HTTPTimeout:   viper.GetDuration("sync.http_timeout"),
		},
		RateLimit: RateLimitConfig{
			Enabled:   viper.GetBool("rate_limit.enabled"),
			PerMinute: viper.GetInt("rate_limit.per_minute"),
			Burst:     viper.GetInt("rate_limit.burst"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("vault.root", "../Vault")
	viper.SetDefault("store.path", "./data/approvals.db")

	viper.SetDefault("notifier.enabled", true)
	viper.SetDefault("notifier.poll_interval", "60s")
	viper.SetDefault("notifier.debounce", "2s")

	viper.SetDefault("sync.api_base_url", "http://localhost:8080")
	viper.SetDefault("sync.drain_interval", "30s")
	viper.SetDefault("sync.http_timeout", "10s")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 120)
	viper.SetDefault("rate_limit.burst", 30)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port: %d", c.HTTPServer.Port)
	}
	if c.Vault.Root == "" {
		return fmt.Errorf("vault.root must not be empty")
	}
	if c.Notifier.PollInterval <= 0 {
		return fmt.Errorf("notifier.poll_interval must be positive")
	}
	if c.Sync.DrainInterval <= 0 {
		return fmt.Errorf("sync.drain_interval must be positive")
	}
	return nil
}
