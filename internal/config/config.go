package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"SignalSentinel/internal/model"
)

// DefaultPath is read when CONFIG_PATH is unset.
const DefaultPath = "configs/config.yaml"

// Source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
	SourceMock   = "mock"
)

// Config holds all application configuration.
type Config struct {
	Source struct {
		Kind       string `yaml:"kind"`
		CSVPath    string `yaml:"csv_path"`
		SQLitePath string `yaml:"sqlite_path"`
		Table      string `yaml:"table"`
		Symbol     string `yaml:"symbol"`
	} `yaml:"source"`
	Display  model.DisplayToggles `yaml:"display"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Path returns CONFIG_PATH or the default location.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{Display: model.AllVisible()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SENTINEL_CSV_PATH"); v != "" {
		cfg.Source.CSVPath = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Source.SQLitePath = v
	}
	if v := os.Getenv("SENTINEL_SYMBOL"); v != "" {
		cfg.Source.Symbol = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if os.Getenv("RUN_ON_START") == "true" {
		cfg.Schedule.RunOnStart = true
	}

	// Defaults
	if cfg.Source.Kind == "" {
		cfg.Source.Kind = SourceCSV
	}
	cfg.Source.Kind = strings.ToLower(cfg.Source.Kind)
	if cfg.Source.CSVPath == "" {
		cfg.Source.CSVPath = "data/sample_data.csv"
	}
	if cfg.Source.SQLitePath == "" {
		cfg.Source.SQLitePath = "data/signal_sentinel.db"
	}
	if cfg.Source.Table == "" {
		cfg.Source.Table = "price_bars"
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 22 * * 1-5"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks the fields every command relies on.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceCSV:
		if c.Source.CSVPath == "" {
			return fmt.Errorf("source.csv_path is required")
		}
	case SourceSQLite:
		if c.Source.SQLitePath == "" {
			return fmt.Errorf("source.sqlite_path is required")
		}
	case SourceMock:
	default:
		return fmt.Errorf("source.kind must be one of csv, sqlite, mock; got %q", c.Source.Kind)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ValidateTelegram checks the delivery settings needed by watch.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Schedule.ReportCron); err != nil {
		return fmt.Errorf("schedule.report_cron: %w", err)
	}
	return nil
}

// Level returns the configured zerolog level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
