package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"StockScope/internal/analyzer"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string   `yaml:"base_url"` // history API; empty means Yahoo
		APIKey  string   `yaml:"api_key"`
		Symbols []string `yaml:"symbols"`
		Days    int      `yaml:"days"`
	} `yaml:"data_source"`
	Server struct {
		Addr      string `yaml:"addr"`
		MaxPoints int    `yaml:"max_points"` // default resampling cap for chart payloads
	} `yaml:"server"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Indicators analyzer.Params `yaml:"indicators"`
	Proxy      string          `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides.
func Load(path string) (*Config, error) {
	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	cfg := &Config{}

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
	if v := os.Getenv("HISTORY_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("HISTORY_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.DataSource.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
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
	if v := os.Getenv("FETCH_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.Days = days
		}
	}

	// Defaults
	if len(cfg.DataSource.Symbols) == 0 {
		cfg.DataSource.Symbols = []string{"SPX500"}
	}
	if cfg.DataSource.Days == 0 {
		cfg.DataSource.Days = 400
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxPoints == 0 {
		cfg.Server.MaxPoints = 500
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockscope.db"
	}
	cfg.Indicators = cfg.Indicators.Normalize()

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.DataSource.Symbols) == 0 {
		return fmt.Errorf("data_source.symbols is required")
	}
	if c.DataSource.Days < 2 {
		return fmt.Errorf("data_source.days must be at least 2")
	}
	if c.Indicators.SMAFast >= c.Indicators.SMASlow {
		return fmt.Errorf("indicators.sma_fast must be smaller than sma_slow")
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be smaller than macd_slow")
	}
	return nil
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
