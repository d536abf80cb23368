package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr      string `yaml:"addr"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	DataSource struct {
		Symbol string `yaml:"symbol"`
		FxPair string `yaml:"fx_pair"`
	} `yaml:"data_source"`
	Cache struct {
		DatasetTTL  string `yaml:"dataset_ttl"`
		CalendarTTL string `yaml:"calendar_ttl"`
	} `yaml:"cache"`
	Schedule struct {
		CalendarCron string `yaml:"calendar_cron"`
		QuoteCron    string `yaml:"quote_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
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
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("FX_PAIR"); v != "" {
		cfg.DataSource.FxPair = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DATASET_TTL"); v != "" {
		cfg.Cache.DatasetTTL = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "static"
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "GOOG"
	}
	if cfg.DataSource.FxPair == "" {
		cfg.DataSource.FxPair = "USDCHF=X"
	}
	if cfg.Cache.DatasetTTL == "" {
		cfg.Cache.DatasetTTL = "10m"
	}
	if cfg.Cache.CalendarTTL == "" {
		cfg.Cache.CalendarTTL = "24h"
	}
	if cfg.Schedule.CalendarCron == "" {
		cfg.Schedule.CalendarCron = "0 0 6 * * *"
	}
	if cfg.Schedule.QuoteCron == "" {
		cfg.Schedule.QuoteCron = "0 * * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tracker.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.DataSource.FxPair == "" {
		return fmt.Errorf("data_source.fx_pair is required")
	}
	if d, err := time.ParseDuration(c.Cache.DatasetTTL); err != nil || d <= 0 {
		return fmt.Errorf("cache.dataset_ttl must be a positive duration")
	}
	if d, err := time.ParseDuration(c.Cache.CalendarTTL); err != nil || d <= 0 {
		return fmt.Errorf("cache.calendar_ttl must be a positive duration")
	}
	return nil
}

// DatasetTTL returns the parsed dataset cache TTL.
func (c *Config) DatasetTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.DatasetTTL)
	return d
}

// CalendarTTL returns the parsed earnings calendar TTL.
func (c *Config) CalendarTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.CalendarTTL)
	return d
}
