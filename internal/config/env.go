package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/unclebandit/campaign-insights/internal/logger"
)

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		logger.Debug("no .env file found, using environment variables")
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func overrideFromEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Port, "PORT")
	set(&cfg.Environment, "ENVIRONMENT")
	set(&cfg.DataSource, "DATA_SOURCE")
	set(&cfg.DataDir, "DATA_DIR")
	set(&cfg.DatabaseURL, "DATABASE_URL")
	set(&cfg.DatasetBaseURL, "DATASET_BASE_URL")
	set(&cfg.ExportDir, "EXPORT_DIR")
	set(&cfg.ReportsDir, "REPORTS_DIR")
	set(&cfg.AMQPURL, "AMQP_URL")
	set(&cfg.ReportSchedule, "REPORT_SCHEDULE")
	set(&cfg.DashboardTitle, "DASHBOARD_TITLE")
	set(&cfg.CurrencySymbol, "CURRENCY_SYMBOL")
}

func (c *Config) validate() error {
	switch c.DataSource {
	case SourceSample:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for data source %q", c.DataSource)
		}
	case SourceRemote:
		if c.DatasetBaseURL == "" {
			return fmt.Errorf("DATASET_BASE_URL environment variable is required for data source %q", c.DataSource)
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	return nil
}
