// Package config loads runtime settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	DataDir        string `yaml:"data_dir"`
	ChartPath      string `yaml:"chart_path"`
	Store          string `yaml:"store"`
	SQLitePath     string `yaml:"sqlite_path"`
	DatabaseURL    string `yaml:"database_url"`
	LogLevel       string `yaml:"log_level"`
	RecordAttempts int    `yaml:"record_attempts"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DataDir:        ".",
		ChartPath:      "Weight_history.png",
		Store:          StoreFile,
		SQLitePath:     "weightlog.db",
		LogLevel:       "warn",
		RecordAttempts: 3,
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	c.DataDir = getEnv("WEIGHTLOG_DATA_DIR", c.DataDir)
	c.ChartPath = getEnv("WEIGHTLOG_CHART_PATH", c.ChartPath)
	c.Store = getEnv("WEIGHTLOG_STORE", c.Store)
	c.SQLitePath = getEnv("WEIGHTLOG_SQLITE_PATH", c.SQLitePath)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.LogLevel = getEnv("WEIGHTLOG_LOG_LEVEL", c.LogLevel)

	n, err := getEnvInt("WEIGHTLOG_RECORD_ATTEMPTS", c.RecordAttempts)
	if err != nil {
		return err
	}
	c.RecordAttempts = n
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreMemory, StoreSQLite:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database_url is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if c.ChartPath == "" {
		return errors.New("chart_path must not be empty")
	}
	if c.RecordAttempts < 1 {
		return fmt.Errorf("record_attempts must be >= 1, got %d", c.RecordAttempts)
	}
	return nil
}

// String returns a string representation of the config (the database URL is masked).
func (c *Config) String() string {
	db := ""
	if c.DatabaseURL != "" {
		db = "***"
	}
	return fmt.Sprintf("Config{store: %s, data_dir: %s, chart: %s, sqlite: %s, db: %s, log: %s, attempts: %d}",
		c.Store, c.DataDir, c.ChartPath, c.SQLitePath, db, c.LogLevel, c.RecordAttempts)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return n, nil
}
