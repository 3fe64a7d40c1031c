package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application-level configuration
type Config struct {
	// Dataset
	DataFilePath string `yaml:"data_file_path"`

	// Analysis demonstration
	SearchKey     string   `yaml:"search_key"`
	SearchTerm    string   `yaml:"search_term"`
	FrequencyKeys []string `yaml:"frequency_keys"`

	// Logging
	LogLevel      string `yaml:"log_level"`
	LogFilePath   string `yaml:"log_file_path"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`

	// Optional PostgreSQL mirror; empty disables it
	DatabaseURL string `yaml:"database_url"`
}

// Load builds the configuration from defaults, an optional YAML file named by
// ACCIDENT_CONFIG, and per-key environment overrides (env wins over YAML).
// With an empty environment the defaults are returned unchanged. A YAML error
// is returned alongside the defaults so the caller can report it and continue.
func Load() (*Config, error) {
	cfg := &Config{
		DataFilePath:  "sample_accident_data.json",
		SearchKey:     "city",
		SearchTerm:    "Anytown",
		FrequencyKeys: []string{"city", "car"},
		LogLevel:      "info",
		LogMaxAgeDays: 7,
	}

	var fileErr error
	if path := os.Getenv("ACCIDENT_CONFIG"); path != "" {
		if err := overlayFile(cfg, path); err != nil {
			fileErr = err
		}
	}

	cfg.DataFilePath = getEnv("DATA_FILE_PATH", cfg.DataFilePath)
	cfg.SearchKey = getEnv("SEARCH_KEY", cfg.SearchKey)
	cfg.SearchTerm = getEnv("SEARCH_TERM", cfg.SearchTerm)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFilePath = getEnv("LOG_FILE_PATH", cfg.LogFilePath)
	cfg.LogMaxAgeDays = getEnvInt("LOG_MAX_AGE_DAYS", cfg.LogMaxAgeDays)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)

	return cfg, fileErr
}

func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
