// Package config loads the application configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all carelink configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Donations DonationsConfig `yaml:"donations"`
	Tasks     TasksConfig     `yaml:"tasks"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DatabaseConfig configures the SQLite backing store.
type DatabaseConfig struct {
	// Path is a file path or ":memory:" (the default). In-memory keeps
	// all data process-local, matching the demo's lifetime semantics.
	Path string `yaml:"path"`
}

// DonationsConfig configures the fundraising campaign.
type DonationsConfig struct {
	Minimum  int    `yaml:"minimum"`
	Goal     int    `yaml:"goal"`
	Campaign string `yaml:"campaign"`
}

// TasksConfig configures the volunteer task board.
type TasksConfig struct {
	CacheTTL string `yaml:"cache_ttl"`
}

// UIConfig holds the initial UI preferences.
type UIConfig struct {
	FontSize   int    `yaml:"font_size"`
	ThemeColor string `yaml:"theme_color"`
}

// LoggingConfig configures the file-backed logger. The TUI owns the
// terminal, so logs never go to stdout/stderr.
type LoggingConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ":memory:"},
		Donations: DonationsConfig{
			Minimum:  100,
			Goal:     200000,
			Campaign: "Winter Care",
		},
		Tasks: TasksConfig{CacheTTL: "5m"},
		UI: UIConfig{
			FontSize:   16,
			ThemeColor: "#4CAF50",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns ~/.carelink/config.yaml, or "" if the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carelink", "config.yaml")
}

// Load reads configuration from path, layered over Default. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Donations.Minimum <= 0 {
		return fmt.Errorf("donations.minimum must be positive")
	}
	if c.Donations.Goal <= 0 {
		return fmt.Errorf("donations.goal must be positive")
	}
	if _, err := time.ParseDuration(c.Tasks.CacheTTL); err != nil {
		return fmt.Errorf("tasks.cache_ttl: %w", err)
	}
	return nil
}

// TaskCacheTTL returns the parsed cache TTL. Call after Load; an invalid
// duration would already have been rejected there.
func (c *Config) TaskCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Tasks.CacheTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}
