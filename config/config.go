package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tradelog/analytics"
)

// Config represents the complete journal configuration
type Config struct {
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Report   ReportConfig   `json:"report" yaml:"report"`
}

// JournalConfig locates the ledger database
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// DefaultsConfig contains the filter the dashboard opens with. Empty means
// all accounts / all classes.
type DefaultsConfig struct {
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Class     string `json:"class,omitempty" yaml:"class,omitempty"`
}

// ReportConfig contains presentation parameters
type ReportConfig struct {
	RecentTrades  int `json:"recent_trades" yaml:"recent_trades"`
	MonthlyWindow int `json:"monthly_window" yaml:"monthly_window"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Start from defaults so partial files stay valid.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	switch c.Defaults.Class {
	case "", string(analytics.Standard), string(analytics.Cent):
	default:
		return fmt.Errorf("defaults.class must be %s or %s", analytics.Standard, analytics.Cent)
	}
	if c.Report.RecentTrades <= 0 {
		return fmt.Errorf("report.recent_trades must be positive")
	}
	if c.Report.MonthlyWindow <= 0 {
		return fmt.Errorf("report.monthly_window must be positive")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./tradelog.sqlite",
		},
		Report: ReportConfig{
			RecentTrades:  8,
			MonthlyWindow: 6,
		},
	}
}
