package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "./tradelog.sqlite", cfg.Journal.DBPath)
	assert.Equal(t, 8, cfg.Report.RecentTrades)
	assert.Equal(t, 6, cfg.Report.MonthlyWindow)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing db path",
			mutate:  func(c *Config) { c.Journal.DBPath = "" },
			wantErr: "journal.db_path is required",
		},
		{
			name:    "bad class",
			mutate:  func(c *Config) { c.Defaults.Class = "Mega" },
			wantErr: "defaults.class must be",
		},
		{
			name:    "zero recent trades",
			mutate:  func(c *Config) { c.Report.RecentTrades = 0 },
			wantErr: "report.recent_trades must be positive",
		},
		{
			name:    "negative monthly window",
			mutate:  func(c *Config) { c.Report.MonthlyWindow = -1 },
			wantErr: "report.monthly_window must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Defaults.Class = "Cent"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Journal.DBPath, loaded.Journal.DBPath)
	assert.Equal(t, "Cent", loaded.Defaults.Class)
}

func TestSaveAndLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Defaults.AccountID = "acc_main"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "acc_main", loaded.Defaults.AccountID)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  db_path: \"\"\n"), 0644))
	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
