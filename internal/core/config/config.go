package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/logsleuth/logsleuth/internal/core/models"
)

type Config struct {
	DBPath          string
	DefaultProvider models.CloudProvider
	ReportTemplate  string // empty means the built-in template
}

type tomlConfig struct {
	DBPath          string `toml:"db_path"`
	DefaultProvider string `toml:"default_provider"`
}

// Load reads config from ~/.config/logsleuth/
func Load() (*Config, error) {
	cfg := &Config{
		DefaultProvider: models.ProviderAWS,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	configDir := filepath.Join(home, ".config", "logsleuth")
	cfg.DBPath = filepath.Join(configDir, "logsleuth.db")

	tomlPath := filepath.Join(configDir, "config.toml")
	templatePath := filepath.Join(configDir, "report_template.txt")

	// Load TOML config if it exists
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			if tc.DBPath != "" {
				cfg.DBPath = tc.DBPath
			}
			if p := models.CloudProvider(tc.DefaultProvider); p.Valid() {
				cfg.DefaultProvider = p
			}
		}
	}

	// If a custom report template exists, use it
	if data, err := os.ReadFile(templatePath); err == nil {
		cfg.ReportTemplate = string(data)
	}

	return cfg, nil
}
