/*
config.go - TOML configuration for the finance engine

PURPOSE:
  One config file drives both the server and the CLI: database location,
  HTTP port, weekly report settings, and forecast tuning. Flags override
  file values; the file overrides built-in defaults.

FILE LOCATION:
  $XDG_CONFIG_HOME/finance-engine/config.toml, falling back to
  ~/.config/finance-engine/config.toml. A missing file is not an error;
  defaults apply.

SEE ALSO:
  - cmd/finserver/main.go: Server startup
  - cmd/fincli: CLI commands
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finance-engine configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Report   ReportConfig   `toml:"report"`
	Forecast ForecastConfig `toml:"forecast"`
}

// ServerConfig holds HTTP server and storage settings.
type ServerConfig struct {
	Port   int    `toml:"port"`
	DBPath string `toml:"db_path"`
}

// ReportConfig holds weekly burn report settings.
type ReportConfig struct {
	Channel        string  `toml:"channel"`
	MonthlyBudget  float64 `toml:"monthly_budget_usd"`
	AlertThreshold float64 `toml:"alert_threshold_usd"`
}

// ForecastConfig holds projection tuning.
type ForecastConfig struct {
	GrowthRate float64 `toml:"growth_rate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:   8080,
			DBPath: "finance.db",
		},
		Report: ReportConfig{
			Channel:        "#finops",
			MonthlyBudget:  0,
			AlertThreshold: 100,
		},
		Forecast: ForecastConfig{
			GrowthRate: 0.01,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finance-engine")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finance-engine")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path, returning defaults when the file
// does not exist. An empty path means the standard location.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the standard location.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
