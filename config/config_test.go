package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-engine/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "#finops", cfg.Report.Channel)
	assert.Equal(t, 0.01, cfg.Forecast.GrowthRate)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9090
db_path = "/var/lib/finance.db"

[report]
channel = "#spend-alerts"
monthly_budget_usd = 1000.0

[forecast]
growth_rate = 0.02
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/var/lib/finance.db", cfg.Server.DBPath)
	assert.Equal(t, "#spend-alerts", cfg.Report.Channel)
	assert.Equal(t, 1000.0, cfg.Report.MonthlyBudget)
	assert.Equal(t, 0.02, cfg.Forecast.GrowthRate)

	// Unset sections keep their defaults.
	assert.Equal(t, 100.0, cfg.Report.AlertThreshold)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport ="), 0o600))

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "parsing config")
}
