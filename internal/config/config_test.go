package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"ACADEMITREND_CONFIG", "LISTEN_ADDR", "MODEL_DIR", "DATA_DIR", "POSTGRES_URL", "RECORD_FORECASTS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "models", cfg.ModelDir)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Empty(t, cfg.PostgresURL)
	assert.False(t, cfg.RecordForecasts)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("MODEL_DIR", "/srv/models")
	t.Setenv("RECORD_FORECASTS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/srv/models", cfg.ModelDir)
	assert.True(t, cfg.RecordForecasts)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
listen_addr = ":7070"
data_dir = "/var/lib/academitrend"
postgres_url = "postgres://localhost/academitrend?sslmode=disable"
record_forecasts = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ACADEMITREND_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "/var/lib/academitrend", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/academitrend?sslmode=disable", cfg.PostgresURL)
	assert.True(t, cfg.RecordForecasts)
	// File keeps the default for fields it does not set.
	assert.Equal(t, "models", cfg.ModelDir)
}

func TestEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`listen_addr = ":7070"`), 0o644))
	t.Setenv("ACADEMITREND_CONFIG", path)
	t.Setenv("LISTEN_ADDR", ":6060")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.ListenAddr)
}

func TestMissingConfigFile(t *testing.T) {
	t.Setenv("ACADEMITREND_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}
