// Package config loads service configuration from an optional TOML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level service configuration.
type Config struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string `toml:"listen_addr"`
	// ModelDir holds the trained pathway model artifacts.
	ModelDir string `toml:"model_dir"`
	// DataDir holds the generated predictions and raw enrollment data.
	DataDir string `toml:"data_dir"`
	// PostgresURL, when set, switches the historical data source from
	// the bundled files to Postgres.
	PostgresURL string `toml:"postgres_url"`
	// RecordForecasts enables logging forecast runs to Postgres.
	RecordForecasts bool `toml:"record_forecasts"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ListenAddr: ":8080",
		ModelDir:   "models",
		DataDir:    "data",
	}
}

// Load reads the TOML file named by ACADEMITREND_CONFIG (if set and
// present) over the defaults, then applies env-var overrides.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("ACADEMITREND_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.ModelDir = getenv("MODEL_DIR", cfg.ModelDir)
	cfg.DataDir = getenv("DATA_DIR", cfg.DataDir)
	cfg.PostgresURL = getenv("POSTGRES_URL", cfg.PostgresURL)
	if v := os.Getenv("RECORD_FORECASTS"); v != "" {
		cfg.RecordForecasts = v == "true" || v == "1"
	}

	if cfg.ListenAddr == "" {
		return Config{}, fmt.Errorf("listen_addr must not be empty")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
