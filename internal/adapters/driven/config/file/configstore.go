// Package file loads and persists tool configuration as TOML.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the configuration file name inside the data dir.
const ConfigFileName = "config.toml"

// Config holds the tunable settings for a pipeline run. Everything has
// a sensible default; the file only needs to exist to override them.
type Config struct {
	// Endpoint is the Wikimedia API endpoint.
	Endpoint string `toml:"endpoint"`

	// PageSize is the metadata search page size.
	PageSize int `toml:"page_size"`

	// RequestsPerSecond is the sustained API rate limit.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst is the rate limiter burst size.
	Burst int `toml:"burst"`

	// CanonicalSize is the physical size stamped on every processed
	// icon.
	CanonicalSize string `toml:"canonical_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:          "https://commons.wikimedia.org/w/api.php",
		PageSize:          500,
		RequestsPerSecond: 2.0,
		Burst:             2,
		CanonicalSize:     "10mm",
	}
}

// Load reads the configuration from dir, layering file values over the
// defaults. A missing file yields the defaults without error.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to dir, creating the directory if
// needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
