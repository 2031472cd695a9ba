// Package config loads rewind tool configuration from TOML files.
//
// Configuration is optional: a missing file yields the defaults, and
// every field has a sensible zero-configuration value.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/rewind"
)

// Config holds the tool configuration.
type Config struct {
	// Capacity bounds the history's past sequence. Zero means the
	// library default.
	Capacity int `toml:"capacity"`

	// Mode is the future-handling mode: "compatible" or "strict".
	Mode string `toml:"mode"`

	// Demo configures the interactive demo.
	Demo DemoConfig `toml:"demo"`
}

// DemoConfig configures the interactive demo application.
type DemoConfig struct {
	// Initial is the baseline text value the demo store starts with.
	Initial string `toml:"initial"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Capacity: rewind.DefaultCapacity,
		Mode:     rewind.ModeCompatible.String(),
	}
}

// Load reads configuration from path. A missing file is not an error;
// the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse error in %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if _, err := rewind.ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// StoreOptions converts the configuration into store options.
func (c Config) StoreOptions() []rewind.Option {
	mode, _ := rewind.ParseMode(c.Mode)
	return []rewind.Option{
		rewind.WithCapacity(c.Capacity),
		rewind.WithMode(mode),
	}
}
