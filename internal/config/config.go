// Package config loads the optional YAML configuration file and applies
// it over the built-in defaults.  Flags still win over the file; the
// command merges in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ThoMattheussen/NOTTControl-fork/internal/ephem"
)

// Bounds on the snapshot refresh interval.
const (
	MinRefresh = time.Second
	MaxRefresh = time.Hour
)

// Config is the on-disk configuration.
type Config struct {
	// Refresh is the interval between computed snapshots.
	Refresh time.Duration `yaml:"refresh"`

	// Bodies selects which planets the almanac tracks; empty means all
	// nine. Names as accepted by ephem.ParseBody.
	Bodies []string `yaml:"bodies"`

	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level"`

	// FinderCenter is the body the tangent-plane finder view starts
	// centered on.
	FinderCenter string `yaml:"finder_center"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Refresh:      time.Minute,
		LogLevel:     "info",
		FinderCenter: "mars",
	}
}

// Load reads the YAML file at path over the defaults.  A missing file is
// an error; use Default directly when no file was given.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the refresh bounds and resolves every body name.
func (c Config) Validate() error {
	if c.Refresh < MinRefresh || c.Refresh > MaxRefresh {
		return fmt.Errorf("refresh %v outside [%v, %v]", c.Refresh, MinRefresh, MaxRefresh)
	}
	if _, err := c.BodyList(); err != nil {
		return err
	}
	if c.FinderCenter != "" {
		if _, err := ephem.ParseBody(c.FinderCenter); err != nil {
			return err
		}
	}
	return nil
}

// BodyList resolves the configured body names, defaulting to all nine.
func (c Config) BodyList() ([]ephem.Body, error) {
	if len(c.Bodies) == 0 {
		return ephem.All(), nil
	}
	out := make([]ephem.Body, 0, len(c.Bodies))
	for _, name := range c.Bodies {
		b, err := ephem.ParseBody(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
