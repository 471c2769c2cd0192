package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "timesheet"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// StartOfDay is the workday start used for the expected-end-time
	// projection, as a 12-hour clock string (e.g. "8:00 AM")
	StartOfDay string `toml:"start_of_day"`
	// DefaultProject is substituted when an entry is added with an
	// empty project label
	DefaultProject string `toml:"default_project"`
	// Theme selects the TUI color theme by name
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with defaults matching the original
// application behavior:
// - start_of_day: "8:00 AM"
// - default_project: "kdg"
// - theme: "" (use the TUI's default theme)
func DefaultConfig() Config {
	return Config{
		StartOfDay:     "8:00 AM",
		DefaultProject: timesheet.DefaultProject,
		Theme:          "",
	}
}

// Normalize trims whitespace and fills empty fields with defaults.
func (c *Config) Normalize() {
	c.StartOfDay = strings.TrimSpace(c.StartOfDay)
	c.DefaultProject = strings.TrimSpace(c.DefaultProject)
	c.Theme = strings.TrimSpace(c.Theme)

	defaults := DefaultConfig()
	if c.StartOfDay == "" {
		c.StartOfDay = defaults.StartOfDay
	}
	if c.DefaultProject == "" {
		c.DefaultProject = defaults.DefaultProject
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if _, err := timeutil.ParseClock(c.StartOfDay); err != nil {
		return fmt.Errorf("start_of_day: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at path, returning defaults when
// the file does not exist. A file that exists but cannot be read or
// parsed is an error, not a silent fallback.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	defaults := DefaultConfig()
	return fmt.Sprintf(`# timesheet configuration file

# Workday start for the expected-end-time projection, 12-hour clock
start_of_day = %q

# Project substituted when an entry is added without one
default_project = %q

# TUI color theme (see the Config view for available names)
theme = %q
`, defaults.StartOfDay, defaults.DefaultProject, defaults.Theme)
}
