// Package service provides the session layer shared by the CLI and TUI
// frontends. It wraps the timesheet aggregate, document storage, and
// configuration behind a single API, and tracks the presentation-side
// session state (current file, unsaved changes) that the aggregate
// itself does not own.
package service

import (
	"github.com/chloekelly42/timesheetTracker/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Timesheet *TimesheetService
	Config    *ConfigService
}

// NewServices creates a new Services instance using the default config path
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(configPath, cfg), nil
}

// NewServicesWithConfig creates a new Services instance with an explicit
// config path and config (useful for testing)
func NewServicesWithConfig(configPath string, cfg config.Config) *Services {
	return &Services{
		Timesheet: NewTimesheetService(cfg),
		Config:    NewConfigService(configPath, cfg),
	}
}
