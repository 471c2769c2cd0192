package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/config"
	"github.com/chloekelly42/timesheetTracker/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings.

Shows the configuration file location, whether it exists, and the
settings merged from the file and the defaults:
  - start_of_day: 8:00 AM
  - default_project: kdg
  - theme: (TUI default)

Use 'timesheet config init' to write a commented sample file.`,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Long:  `Write a commented sample configuration file at the default location. Fails if one already exists.`,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: check that the config file is valid TOML: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for timesheet")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:      %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:           No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Start of day:     %s\n", cfg.StartOfDay)
	_, _ = fmt.Fprintf(deps.Stdout, "Default project:  %s\n", cfg.DefaultProject)
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:            (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:            %s\n", cfg.Theme)
	}
}

// initConfig writes a sample configuration file
func initConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine config file location: %v\n", err)
		deps.Exit(1)
		return
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	svc := service.NewConfigService(configPath, cfg)
	if err := svc.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote sample configuration to %s\n", configPath)
}
