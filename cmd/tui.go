package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/service"
	"github.com/chloekelly42/timesheetTracker/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI, the primary way to work with a
timesheet. Running 'timesheet' with no subcommand does the same thing.

Views available:
  - Entries: add, edit, and delete entries; open and save documents
  - Summary: totals, project groups, and the expected end of day
  - Config: configuration values and theme selection

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to a specific view
  - j/k or arrows: Navigate within lists
  - ?: Show help
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes the services, loads the document when it exists, and
// runs the TUI application
func runTUI(cmd *cobra.Command) {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	path := timesheetFile(cmd)
	if _, err := os.Stat(path); err == nil {
		if err := services.Timesheet.Load(path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
