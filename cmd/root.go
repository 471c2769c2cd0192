package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/service"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "A timesheet tracking application",
	Long: `timesheet logs hourly work entries against projects and keeps running
totals: total time, billable time, billable time grouped by project
initial, and the projected end of the workday.

Usage:
  timesheet                                     Launch the interactive UI
  timesheet add 2.5 built widgets -p Widgets    Log a 2.5 hour entry
  timesheet list                                List entries with totals
  timesheet summary                             Show totals and project groups
  timesheet edit 1 --hours 3.0                  Edit an entry
  timesheet remove 1                            Remove an entry (with confirmation)
  timesheet export json                         Dump entries as JSON
  timesheet validate                            Check a timesheet document

Entries whose project is "lunch" (any case) are not counted as worked
time; they only push the expected end of day out. Hours must be positive
multiples of 0.1.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "timesheet.json", "timesheet JSON document to operate on")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timesheet version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// timesheetFile returns the document path the command operates on.
func timesheetFile(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("file")
	return path
}

// openSession loads the configuration and, when the document exists, the
// timesheet itself. A missing document yields an empty session so that
// "add" can start a fresh file.
func openSession(cmd *cobra.Command) (*service.TimesheetService, error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	svc := service.NewTimesheetService(cfg)

	path := timesheetFile(cmd)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return svc, nil
		}
		return nil, err
	}

	if err := svc.Load(path); err != nil {
		return nil, err
	}
	return svc, nil
}

// saveSession writes the timesheet back to the command's document path.
func saveSession(cmd *cobra.Command, svc *service.TimesheetService) error {
	if svc.Path() == "" {
		return svc.SaveAs(timesheetFile(cmd))
	}
	return svc.Save()
}

// totalsLine formats the running totals the way every mutation reports
// them: total and billable hours plus the per-initial billable groups.
func totalsLine(t *timesheet.Timesheet) string {
	groups := ""
	letters := t.GroupLetters()
	if len(letters) > 0 {
		byLetter := t.ProjectGroups()
		parts := make([]string, 0, len(letters))
		for _, letter := range letters {
			parts = append(parts, fmt.Sprintf("%s: %sh", letter, timesheet.FormatHours(byLetter[letter])))
		}
		groups = fmt.Sprintf(" [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("Total Time: %s hours (Billable: %s hours)%s",
		timesheet.FormatHours(t.TotalHours()),
		timesheet.FormatHours(t.BillableHours()),
		groups)
}

// expectedLine formats the projected end-of-workday clock time.
func expectedLine(svc *service.TimesheetService) string {
	return fmt.Sprintf("Expected Time: %s", timeutil.FormatClock(svc.ExpectedEnd()))
}

// printTotals writes the totals footer shown after listings and mutations.
func printTotals(svc *service.TimesheetService) {
	_, _ = fmt.Fprintln(deps.Stdout, totalsLine(svc.Sheet()))
	_, _ = fmt.Fprintln(deps.Stdout, expectedLine(svc))
}

// billableMarker renders the billable column the way the saved document's
// producers always have: "X" for billable, blank otherwise.
func billableMarker(billable bool) string {
	if billable {
		return "X"
	}
	return " "
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
