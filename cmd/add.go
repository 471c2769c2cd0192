package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <hours> [description...]",
	Short: "Log a work entry",
	Long: `Log a work entry against the timesheet document.

Hours must be a positive multiple of 0.1. The project defaults to the
configured default project when omitted. An entry with project "lunch"
(any case) is not counted as worked time; it only moves the expected end
of day. The entry timestamp is captured at the moment of submission.

Examples:
  timesheet add 2.5 built widgets --project Widgets --billable
  timesheet add 0.5 standup
  timesheet add 1.0 --project Lunch`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("project", "p", "", "project label for the entry")
	addCmd.Flags().BoolP("billable", "b", false, "count the entry toward billable time")
}

// addEntry parses arguments, appends the entry, and saves the document
func addEntry(cmd *cobra.Command, args []string) {
	svc, err := openSession(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	hoursText := args[0]
	description := strings.Join(args[1:], " ")
	project, _ := cmd.Flags().GetString("project")
	billable, _ := cmd.Flags().GetBool("billable")

	e, err := svc.Add(hoursText, project, description, billable, deps.Now())
	if err != nil {
		if timesheet.IsValidationError(err) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: hours must be a positive multiple of 0.1, e.g. 0.3 or 2.5")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	if err := saveSession(cmd, svc); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: check that the file is writable: %s\n", timesheetFile(cmd))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s hours on %s at %s\n",
		timesheet.FormatHours(e.Hours), e.Project, e.Timestamp)
	printTotals(svc)
}
