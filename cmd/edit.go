package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an existing entry",
	Long: `Edit the hours, project, description, or billable flag of an entry.

The index refers to the entry number shown by list (starting from 1).
Fields not given keep their current values, and the entry's original
timestamp is always preserved. The replacement hours are validated
before anything changes, so a failed edit leaves the entry as it was.

Note that an edited entry moves to the end of the list, so indices of
later entries shift.

Examples:
  timesheet edit 2 --hours 3.0
  timesheet edit 2 --project Widgets --billable=false
  timesheet edit 2 --description 'wrote code and cried'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editEntry(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("hours", "", "new hours value (positive multiple of 0.1)")
	editCmd.Flags().String("project", "", "new project label")
	editCmd.Flags().String("description", "", "new description")
	editCmd.Flags().Bool("billable", false, "new billable flag")
}

// editEntry modifies an existing entry and saves the document
func editEntry(cmd *cobra.Command, args []string) {
	userIndex, err := strconv.Atoi(args[0])
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", args[0])
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: list entries with 'timesheet list' to see available indices")
		deps.Exit(1)
		return
	}

	if !cmd.Flags().Changed("hours") && !cmd.Flags().Changed("project") &&
		!cmd.Flags().Changed("description") && !cmd.Flags().Changed("billable") {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: At least one of --hours, --project, --description, --billable is required")
		deps.Exit(1)
		return
	}

	svc, err := openSession(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	e, err := svc.EntryAt(userIndex)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	// Unchanged fields keep the entry's current values.
	hoursText := timesheet.FormatHours(e.Hours)
	if cmd.Flags().Changed("hours") {
		hoursText, _ = cmd.Flags().GetString("hours")
	}
	project := e.Project
	if cmd.Flags().Changed("project") {
		project, _ = cmd.Flags().GetString("project")
	}
	description := e.Description
	if cmd.Flags().Changed("description") {
		description, _ = cmd.Flags().GetString("description")
	}
	billable := e.Billable
	if cmd.Flags().Changed("billable") {
		billable, _ = cmd.Flags().GetBool("billable")
	}

	edited, err := svc.Edit(e, hoursText, project, description, billable)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		if timesheet.IsValidationError(err) {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: hours must be a positive multiple of 0.1, e.g. 0.3 or 2.5")
		}
		deps.Exit(1)
		return
	}

	if err := saveSession(cmd, svc); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Updated entry %d: %s hours on %s\n",
		userIndex, timesheet.FormatHours(edited.Hours), edited.Project)
	printTotals(svc)
}
