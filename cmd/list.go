package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries with running totals",
	Long: `List the entries of the timesheet document in insertion order, with
the running totals and the projected end of the workday.

The index column is what the edit and remove commands refer to.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listEntries prints the entry table and the totals footer
func listEntries(cmd *cobra.Command) {
	svc, err := openSession(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	entries := svc.Sheet().Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No entries in %s\n", timesheetFile(cmd))
		return
	}

	maxIndexWidth := len(fmt.Sprintf("%d", len(entries)))
	maxProjectWidth := 0
	for _, e := range entries {
		if len(e.Project) > maxProjectWidth {
			maxProjectWidth = len(e.Project)
		}
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Entries in %s:\n", timesheetFile(cmd))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	for i, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %5s  %s  %-*s  %s  (%s)\n",
			maxIndexWidth,
			i+1, // 1-based index for user reference
			timesheet.FormatHours(e.Hours),
			billableMarker(e.Billable),
			maxProjectWidth,
			e.Project,
			e.Description,
			e.Timestamp)
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	printTotals(svc)
}
