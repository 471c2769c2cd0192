package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, project groups, and the expected end of day",
	Long: `Show the timesheet aggregates: total worked hours, billable hours, the
lunch offset, billable hours grouped by project initial, and the
projected end of the workday relative to the configured start.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showSummary(cmd)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// showSummary prints the aggregate report
func showSummary(cmd *cobra.Command) {
	svc, err := openSession(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	sheet := svc.Sheet()

	_, _ = fmt.Fprintf(deps.Stdout, "Summary for %s\n", timesheetFile(cmd))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:        %d %s\n", sheet.Len(), pluralize("entry", sheet.Len()))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:     %s hours\n", timesheet.FormatHours(sheet.TotalHours()))
	_, _ = fmt.Fprintf(deps.Stdout, "Billable time:  %s hours\n", timesheet.FormatHours(sheet.BillableHours()))
	_, _ = fmt.Fprintf(deps.Stdout, "Lunch offset:   %s hours\n", timesheet.FormatHours(sheet.OffsetHours()))

	letters := sheet.GroupLetters()
	if len(letters) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Billable by project initial:")
		byLetter := sheet.ProjectGroups()
		for _, letter := range letters {
			_, _ = fmt.Fprintf(deps.Stdout, "  %s: %sh\n", letter, timesheet.FormatHours(byLetter[letter]))
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Expected end of day (%s start): %s\n",
		timeutil.FormatClock(svc.StartOfDay()), timeutil.FormatClock(svc.ExpectedEnd()))
}
