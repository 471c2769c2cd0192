package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/storage"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a timesheet document's health",
	Long: `Parse the timesheet document and report on its health.

The scalar totals stored in the document are a debugging aid, not the
source of truth; this command recomputes them from the entry list and
flags any disagreement, which indicates a hand-edited or stale file.
Loading always uses the recomputed values either way.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateDocument(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateDocument checks the document and reports status
func validateDocument(cmd *cobra.Command) {
	path := timesheetFile(cmd)

	health, err := storage.Inspect(path)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Timesheet document: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:              %d\n", health.EntryCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:           %s stored / %s recomputed\n",
		timesheet.FormatHours(health.Stored.TotalTime), timesheet.FormatHours(health.Recomputed.TotalTime))
	_, _ = fmt.Fprintf(deps.Stdout, "Billable time:        %s stored / %s recomputed\n",
		timesheet.FormatHours(health.Stored.BillableTime), timesheet.FormatHours(health.Recomputed.BillableTime))
	_, _ = fmt.Fprintf(deps.Stdout, "Expected time offset: %s stored / %s recomputed\n",
		timesheet.FormatHours(health.Stored.ExpectedTimeOffset), timesheet.FormatHours(health.Recomputed.ExpectedTimeOffset))

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Consistent() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: stored totals match recomputation")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: stored totals are stale; they are recomputed on load and corrected on the next save")
	}
}
