package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

var yesFlag bool

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove an entry by index",
	Long: `Remove an entry by its index number as shown by list.
A confirmation prompt is shown unless --yes is specified.

Example:
  timesheet remove 3
  timesheet remove 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeEntry(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

// removeEntry handles the deletion of a timesheet entry
func removeEntry(cmd *cobra.Command, indexStr string) {
	userIndex, err := strconv.Atoi(indexStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid index '%s'. Index must be a number\n", indexStr)
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

	_, _ = fmt.Fprintln(deps.Stdout, "Entry to remove:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s hours  %s  %s  %s  (%s)\n",
		timesheet.FormatHours(e.Hours), billableMarker(e.Billable), e.Project, e.Description, e.Timestamp)

	if !yesFlag {
		if !promptConfirmation() {
			_, _ = fmt.Fprintln(deps.Stdout, "Removal cancelled")
			return
		}
	}

	if err := svc.Remove(e); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	if err := saveSession(cmd, svc); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Removed entry %d\n", userIndex)
	printTotals(svc)
}

// promptConfirmation asks the user to confirm and reads the answer from
// stdin. Anything other than "y"/"yes" declines.
func promptConfirmation() bool {
	_, _ = fmt.Fprint(deps.Stdout, "Are you sure? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
