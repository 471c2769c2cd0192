package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/service"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export timesheet entries to various formats",
	Long: `Export timesheet entries for programmatic use, backup, or migration.

Available formats:
  json    Export entries as JSON
  csv     Export entries as CSV

Examples:
  timesheet export json                 Export entries as JSON
  timesheet export csv > entries.csv    Export entries as CSV to a file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export timesheet entries as JSON",
	Long: `Export all entries of the timesheet document as JSON.

Output includes metadata (export timestamp, source file, entry count),
the entries, and the recomputed aggregates.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON(cmd)
	},
}

// exportCSVCmd represents the export csv command
var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export timesheet entries as CSV",
	Long: `Export all entries of the timesheet document as CSV with headers.

Columns: hours, billable, project, description, timestamp.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
}

// exportedEntry is the JSON export shape of one entry
type exportedEntry struct {
	Hours       float64 `json:"hours"`
	Billable    bool    `json:"billable"`
	Project     string  `json:"project"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
}

// exportedDocument is the JSON export envelope
type exportedDocument struct {
	ExportedAt    string            `json:"exported_at"`
	SourceFile    string            `json:"source_file"`
	EntryCount    int               `json:"entry_count"`
	Entries       []exportedEntry   `json:"entries"`
	TotalHours    float64           `json:"total_hours"`
	BillableHours float64           `json:"billable_hours"`
	OffsetHours   float64           `json:"offset_hours"`
	ProjectGroups map[string]float64 `json:"project_groups"`
}

// exportJSON writes the timesheet as JSON to stdout
func exportJSON(cmd *cobra.Command) {
	svc := openSessionOrExit(cmd)
	if svc == nil {
		return
	}

	sheet := svc.Sheet()
	doc := exportedDocument{
		ExportedAt:    deps.Now().Format(time.RFC3339),
		SourceFile:    timesheetFile(cmd),
		EntryCount:    sheet.Len(),
		Entries:       make([]exportedEntry, 0, sheet.Len()),
		TotalHours:    sheet.TotalHours(),
		BillableHours: sheet.BillableHours(),
		OffsetHours:   sheet.OffsetHours(),
		ProjectGroups: sheet.ProjectGroups(),
	}
	for _, e := range sheet.Entries() {
		doc.Entries = append(doc.Entries, exportedEntry{
			Hours:       e.Hours,
			Billable:    e.Billable,
			Project:     e.Project,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to encode JSON: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, string(data))
}

// exportCSV writes the timesheet as CSV to stdout
func exportCSV(cmd *cobra.Command) {
	svc := openSessionOrExit(cmd)
	if svc == nil {
		return
	}

	w := csv.NewWriter(deps.Stdout)

	if err := w.Write([]string{"hours", "billable", "project", "description", "timestamp"}); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write CSV: %v\n", err)
		deps.Exit(1)
		return
	}

	for _, e := range svc.Sheet().Entries() {
		record := []string{
			timesheet.FormatHours(e.Hours),
			fmt.Sprintf("%t", e.Billable),
			e.Project,
			e.Description,
			e.Timestamp,
		}
		if err := w.Write(record); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write CSV: %v\n", err)
			deps.Exit(1)
			return
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write CSV: %v\n", err)
		deps.Exit(1)
	}
}

// openSessionOrExit wraps openSession with the standard error reporting.
func openSessionOrExit(cmd *cobra.Command) *service.TimesheetService {
	svc, err := openSession(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return nil
	}
	return svc
}
