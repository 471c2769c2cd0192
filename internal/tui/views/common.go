package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected entry index (-1 for none)
}

// RenderEntryList renders a list of entries with aligned columns
func RenderEntryList(entries []*timesheet.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	maxIndexWidth := 0
	maxProjectWidth := 0
	maxDescWidth := 0

	type entryData struct {
		index     string
		hours     string
		billable  string
		project   string
		desc      string
		timestamp string
	}
	data := make([]entryData, len(entries))

	for i, e := range entries {
		indexStr := fmt.Sprintf("[%d]", i+1)
		if len(indexStr) > maxIndexWidth {
			maxIndexWidth = len(indexStr)
		}

		if w := utf8.RuneCountInString(e.Project); w > maxProjectWidth {
			maxProjectWidth = w
		}
		if w := utf8.RuneCountInString(e.Description); w > maxDescWidth {
			maxDescWidth = w
		}

		billable := " "
		if e.Billable {
			billable = "$"
		}

		data[i] = entryData{
			index:     indexStr,
			hours:     timesheet.FormatHours(e.Hours) + "h",
			billable:  billable,
			project:   e.Project,
			desc:      e.Description,
			timestamp: e.Timestamp,
		}
	}

	// Limit description width to leave room for the timestamp column
	maxAllowedDescWidth := opts.Width - maxIndexWidth - maxProjectWidth - 30
	if maxAllowedDescWidth < 20 {
		maxAllowedDescWidth = 20
	}
	if maxDescWidth > maxAllowedDescWidth {
		maxDescWidth = maxAllowedDescWidth
	}

	var b strings.Builder
	for i, ed := range data {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		// Truncate on runes so a multi-byte character is never split
		desc := ed.desc
		if runes := []rune(desc); len(runes) > maxDescWidth {
			desc = string(runes[:maxDescWidth-1]) + "…"
		}

		index := styles.EntryIndex.Render(fmt.Sprintf("%-*s", maxIndexWidth, ed.index))
		hours := styles.EntryHours.Render(ed.hours)
		billable := styles.EntryBillable.Render(ed.billable)
		project := styles.EntryProject.Render(padRight(ed.project, maxProjectWidth))
		descCol := padRight(desc, maxDescWidth)
		timestamp := styles.EntryTimestamp.Render(ed.timestamp)

		line := fmt.Sprintf("%s %s %s %s %s %s", index, hours, billable, project, descCol, timestamp)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads by rune count so non-ASCII labels stay column-aligned
func padRight(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
