package cmd

import (
	"strings"
	"testing"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

func TestListEntriesEmptyDocument(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	path := tempDocPath(t)
	listEntries(newFileCommand(path))

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}
	if !strings.Contains(stdout.String(), "No entries in "+path) {
		t.Errorf("expected empty message, got: %s", stdout.String())
	}
}

func TestListEntriesShowsInsertionOrder(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	path := seedDocument(t,
		timesheet.Entry{Hours: 2.5, Project: "Widgets", Description: "built widgets", Timestamp: "09:00:00 AM", Billable: true},
		timesheet.Entry{Hours: 1.0, Project: "api", Description: "endpoints", Timestamp: "11:30:00 AM", Billable: false},
	)

	listEntries(newFileCommand(path))

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}

	output := stdout.String()
	for _, want := range []string{
		"Entries in " + path,
		"[1]",
		"[2]",
		"built widgets",
		"endpoints",
		"(09:00:00 AM)",
		"(11:30:00 AM)",
		"Total Time: 3.5 hours (Billable: 2.5 hours) [W: 2.5h]",
		"Expected Time: 11:30 AM",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	// Insertion order, not project order
	if strings.Index(output, "built widgets") > strings.Index(output, "endpoints") {
		t.Error("entries should list in insertion order")
	}

	// Billable marker column
	if !strings.Contains(output, " X ") {
		t.Errorf("billable entry should carry the X marker:\n%s", output)
	}
}
