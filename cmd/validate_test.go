package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

func TestValidateHealthyDocument(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	path := seedDocument(t,
		timesheet.Entry{Hours: 2.5, Project: "Widgets", Description: "built widgets", Timestamp: "09:00:00 AM", Billable: true},
	)

	validateDocument(newFileCommand(path))

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}

	output := stdout.String()
	for _, want := range []string{
		"Timesheet document: " + path,
		"Entries:              1",
		"Total time:           2.5 stored / 2.5 recomputed",
		"Status: stored totals match recomputation",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestValidateStaleTotals(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	doc := `{
    "entries": [
        {
            "time": 2.5,
            "project": "Widgets",
            "description": "",
            "timestamp": "09:00:00 AM",
            "billable": true
        }
    ],
    "total_time": 10.0,
    "billable_time": 10.0,
    "expected_time_offset": 0.0
}`
	path := filepath.Join(t.TempDir(), "stale.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	validateDocument(newFileCommand(path))

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}

	output := stdout.String()
	if !strings.Contains(output, "Total time:           10.0 stored / 2.5 recomputed") {
		t.Errorf("output missing stored/recomputed line:\n%s", output)
	}
	if !strings.Contains(output, "Status: stored totals are stale") {
		t.Errorf("stale document should be flagged:\n%s", output)
	}
}

func TestValidateMissingFile(t *testing.T) {
	d, _, stderr, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	validateDocument(newFileCommand(tempDocPath(t)))

	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "failed to read") {
		t.Errorf("expected read error, got: %s", stderr.String())
	}
}

func TestValidateMalformedDocument(t *testing.T) {
	d, _, stderr, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"no_entries": true}`), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	validateDocument(newFileCommand(path))

	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(stderr.String(), "malformed timesheet document") {
		t.Errorf("expected malformed error, got: %s", stderr.String())
	}
}
