package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/chloekelly42/timesheetTracker/internal/storage"
)

// newAddCommand builds a throwaway command with the add command's flags
func newAddCommand(path string) *cobra.Command {
	cmd := newFileCommand(path)
	cmd.Flags().StringP("project", "p", "", "")
	cmd.Flags().BoolP("billable", "b", false, "")
	return cmd
}

func TestAddEntryCreatesDocument(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	path := tempDocPath(t)
	cmd := newAddCommand(path)
	_ = cmd.Flags().Set("project", "Widgets")
	_ = cmd.Flags().Set("billable", "true")

	addEntry(cmd, []string{"2.5", "built", "widgets"})

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}

	output := stdout.String()
	if !strings.Contains(output, "Logged: 2.5 hours on Widgets at 09:00:00 AM") {
		t.Errorf("missing log line in output: %s", output)
	}
	if !strings.Contains(output, "Total Time: 2.5 hours (Billable: 2.5 hours) [W: 2.5h]") {
		t.Errorf("missing totals in output: %s", output)
	}
	if !strings.Contains(output, "Expected Time: 10:30 AM") {
		t.Errorf("missing expected time in output: %s", output)
	}

	loaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if loaded.Len() != 1 {
		t.Errorf("document has %d entries, expected 1", loaded.Len())
	}
	if loaded.Entries()[0].Description != "built widgets" {
		t.Errorf("Description = %q, expected %q", loaded.Entries()[0].Description, "built widgets")
	}
}

func TestAddEntryDefaultProject(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	cmd := newAddCommand(tempDocPath(t))
	addEntry(cmd, []string{"0.5", "standup"})

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}
	if !strings.Contains(stdout.String(), "0.5 hours on kdg") {
		t.Errorf("expected the configured default project, got: %s", stdout.String())
	}
}

func TestAddEntryAppendsToExistingDocument(t *testing.T) {
	d, _, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	path := seedDocument(t)
	cmd := newAddCommand(path)
	addEntry(cmd, []string{"1.0"})

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}

	// Run a second add against the same file
	d2, _, _, exitCode2 := testDeps()
	SetDeps(d2)
	addEntry(newAddCommand(path), []string{"2.0"})

	if *exitCode2 != 0 {
		t.Fatalf("second add exit code = %d, stderr: %s", *exitCode2, d2.Stderr)
	}

	loaded, err := storage.Load(path)
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("document has %d entries, expected 2", loaded.Len())
	}
}

func TestAddEntryLunchOnlyMovesExpectedTime(t *testing.T) {
	d, stdout, _, exitCode := testDeps()
	SetDeps(d)
	defer ResetDeps()

	cmd := newAddCommand(tempDocPath(t))
	_ = cmd.Flags().Set("project", "Lunch")
	addEntry(cmd, []string{"1.0"})

	if *exitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", *exitCode, d.Stderr)
	}

	output := stdout.String()
	if !strings.Contains(output, "Total Time: 0.0 hours (Billable: 0.0 hours)") {
		t.Errorf("lunch must not count as worked time: %s", output)
	}
	if !strings.Contains(output, "Expected Time: 9:00 AM") {
		t.Errorf("lunch must push the expected end out: %s", output)
	}
}

func TestAddEntryInvalidHours(t *testing.T) {
	tests := []struct {
		name  string
		hours string
		want  string
	}{
		{"not numeric", "abc", "time must be a number"},
		{"zero", "0", "time must be greater than zero"},
		{"bad increment", "0.05", "time must be in increments of 0.1 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, stderr, exitCode := testDeps()
			SetDeps(d)
			defer ResetDeps()

			path := tempDocPath(t)
			addEntry(newAddCommand(path), []string{tt.hours})

			if *exitCode != 1 {
				t.Errorf("exit code = %d, expected 1", *exitCode)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr %q missing %q", stderr.String(), tt.want)
			}
			if !strings.Contains(stderr.String(), "Hint:") {
				t.Errorf("validation errors should carry a hint: %s", stderr.String())
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Error("failed add must not create the document")
			}
		})
	}
}
