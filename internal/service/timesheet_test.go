package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chloekelly42/timesheetTracker/internal/config"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
)

func newTestService() *TimesheetService {
	return NewTimesheetService(config.DefaultConfig())
}

func TestAddUsesConfiguredDefaultProject(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultProject = "acme"
	svc := NewTimesheetService(cfg)

	e, err := svc.Add("1.5", "", "misc work", true, time.Now())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.Project != "acme" {
		t.Errorf("Project = %q, expected %q", e.Project, "acme")
	}
}

func TestAddCapturesTimestamp(t *testing.T) {
	svc := newTestService()
	now := time.Date(2024, time.March, 1, 14, 15, 9, 0, time.UTC)

	e, err := svc.Add("2.5", "Widgets", "built widgets", true, now)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if e.Timestamp != "02:15:09 PM" {
		t.Errorf("Timestamp = %q, expected %q", e.Timestamp, "02:15:09 PM")
	}
}

func TestAddRejectsInvalidHoursText(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		input   string
		wantErr error
	}{
		{"abc", timesheet.ErrHoursNotNumeric},
		{"0", timesheet.ErrHoursNotPositive},
		{"0.05", timesheet.ErrHoursIncrement},
	}

	for _, tt := range tests {
		if _, err := svc.Add(tt.input, "Widgets", "", true, time.Now()); !errors.Is(err, tt.wantErr) {
			t.Errorf("Add(%q) error = %v, expected %v", tt.input, err, tt.wantErr)
		}
	}
	if svc.Sheet().Len() != 0 {
		t.Errorf("failed adds must not create entries, got %d", svc.Sheet().Len())
	}
	if svc.Dirty() {
		t.Error("failed adds must not mark the session dirty")
	}
}

func TestDirtyLifecycle(t *testing.T) {
	svc := newTestService()
	if svc.Dirty() {
		t.Error("fresh session should not be dirty")
	}

	if _, err := svc.Add("1.0", "Widgets", "", true, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !svc.Dirty() {
		t.Error("session should be dirty after Add")
	}

	path := filepath.Join(t.TempDir(), "timesheet.json")
	if err := svc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	if svc.Dirty() {
		t.Error("session should be clean after SaveAs")
	}
	if svc.Path() != path {
		t.Errorf("Path = %q, expected %q", svc.Path(), path)
	}

	entries := svc.Sheet().Entries()
	if err := svc.Remove(entries[0]); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !svc.Dirty() {
		t.Error("session should be dirty after Remove")
	}
	if err := svc.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if svc.Dirty() {
		t.Error("session should be clean after Save")
	}
}

func TestSaveWithoutFile(t *testing.T) {
	svc := newTestService()
	if err := svc.Save(); !errors.Is(err, ErrNoFile) {
		t.Errorf("Save error = %v, expected ErrNoFile", err)
	}
}

func TestNewDiscardsSession(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Add("1.0", "Widgets", "", true, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "timesheet.json")
	if err := svc.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	svc.New()

	if svc.Sheet().Len() != 0 {
		t.Errorf("New should reset entries, got %d", svc.Sheet().Len())
	}
	if svc.Path() != "" {
		t.Errorf("New should clear the file association, got %q", svc.Path())
	}
	if svc.Dirty() {
		t.Error("New should clear the dirty flag")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timesheet.json")

	writer := newTestService()
	if _, err := writer.Add("2.5", "Widgets", "built widgets", true, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := writer.Add("1.0", "lunch", "", false, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := writer.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	reader := newTestService()
	if err := reader.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	sheet := reader.Sheet()
	if sheet.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", sheet.Len())
	}
	if got := sheet.TotalHours(); got != 2.5 {
		t.Errorf("TotalHours = %v, expected 2.5", got)
	}
	if got := sheet.OffsetHours(); got != 1.0 {
		t.Errorf("OffsetHours = %v, expected 1.0", got)
	}
	if reader.Dirty() {
		t.Error("freshly loaded session should not be dirty")
	}
}

func TestLoadFailureKeepsCurrentSheet(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Add("1.0", "Widgets", "keep me", true, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	badPath := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(badPath, []byte("{ not json"), 0644); err != nil {
		t.Fatalf("failed to write broken file: %v", err)
	}

	if err := svc.Load(badPath); err == nil {
		t.Fatal("expected Load to fail on a malformed document")
	}

	if svc.Sheet().Len() != 1 {
		t.Errorf("failed Load must keep the current sheet, got %d entries", svc.Sheet().Len())
	}
	if svc.Sheet().Entries()[0].Description != "keep me" {
		t.Error("failed Load corrupted the current sheet")
	}
}

func TestEditViaService(t *testing.T) {
	svc := newTestService()
	e, err := svc.Add("1.0", "Widgets", "initial", true, time.Now())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	originalTimestamp := e.Timestamp

	edited, err := svc.Edit(e, "2.0", "", "reworked", false)
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if edited.Timestamp != originalTimestamp {
		t.Errorf("Timestamp = %q, expected preserved %q", edited.Timestamp, originalTimestamp)
	}
	if edited.Project != config.DefaultConfig().DefaultProject {
		t.Errorf("empty project should take the configured default, got %q", edited.Project)
	}
	if edited.Billable {
		t.Error("Billable should be false after edit")
	}

	if _, err := svc.Edit(edited, "abc", "x", "", true); !errors.Is(err, timesheet.ErrHoursNotNumeric) {
		t.Errorf("Edit with bad hours error = %v, expected ErrHoursNotNumeric", err)
	}
}

func TestEntryAt(t *testing.T) {
	svc := newTestService()

	if _, err := svc.EntryAt(1); !errors.Is(err, ErrNoEntries) {
		t.Errorf("EntryAt on empty sheet error = %v, expected ErrNoEntries", err)
	}

	first, _ := svc.Add("1.0", "alpha", "", true, time.Now())
	second, _ := svc.Add("2.0", "beta", "", true, time.Now())

	got, err := svc.EntryAt(1)
	if err != nil {
		t.Fatalf("EntryAt(1) failed: %v", err)
	}
	if got != first {
		t.Error("EntryAt(1) should return the first entry in insertion order")
	}

	got, err = svc.EntryAt(2)
	if err != nil {
		t.Fatalf("EntryAt(2) failed: %v", err)
	}
	if got != second {
		t.Error("EntryAt(2) should return the second entry")
	}

	for _, index := range []int{0, -1, 3} {
		_, err := svc.EntryAt(index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("EntryAt(%d) error = %v, expected ErrIndexOutOfRange", index, err)
		}
		if err != nil && !strings.Contains(err.Error(), "valid range is 1-2") {
			t.Errorf("EntryAt(%d) error %q should mention the valid range", index, err)
		}
	}
}

func TestExpectedEnd(t *testing.T) {
	cfg := config.DefaultConfig() // 8:00 AM start
	svc := NewTimesheetService(cfg)

	if _, err := svc.Add("2.5", "Widgets", "", true, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Add("1.0", "lunch", "", false, time.Now()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if got := timeutil.FormatClock(svc.ExpectedEnd()); got != "11:30 AM" {
		t.Errorf("ExpectedEnd = %q, expected %q", got, "11:30 AM")
	}
}

func TestStartOfDayFallsBackOnBadConfig(t *testing.T) {
	svc := NewTimesheetService(config.Config{StartOfDay: "not a clock", DefaultProject: "kdg"})

	if got := timeutil.FormatClock(svc.StartOfDay()); got != "8:00 AM" {
		t.Errorf("StartOfDay = %q, expected fallback %q", got, "8:00 AM")
	}
}
