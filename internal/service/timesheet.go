package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/chloekelly42/timesheetTracker/internal/config"
	"github.com/chloekelly42/timesheetTracker/internal/storage"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
)

// Common errors for the timesheet service
var (
	ErrNoFile          = errors.New("no file associated with this timesheet")
	ErrNoEntries       = errors.New("no entries found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// TimesheetService owns the in-memory timesheet for the current session,
// along with the file it came from and whether it has unsaved changes.
// The dirty flag is session state, deliberately kept out of the aggregate.
type TimesheetService struct {
	cfg   config.Config
	sheet *timesheet.Timesheet
	path  string
	dirty bool
}

// NewTimesheetService creates a service with an empty timesheet.
func NewTimesheetService(cfg config.Config) *TimesheetService {
	return &TimesheetService{
		cfg:   cfg,
		sheet: timesheet.New(),
	}
}

// Sheet returns the timesheet this session operates on.
func (s *TimesheetService) Sheet() *timesheet.Timesheet {
	return s.sheet
}

// Path returns the file the timesheet was loaded from or last saved to,
// or "" for an unsaved session.
func (s *TimesheetService) Path() string {
	return s.path
}

// Dirty reports whether there are changes not yet written to disk.
func (s *TimesheetService) Dirty() bool {
	return s.dirty
}

// New discards the current timesheet and starts an empty, unassociated
// one. Frontends confirm with the user before calling this when Dirty.
func (s *TimesheetService) New() {
	s.sheet = timesheet.New()
	s.path = ""
	s.dirty = false
}

// Load replaces the session's timesheet with the document at path. The
// current timesheet is kept untouched unless the whole document parses.
func (s *TimesheetService) Load(path string) error {
	sheet, err := storage.Load(path)
	if err != nil {
		return err
	}
	s.sheet = sheet
	s.path = path
	s.dirty = false
	return nil
}

// Save writes the timesheet back to its associated file.
func (s *TimesheetService) Save() error {
	if s.path == "" {
		return ErrNoFile
	}
	return s.SaveAs(s.path)
}

// SaveAs writes the timesheet to path and associates the session with it.
func (s *TimesheetService) SaveAs(path string) error {
	if err := storage.Save(path, s.sheet); err != nil {
		return err
	}
	s.path = path
	s.dirty = false
	return nil
}

// Add parses the hours text, applies the configured default project to an
// empty label, captures the timestamp from now, and appends the entry.
func (s *TimesheetService) Add(hoursText, project, description string, billable bool, now time.Time) (*timesheet.Entry, error) {
	hours, err := timesheet.ParseHours(hoursText)
	if err != nil {
		return nil, err
	}
	if project == "" {
		project = s.cfg.DefaultProject
	}
	e, err := s.sheet.Add(hours, project, description, billable, timeutil.Timestamp(now))
	if err != nil {
		return nil, err
	}
	s.dirty = true
	return e, nil
}

// Edit replaces an entry's fields, keeping its original timestamp. The
// replacement is validated before the original entry is touched.
func (s *TimesheetService) Edit(e *timesheet.Entry, hoursText, project, description string, billable bool) (*timesheet.Entry, error) {
	hours, err := timesheet.ParseHours(hoursText)
	if err != nil {
		return nil, err
	}
	if project == "" {
		project = s.cfg.DefaultProject
	}
	edited, err := s.sheet.Edit(e, hours, project, description, billable)
	if err != nil {
		return nil, err
	}
	s.dirty = true
	return edited, nil
}

// Remove deletes an entry and reverses its aggregate contribution.
func (s *TimesheetService) Remove(e *timesheet.Entry) error {
	if err := s.sheet.Remove(e); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// EntryAt returns the entry at a 1-based user index in insertion order,
// the numbering the CLI list output shows.
func (s *TimesheetService) EntryAt(userIndex int) (*timesheet.Entry, error) {
	entries := s.sheet.Entries()
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	if userIndex < 1 || userIndex > len(entries) {
		return nil, fmt.Errorf("%w: valid range is 1-%d", ErrIndexOutOfRange, len(entries))
	}
	return entries[userIndex-1], nil
}

// StartOfDay returns the configured workday start. The config is
// validated on load, so a parse failure here falls back to the default.
func (s *TimesheetService) StartOfDay() time.Time {
	start, err := timeutil.ParseClock(s.cfg.StartOfDay)
	if err != nil {
		start, _ = timeutil.ParseClock(config.DefaultConfig().StartOfDay)
	}
	return start
}

// ExpectedEnd projects the end-of-workday clock time from the current
// aggregates and the configured start of day.
func (s *TimesheetService) ExpectedEnd() time.Time {
	return s.sheet.ExpectedEnd(s.StartOfDay())
}
