// Package timesheet implements the timesheet aggregate: an ordered list of
// logged work entries plus the running totals derived from it (total hours,
// billable hours, the lunch offset, and billable hours grouped by project
// initial). The aggregates are maintained incrementally on every mutation
// and always equal a full recomputation over the entry list.
package timesheet

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultProject is the sentinel substituted when an entry is added
	// with an empty project label.
	DefaultProject = "kdg"

	// LunchProject marks entries that do not count as worked time. The
	// comparison is case-insensitive.
	LunchProject = "lunch"

	// EmptyGroupKey is the project-group bucket for entries without a
	// project label.
	EmptyGroupKey = "?"
)

// Entry is one logged unit of work time. Timestamp is the wall-clock
// time-of-day captured when the entry was first created; edits preserve it.
type Entry struct {
	Hours       float64
	Project     string
	Description string
	Timestamp   string
	Billable    bool
}

// IsLunch reports whether the entry is a lunch entry, which contributes
// only to the expected-end-time offset.
func (e *Entry) IsLunch() bool {
	return strings.EqualFold(e.Project, LunchProject)
}

// GroupKey returns the project-group bucket for a project label: the first
// letter uppercased, or EmptyGroupKey for an empty label.
func GroupKey(project string) string {
	if project == "" {
		return EmptyGroupKey
	}
	r := []rune(project)[0]
	return string(unicode.ToUpper(r))
}

// Timesheet is the aggregate root. It owns the entry list and all derived
// totals; frontends read the totals through accessors instead of keeping
// parallel counters.
type Timesheet struct {
	entries       []*Entry
	totalHours    float64
	billableHours float64
	offsetHours   float64
	projectGroups map[string]float64
}

// New returns an empty timesheet.
func New() *Timesheet {
	return &Timesheet{
		projectGroups: make(map[string]float64),
	}
}

// FromEntries builds a timesheet from already-validated entries, e.g. the
// list decoded from a saved document. Aggregates are recomputed from
// scratch; any totals stored alongside the entries are ignored.
func FromEntries(entries []Entry) *Timesheet {
	t := New()
	for i := range entries {
		e := entries[i]
		t.entries = append(t.entries, &e)
	}
	t.Recompute()
	return t
}

// Add validates hours, substitutes DefaultProject for an empty project,
// appends a new entry, and folds it into the aggregates. The timestamp is
// supplied by the caller (captured at submission time, not here). On
// validation failure no entry is created and no aggregate changes.
func (t *Timesheet) Add(hours float64, project, description string, billable bool, timestamp string) (*Entry, error) {
	if err := ValidateHours(hours); err != nil {
		return nil, err
	}
	if project == "" {
		project = DefaultProject
	}
	e := &Entry{
		Hours:       hours,
		Project:     project,
		Description: description,
		Timestamp:   timestamp,
		Billable:    billable,
	}
	t.entries = append(t.entries, e)
	t.apply(e, 1)
	return e, nil
}

// Remove deletes the entry and reverses its aggregate contribution.
// Returns ErrEntryNotFound, with no state change, if the entry is not
// present.
func (t *Timesheet) Remove(e *Entry) error {
	for i, candidate := range t.entries {
		if candidate == e {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			t.apply(e, -1)
			return nil
		}
	}
	return ErrEntryNotFound
}

// Edit replaces an entry's fields, preserving its original timestamp. The
// replacement hours are validated before the original is touched, so a
// failed edit leaves the timesheet unchanged. The edited entry is
// re-appended, moving to the end of insertion order.
func (t *Timesheet) Edit(e *Entry, hours float64, project, description string, billable bool) (*Entry, error) {
	if err := ValidateHours(hours); err != nil {
		return nil, err
	}
	timestamp := e.Timestamp
	if err := t.Remove(e); err != nil {
		return nil, err
	}
	return t.Add(hours, project, description, billable, timestamp)
}

// Len returns the number of entries.
func (t *Timesheet) Len() int {
	return len(t.entries)
}

// Entries returns the entries in insertion order. The returned slice is a
// copy; the entries themselves are shared and serve as identities for
// Remove and Edit.
func (t *Timesheet) Entries() []*Entry {
	out := make([]*Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// TotalHours is the sum of hours over non-lunch entries.
func (t *Timesheet) TotalHours() float64 { return t.totalHours }

// BillableHours is the sum of hours over non-lunch billable entries.
func (t *Timesheet) BillableHours() float64 { return t.billableHours }

// OffsetHours is the sum of hours over lunch entries. It extends the
// expected end of day without counting as worked time.
func (t *Timesheet) OffsetHours() float64 { return t.offsetHours }

// ProjectGroups returns a copy of the billable-hours-by-initial map.
func (t *Timesheet) ProjectGroups() map[string]float64 {
	out := make(map[string]float64, len(t.projectGroups))
	for k, v := range t.projectGroups {
		out[k] = v
	}
	return out
}

// GroupLetters returns the project-group keys sorted alphabetically, the
// order frontends display them in.
func (t *Timesheet) GroupLetters() []string {
	letters := make([]string, 0, len(t.projectGroups))
	for k := range t.projectGroups {
		letters = append(letters, k)
	}
	sort.Strings(letters)
	return letters
}

// ExpectedEnd projects the clock time at which the workday ends: the start
// of day plus worked hours plus the lunch offset. Whole hours and rounded
// minutes are added separately, matching the persisted-format precision.
func (t *Timesheet) ExpectedEnd(startOfDay time.Time) time.Time {
	total := t.totalHours + t.offsetHours
	hours := int(total)
	minutes := int(math.Round((total - float64(hours)) * 60))
	return startOfDay.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
}

// Recompute rebuilds all aggregates from the entry list. Mutations keep
// the aggregates in sync incrementally; this is the authoritative path
// used after loading a document.
func (t *Timesheet) Recompute() {
	t.totalHours = 0
	t.billableHours = 0
	t.offsetHours = 0
	t.projectGroups = make(map[string]float64)
	for _, e := range t.entries {
		t.apply(e, 1)
	}
}

// apply folds an entry into (sign=1) or out of (sign=-1) the aggregates,
// using the single classification rule: lunch entries count only toward
// the offset; others toward the total, and toward billable hours and the
// project groups when billable.
func (t *Timesheet) apply(e *Entry, sign float64) {
	hours := sign * e.Hours
	if e.IsLunch() {
		t.offsetHours += hours
		return
	}
	t.totalHours += hours
	if !e.Billable {
		return
	}
	t.billableHours += hours
	key := GroupKey(e.Project)
	t.projectGroups[key] += hours
	// Accumulated float residue must not leave a ghost key behind once a
	// letter's entries are all gone.
	if math.Abs(t.projectGroups[key]) < hoursEpsilon {
		delete(t.projectGroups, key)
	}
}
