// Package storage implements the persisted timesheet document: a single
// JSON file holding the entry list plus the scalar totals. The stored
// totals exist for human readability only; decoding always recomputes the
// aggregates from the entry list, so a hand-edited or stale file cannot
// poison the in-memory state.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// ErrMalformedDocument is wrapped by every decode failure caused by the
// document's shape (as opposed to I/O). Callers that must preserve their
// current in-memory timesheet match on it with errors.Is.
var ErrMalformedDocument = errors.New("malformed timesheet document")

// entryRecord is the wire shape of one entry. Field order matches the
// document format.
type entryRecord struct {
	Time        float64 `json:"time"`
	Project     string  `json:"project"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
	Billable    bool    `json:"billable"`
}

// document is the wire shape of the whole file. The three scalar totals
// are derivable from the entries and are not trusted on read.
type document struct {
	Entries            []entryRecord `json:"entries"`
	TotalTime          float64       `json:"total_time"`
	BillableTime       float64       `json:"billable_time"`
	ExpectedTimeOffset float64       `json:"expected_time_offset"`
}

// Encode serializes a timesheet to the document format, indented with
// four spaces for hand inspection.
func Encode(t *timesheet.Timesheet) ([]byte, error) {
	doc := document{
		Entries:            make([]entryRecord, 0, t.Len()),
		TotalTime:          t.TotalHours(),
		BillableTime:       t.BillableHours(),
		ExpectedTimeOffset: t.OffsetHours(),
	}
	for _, e := range t.Entries() {
		doc.Entries = append(doc.Entries, entryRecord{
			Time:        e.Hours,
			Project:     e.Project,
			Description: e.Description,
			Timestamp:   e.Timestamp,
			Billable:    e.Billable,
		})
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a document and builds a timesheet with freshly recomputed
// aggregates. It fails with a wrapped ErrMalformedDocument when the
// document lacks an "entries" key, an entry lacks one of its required
// fields, or an entry's "time" is not numeric. A missing "billable"
// defaults to true for backward-compatible reads.
func Decode(data []byte) (*timesheet.Timesheet, error) {
	entries, _, err := decode(data)
	if err != nil {
		return nil, err
	}
	return timesheet.FromEntries(entries), nil
}

// StoredTotals are the scalar aggregates as written in the document,
// before recomputation. They are non-authoritative.
type StoredTotals struct {
	TotalTime          float64
	BillableTime       float64
	ExpectedTimeOffset float64
}

// decode parses the document into entries and the stored totals.
func decode(data []byte) ([]timesheet.Entry, StoredTotals, error) {
	var totals StoredTotals

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, totals, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	rawEntries, ok := raw["entries"]
	if !ok {
		return nil, totals, fmt.Errorf("%w: missing \"entries\"", ErrMalformedDocument)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawEntries, &items); err != nil {
		return nil, totals, fmt.Errorf("%w: \"entries\" is not a list: %v", ErrMalformedDocument, err)
	}

	entries := make([]timesheet.Entry, 0, len(items))
	for i, item := range items {
		e, err := decodeEntry(item)
		if err != nil {
			return nil, totals, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	// Stored totals are optional; ignore any that are absent or unreadable.
	_ = unmarshalOptional(raw, "total_time", &totals.TotalTime)
	_ = unmarshalOptional(raw, "billable_time", &totals.BillableTime)
	_ = unmarshalOptional(raw, "expected_time_offset", &totals.ExpectedTimeOffset)

	return entries, totals, nil
}

// decodeEntry parses one entry object, enforcing the required fields.
func decodeEntry(data []byte) (timesheet.Entry, error) {
	var e timesheet.Entry

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return e, fmt.Errorf("%w: not an object: %v", ErrMalformedDocument, err)
	}

	for _, required := range []string{"time", "project", "description", "timestamp"} {
		if _, ok := fields[required]; !ok {
			return e, fmt.Errorf("%w: missing %q", ErrMalformedDocument, required)
		}
	}

	if err := json.Unmarshal(fields["time"], &e.Hours); err != nil {
		return e, fmt.Errorf("%w: \"time\" is not numeric", ErrMalformedDocument)
	}
	if err := json.Unmarshal(fields["project"], &e.Project); err != nil {
		return e, fmt.Errorf("%w: \"project\" is not a string", ErrMalformedDocument)
	}
	if err := json.Unmarshal(fields["description"], &e.Description); err != nil {
		return e, fmt.Errorf("%w: \"description\" is not a string", ErrMalformedDocument)
	}
	if err := json.Unmarshal(fields["timestamp"], &e.Timestamp); err != nil {
		return e, fmt.Errorf("%w: \"timestamp\" is not a string", ErrMalformedDocument)
	}

	// Entries written before the billable flag existed default to billable.
	e.Billable = true
	if rawBillable, ok := fields["billable"]; ok {
		if err := json.Unmarshal(rawBillable, &e.Billable); err != nil {
			return e, fmt.Errorf("%w: \"billable\" is not a boolean", ErrMalformedDocument)
		}
	}

	return e, nil
}

func unmarshalOptional(raw map[string]json.RawMessage, key string, dst *float64) error {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(msg, dst)
}
