package storage

import (
	"fmt"
	"math"
	"os"

	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
)

// Load reads and decodes a timesheet document. Callers keep their current
// in-memory timesheet until Load returns successfully.
func Load(path string) (*timesheet.Timesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return t, nil
}

// Save encodes the timesheet and writes it with a plain truncating write.
// Creates the file with 0644 permissions if it does not exist.
func Save(path string, t *timesheet.Timesheet) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Health describes the state of a timesheet document: how many entries it
// holds and whether its stored scalar totals agree with a recomputation
// over the entry list.
type Health struct {
	EntryCount int
	Stored     StoredTotals
	Recomputed StoredTotals
}

// totalsEpsilon bounds the drift tolerated between stored and recomputed
// totals before a document is flagged stale.
const totalsEpsilon = 1e-6

// Consistent reports whether the stored totals match the recomputed ones.
func (h Health) Consistent() bool {
	return math.Abs(h.Stored.TotalTime-h.Recomputed.TotalTime) <= totalsEpsilon &&
		math.Abs(h.Stored.BillableTime-h.Recomputed.BillableTime) <= totalsEpsilon &&
		math.Abs(h.Stored.ExpectedTimeOffset-h.Recomputed.ExpectedTimeOffset) <= totalsEpsilon
}

// Inspect reads a document and compares its stored totals against a
// recomputation. The stored totals are only a debugging aid, so a
// mismatch means the file was hand-edited or written by a buggy producer,
// not that data was lost.
func Inspect(path string) (Health, error) {
	var health Health

	data, err := os.ReadFile(path)
	if err != nil {
		return health, fmt.Errorf("failed to read %s: %w", path, err)
	}

	entries, stored, err := decode(data)
	if err != nil {
		return health, err
	}

	t := timesheet.FromEntries(entries)
	health.EntryCount = t.Len()
	health.Stored = stored
	health.Recomputed = StoredTotals{
		TotalTime:          t.TotalHours(),
		BillableTime:       t.BillableHours(),
		ExpectedTimeOffset: t.OffsetHours(),
	}
	return health, nil
}
