// Package timeutil provides the 12-hour wall-clock parsing and formatting
// shared by the CLI and TUI frontends.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ClockLayout is the 12-hour clock format used for the start of day
	// and the projected end of day (e.g. "8:00 AM").
	ClockLayout = "3:04 PM"

	// TimestampLayout is the format entry timestamps are captured in
	// (e.g. "09:00:00 AM").
	TimestampLayout = "03:04:05 PM"
)

// ParseClock parses a 12-hour clock string like "8:00 AM". The result
// carries only the time of day; its date components are the zero date.
func ParseClock(input string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: expected a format like \"8:00 AM\"", input)
	}
	return t, nil
}

// FormatClock formats a time as a 12-hour clock string like "11:30 AM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// Timestamp formats the moment an entry is submitted, e.g. "02:15:09 PM".
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
