package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// hoursEpsilon is the tolerance used when checking that an hours value
// lands on a 0.1 increment despite binary floating point representation.
const hoursEpsilon = 1e-9

// ParseHours parses a user-supplied hours string (e.g. "2.5") and
// validates it. Valid values are positive multiples of 0.1 hours.
func ParseHours(input string) (float64, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrHoursNotNumeric, input)
	}
	if err := ValidateHours(hours); err != nil {
		return 0, err
	}
	return hours, nil
}

// ValidateHours checks that hours is positive and a multiple of 0.1.
// The increment check compares hours*10 against its nearest integer
// within a small epsilon, so values like 0.3 pass despite not being
// exactly representable.
func ValidateHours(hours float64) error {
	if hours <= 0 {
		return ErrHoursNotPositive
	}
	tenths := hours * 10
	if math.Abs(tenths-math.Round(tenths)) > hoursEpsilon {
		return ErrHoursIncrement
	}
	return nil
}

// FormatHours formats an hours value with one decimal place, the
// precision every valid entry carries.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 1, 64)
}
