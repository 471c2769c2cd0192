package timesheet

import "errors"

// Common errors for timesheet operations
var (
	ErrHoursNotNumeric  = errors.New("time must be a number")
	ErrHoursNotPositive = errors.New("time must be greater than zero")
	ErrHoursIncrement   = errors.New("time must be in increments of 0.1 hours")
	ErrEntryNotFound    = errors.New("entry not found")
)

// IsValidationError reports whether err stems from invalid hours input.
// These are the errors a frontend should present as user mistakes rather
// than application failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrHoursNotNumeric) ||
		errors.Is(err, ErrHoursNotPositive) ||
		errors.Is(err, ErrHoursIncrement)
}
