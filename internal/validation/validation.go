package validation

import (
	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/errors"
)

// DayNumber checks that a tracker day number is within the fixed range.
func DayNumber(n int) error {
	if n < 1 || n > constants.TrackerDays {
		return errors.InvalidInputf("day number %d out of range [1,%d]", n, constants.TrackerDays)
	}
	return nil
}

// Duration checks that a session length is positive.
func Duration(minutes int) error {
	if minutes <= 0 {
		return errors.InvalidInputf("duration must be positive, got %d", minutes)
	}
	return nil
}

// RecurrencePattern checks that a pattern string is one of the known
// values.
func RecurrencePattern(p constants.RecurrencePattern) error {
	switch p {
	case constants.RecurrenceDaily, constants.RecurrenceWeekly, constants.RecurrenceMonthly:
		return nil
	default:
		return errors.InvalidInputf("invalid recurrence pattern: %q", p)
	}
}

// AssignedBy checks that an assignment origin is one of the known
// values.
func AssignedBy(a constants.AssignedBy) error {
	switch a {
	case constants.AssignedByManual, constants.AssignedByAI:
		return nil
	default:
		return errors.InvalidInputf("invalid assignment origin: %q", a)
	}
}
