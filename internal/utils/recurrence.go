package utils

import (
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
)

// NextOccurrence advances a due date by one recurrence interval.
// Monthly uses calendar-month arithmetic, so Jan 31 advances to the
// normalized date Go produces for Feb 31 (Mar 2/3), matching AddDate.
func NextOccurrence(pattern constants.RecurrencePattern, from time.Time) time.Time {
	switch pattern {
	case constants.RecurrenceDaily:
		return from.AddDate(0, 0, 1)
	case constants.RecurrenceWeekly:
		return from.AddDate(0, 0, 7)
	case constants.RecurrenceMonthly:
		return from.AddDate(0, 1, 0)
	default:
		return from
	}
}

// NextDueDate advances a YYYY-MM-DD due date string by one recurrence
// interval. An empty or malformed due date advances from the given
// fallback day instead.
func NextDueDate(pattern constants.RecurrencePattern, dueDate string, fallback time.Time) string {
	base := fallback
	if dueDate != "" {
		if parsed, err := ParseDate(dueDate); err == nil {
			base = parsed
		}
	}
	return DateOf(NextOccurrence(pattern, base))
}
