package models

import (
	"time"

	"github.com/focusdeck/focusdeck/internal/errors"
)

// Session is one focus-timer run. A session with a nil EndTime is
// active; pause and resume never touch the stored row.
type Session struct {
	ID              string     `json:"id"`
	TaskID          *string    `json:"task_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Completed       bool       `json:"completed"`
	Date            string     `json:"date"` // YYYY-MM-DD format
}

// Validate checks session invariants before persistence.
func (s Session) Validate() error {
	if s.DurationMinutes <= 0 {
		return errors.InvalidInputf("session duration must be positive, got %d", s.DurationMinutes)
	}
	return nil
}

// Active reports whether the session has been started but not completed.
func (s Session) Active() bool {
	return !s.Completed
}
