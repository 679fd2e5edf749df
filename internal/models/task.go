package models

import (
	"strings"
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/errors"
)

// Task is one node of the task forest. Subtasks are materialized from
// ParentID relationships when the forest is assembled; the stored row
// only carries the parent reference.
type Task struct {
	ID                string                      `json:"id"`
	Title             string                      `json:"title"`
	Description       string                      `json:"description,omitempty"`
	IsCompleted       bool                        `json:"is_completed"`
	ParentID          *string                     `json:"parent_id,omitempty"`
	DueDate           string                      `json:"due_date,omitempty"` // YYYY-MM-DD format
	IsRecurring       bool                        `json:"is_recurring"`
	RecurrencePattern constants.RecurrencePattern `json:"recurrence_pattern,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	Subtasks          []Task                      `json:"subtasks"`
}

// IsRoot reports whether the task has no parent. Only root tasks may
// recur.
func (t Task) IsRoot() bool {
	return t.ParentID == nil
}

// Validate checks the single-task invariants: non-empty title,
// recurrence restricted to root tasks, pattern present iff recurring,
// and well-formed due date.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.InvalidInputf("task title must not be empty")
	}
	if t.IsRecurring && t.ParentID != nil {
		return errors.InvalidInputf("a subtask cannot be recurring")
	}
	if t.IsRecurring {
		switch t.RecurrencePattern {
		case constants.RecurrenceDaily, constants.RecurrenceWeekly, constants.RecurrenceMonthly:
		default:
			return errors.InvalidInputf("invalid recurrence pattern: %q", t.RecurrencePattern)
		}
	} else if t.RecurrencePattern != "" {
		return errors.InvalidInputf("recurrence pattern set on a non-recurring task")
	}
	if t.DueDate != "" {
		if _, err := time.Parse(constants.DateFormat, t.DueDate); err != nil {
			return errors.InvalidInputf("invalid due date %q (expected YYYY-MM-DD)", t.DueDate)
		}
	}
	return nil
}
