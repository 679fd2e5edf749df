package models

import "github.com/focusdeck/focusdeck/internal/constants"

// DayEntry is one of the 60 tracker days. TasksCompleted, TasksTotal
// and CompletionStatus are derived from assignments on read; the stored
// columns are refreshed as a side effect and never read back as truth.
type DayEntry struct {
	ID               int64                      `json:"id"`
	DayNumber        int                        `json:"day_number"` // 1..TrackerDays
	Date             string                     `json:"date"`       // YYYY-MM-DD format
	CompletionStatus constants.CompletionStatus `json:"completion_status"`
	TasksCompleted   int                        `json:"tasks_completed"`
	TasksTotal       int                        `json:"tasks_total"`
}

// TaskAssignment links a task to a tracker day. A task may be assigned
// to any number of days; the same (task, day) pair is stored once.
type TaskAssignment struct {
	ID         string               `json:"id"`
	TaskID     string               `json:"task_id"`
	DayNumber  int                  `json:"day_number"`
	AssignedBy constants.AssignedBy `json:"assigned_by"`
}
