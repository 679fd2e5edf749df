package models

// Stats is the cached per-user aggregate row. It is a pure function of
// the session rows and is recomputed on read; the cache only exists so
// the table matches what external tooling expects to see.
type Stats struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	// TotalTasksCompleted counts completed sessions that have a task
	// attached. Sessions run without a task do not contribute.
	TotalTasksCompleted int    `json:"total_tasks_completed"`
	TotalStudyMinutes   int    `json:"total_study_minutes"`
	LastStudyDate       string `json:"last_study_date,omitempty"` // YYYY-MM-DD format
}
