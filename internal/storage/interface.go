package storage

import (
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/models"
)

// Provider is the persistence contract the engine runs against. Every
// method that performs more than one write does so inside a single
// transaction, so partial state is never visible to subsequent reads.
// Lookup misses are reported as database/sql.ErrNoRows; the service
// layer maps them to typed NotFound failures.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	// DeleteTaskTree removes the task, all its descendants, and every
	// assignment referencing them. Sessions that pointed at a deleted
	// task keep running with their task reference cleared. Returns the
	// deleted task ids.
	DeleteTaskTree(id string) ([]string, error)
	// ToggleTaskCompletion flips is_completed and returns the new
	// state. Flipping to completed also completes every descendant.
	// When spawn is non-nil it is inserted in the same transaction
	// (the next occurrence of a recurring task).
	ToggleTaskCompletion(id string, spawn *models.Task) (bool, error)

	// Day tracker
	// InitializeDays creates one entry per date, numbered from 1, and
	// reports whether anything was created. A tracker that already has
	// entries is left untouched.
	InitializeDays(dates []string) (bool, error)
	// GetDays returns all entries with tasks_completed/tasks_total
	// freshly derived from assignments, ordered by day number.
	GetDays() ([]models.DayEntry, error)
	GetDayDate(dayNumber int) (string, error)
	// AddAssignment inserts the assignment unless the (task, day) pair
	// already exists; reports whether a row was created.
	AddAssignment(models.TaskAssignment) (bool, error)
	GetTasksForDay(dayNumber int) ([]models.Task, error)
	GetDayCounts(dayNumber int) (total, completed int, err error)
	UpdateDayStatus(dayNumber int, completed, total int, status constants.CompletionStatus) error

	// Pomodoro sessions
	AddSession(models.Session) error
	GetSession(id string) (models.Session, error)
	// GetActiveSession returns the started-but-uncompleted session, or
	// nil when there is none.
	GetActiveSession() (*models.Session, error)
	CompleteSession(id string, end time.Time) error
	// GetSessions returns sessions with date >= sinceDate (all when
	// empty), most recent start first.
	GetSessions(sinceDate string) ([]models.Session, error)

	// Stats cache
	SaveStats(models.Stats) error

	// Utils
	GetConfigPath() string
}
