// Package tracker owns the fixed 60-day progress calendar: idempotent
// initialization, task-to-day assignment, and derivation of each day's
// completion color from its assignments.
package tracker

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/errors"
	"github.com/focusdeck/focusdeck/internal/logger"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/storage"
	"github.com/focusdeck/focusdeck/internal/utils"
	"github.com/focusdeck/focusdeck/internal/validation"
)

type Tracker struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// Initialize creates the 60 day entries anchored at the given date.
// Calling it against an already-initialized tracker is a no-op.
func (t *Tracker) Initialize(anchor time.Time) error {
	dates := make([]string, constants.TrackerDays)
	for i := range dates {
		dates[i] = utils.DateOf(anchor.AddDate(0, 0, i))
	}

	created, err := t.store.InitializeDays(dates)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Initialized day tracker", "days", constants.TrackerDays, "anchor", dates[0])
	}
	return nil
}

// ListDays returns all entries with counts and completion status
// freshly derived from the current assignments.
func (t *Tracker) ListDays() ([]models.DayEntry, error) {
	days, err := t.store.GetDays()
	if err != nil {
		return nil, err
	}

	today := t.now()
	for i := range days {
		days[i].CompletionStatus = t.statusForEntry(days[i], today)
	}
	return days, nil
}

// AssignTask links a task to a day. Assigning the same task to the same
// day twice is a silent no-op. The day's stored status is refreshed
// before returning.
func (t *Tracker) AssignTask(taskID string, dayNumber int, assignedBy constants.AssignedBy) error {
	if err := validation.DayNumber(dayNumber); err != nil {
		return err
	}
	if err := validation.AssignedBy(assignedBy); err != nil {
		return err
	}

	if _, err := t.store.GetTask(taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundf("task %s not found", taskID)
		}
		return err
	}
	if _, err := t.store.GetDayDate(dayNumber); err != nil {
		return dayNotFound(err, dayNumber)
	}

	created, err := t.store.AddAssignment(models.TaskAssignment{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		DayNumber:  dayNumber,
		AssignedBy: assignedBy,
	})
	if err != nil {
		return err
	}
	if !created {
		logger.Debug("Task already assigned", "task", taskID, "day", dayNumber)
	}

	return t.RecomputeStatus(dayNumber)
}

// TasksForDay returns the tasks assigned to a day with their current
// completion state.
func (t *Tracker) TasksForDay(dayNumber int) ([]models.Task, error) {
	if err := validation.DayNumber(dayNumber); err != nil {
		return nil, err
	}
	if _, err := t.store.GetDayDate(dayNumber); err != nil {
		return nil, dayNotFound(err, dayNumber)
	}
	return t.store.GetTasksForDay(dayNumber)
}

// RecomputeStatus re-derives a day's counts and color from its
// assignments and writes them back to the stored entry.
func (t *Tracker) RecomputeStatus(dayNumber int) error {
	if err := validation.DayNumber(dayNumber); err != nil {
		return err
	}

	date, err := t.store.GetDayDate(dayNumber)
	if err != nil {
		return dayNotFound(err, dayNumber)
	}

	total, completed, err := t.store.GetDayCounts(dayNumber)
	if err != nil {
		return err
	}

	status := StatusFor(completed, total, date, t.now())
	if err := t.store.UpdateDayStatus(dayNumber, completed, total, status); err != nil {
		return dayNotFound(err, dayNumber)
	}
	return nil
}

func (t *Tracker) statusForEntry(d models.DayEntry, today time.Time) constants.CompletionStatus {
	return StatusFor(d.TasksCompleted, d.TasksTotal, d.Date, today)
}

// StatusFor derives a day's completion color. Days after today render
// as future regardless of their counts; otherwise the color follows the
// completed/total ratio.
func StatusFor(completed, total int, date string, today time.Time) constants.CompletionStatus {
	if day, err := utils.ParseDate(date); err == nil {
		if utils.DaysBetween(today, day) > 0 {
			return constants.StatusFuture
		}
	}

	if total == 0 {
		return constants.StatusRed
	}

	ratio := float64(completed) / float64(total)
	switch {
	case ratio == 0:
		return constants.StatusRed
	case ratio < 0.5:
		return constants.StatusYellow
	case ratio < 1:
		return constants.StatusLightGreen
	default:
		return constants.StatusDeepGreen
	}
}

func dayNotFound(err error, dayNumber int) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundf("day %d not found", dayNumber)
	}
	return err
}
