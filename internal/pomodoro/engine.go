// Package pomodoro owns focus sessions: starting and completing timed
// sessions, the derived streak statistics, and the countdown state used
// by interactive timers.
package pomodoro

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/focusdeck/focusdeck/internal/errors"
	"github.com/focusdeck/focusdeck/internal/logger"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/storage"
	"github.com/focusdeck/focusdeck/internal/utils"
	"github.com/focusdeck/focusdeck/internal/validation"
)

type Engine struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Start opens a new session. At most one session may be active at a
// time; starting while another is running is a conflict. taskID is
// optional and must reference an existing task when set.
func (e *Engine) Start(taskID *string, durationMinutes int) (models.Session, error) {
	if err := validation.Duration(durationMinutes); err != nil {
		return models.Session{}, err
	}

	if taskID != nil {
		if _, err := e.store.GetTask(*taskID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Session{}, errors.NotFoundf("task %s not found", *taskID)
			}
			return models.Session{}, err
		}
	}

	active, err := e.store.GetActiveSession()
	if err != nil {
		return models.Session{}, err
	}
	if active != nil {
		return models.Session{}, errors.Conflictf("session %s is already active", active.ID)
	}

	start := e.now()
	session := models.Session{
		ID:              uuid.New().String(),
		TaskID:          taskID,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Date:            utils.DateOf(start),
	}
	if err := session.Validate(); err != nil {
		return models.Session{}, err
	}

	if err := e.store.AddSession(session); err != nil {
		return models.Session{}, err
	}

	logger.Debug("Started session", "id", session.ID, "minutes", durationMinutes)
	return session, nil
}

// Complete marks a session finished and refreshes the cached stats.
// Completing an already-completed session is a no-op.
func (e *Engine) Complete(id string) error {
	if _, err := e.store.GetSession(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundf("session %s not found", id)
		}
		return err
	}

	if err := e.store.CompleteSession(id, e.now()); err != nil {
		return err
	}

	_, err := e.Stats()
	return err
}

// Active returns the currently running session, or nil when none is.
// A session left behind by a crashed run shows up here too, so callers
// can offer to complete or discard it.
func (e *Engine) Active() (*models.Session, error) {
	return e.store.GetActiveSession()
}

// Stats recomputes the streak statistics from the full session history
// and persists the result as the cached user_stats row.
func (e *Engine) Stats() (models.Stats, error) {
	sessions, err := e.store.GetSessions("")
	if err != nil {
		return models.Stats{}, err
	}

	stats := ComputeStats(sessions, e.now())
	if err := e.store.SaveStats(stats); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

// History returns sessions newest first, completed or not. days limits
// the window to the last N calendar days; 0 means the full history.
func (e *Engine) History(days int) ([]models.Session, error) {
	if days < 0 {
		return nil, errors.InvalidInputf("history window must be non-negative, got %d", days)
	}

	since := ""
	if days > 0 {
		since = utils.DateOf(e.now().AddDate(0, 0, -(days - 1)))
	}

	return e.store.GetSessions(since)
}
