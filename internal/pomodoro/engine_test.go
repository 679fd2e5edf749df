package pomodoro

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/focusdeck/focusdeck/internal/errors"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/storage/sqlite"
	"github.com/focusdeck/focusdeck/internal/tasks"
	"github.com/focusdeck/focusdeck/internal/utils"
)

func setupTestEngine(t *testing.T) (*Engine, *sqlite.Store) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return New(store), store
}

// addCompleted inserts an already-completed session on the given date.
func addCompleted(t *testing.T, store *sqlite.Store, date string, minutes int, taskID *string) {
	t.Helper()
	start, err := utils.ParseDate(date)
	if err != nil {
		t.Fatalf("bad date %s: %v", date, err)
	}
	session := models.Session{
		ID:              uuid.New().String(),
		TaskID:          taskID,
		StartTime:       start.Add(9 * time.Hour),
		DurationMinutes: minutes,
		Completed:       true,
		Date:            date,
	}
	if err := store.AddSession(session); err != nil {
		t.Fatalf("add session: %v", err)
	}
}

func TestStartRejectsNonPositiveDuration(t *testing.T) {
	eng, _ := setupTestEngine(t)

	if _, err := eng.Start(nil, 0); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("duration 0: expected invalid input, got %v", err)
	}
	if _, err := eng.Start(nil, -5); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("negative duration: expected invalid input, got %v", err)
	}
}

func TestStartRejectsMissingTask(t *testing.T) {
	eng, _ := setupTestEngine(t)

	missing := "no-such-task"
	if _, err := eng.Start(&missing, 25); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestStartConflictsWithActiveSession(t *testing.T) {
	eng, _ := setupTestEngine(t)

	if _, err := eng.Start(nil, 25); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := eng.Start(nil, 25); !errors.Is(err, errors.ErrConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestCompleteFreesTheSlot(t *testing.T) {
	eng, _ := setupTestEngine(t)

	session, err := eng.Start(nil, 25)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := eng.Complete(session.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	active, err := eng.Active()
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active != nil {
		t.Error("expected no active session after complete")
	}

	if _, err := eng.Start(nil, 25); err != nil {
		t.Errorf("start after complete should succeed, got %v", err)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	eng, _ := setupTestEngine(t)

	session, _ := eng.Start(nil, 25)
	if err := eng.Complete(session.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if err := eng.Complete(session.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}

	stats, err := eng.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalStudyMinutes != 25 {
		t.Errorf("expected 25 minutes counted once, got %d", stats.TotalStudyMinutes)
	}
}

func TestCompleteMissingSession(t *testing.T) {
	eng, _ := setupTestEngine(t)

	if err := eng.Complete("nope"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestStatsCountsOnlyTaskSessions(t *testing.T) {
	eng, store := setupTestEngine(t)
	eng.now = func() time.Time { return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC) }

	svc := tasks.NewService(store)
	taskID, err := svc.Create(tasks.CreateInput{Title: "Read"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	addCompleted(t, store, "2026-05-10", 25, &taskID)
	addCompleted(t, store, "2026-05-10", 45, nil)

	stats, err := eng.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalTasksCompleted != 1 {
		t.Errorf("expected 1 task session, got %d", stats.TotalTasksCompleted)
	}
	if stats.TotalStudyMinutes != 70 {
		t.Errorf("expected 70 minutes, got %d", stats.TotalStudyMinutes)
	}
}

func TestStatsIgnoresIncompleteSessions(t *testing.T) {
	eng, _ := setupTestEngine(t)

	if _, err := eng.Start(nil, 25); err != nil {
		t.Fatalf("start: %v", err)
	}

	stats, err := eng.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalStudyMinutes != 0 || stats.CurrentStreak != 0 {
		t.Errorf("active session should not count, got %+v", stats)
	}
}

func TestHistoryWindow(t *testing.T) {
	eng, store := setupTestEngine(t)
	eng.now = func() time.Time { return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC) }

	addCompleted(t, store, "2026-05-01", 25, nil)
	addCompleted(t, store, "2026-05-09", 25, nil)
	addCompleted(t, store, "2026-05-10", 25, nil)

	all, err := eng.History(0)
	if err != nil {
		t.Fatalf("history all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 sessions, got %d", len(all))
	}

	recent, err := eng.History(2)
	if err != nil {
		t.Fatalf("history 2: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 sessions in window, got %d", len(recent))
	}
	if len(recent) == 2 && recent[0].Date != "2026-05-10" {
		t.Errorf("expected newest first, got %s", recent[0].Date)
	}

	if _, err := eng.History(-1); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("negative window: expected invalid input, got %v", err)
	}
}

func TestHistoryIncludesActiveSession(t *testing.T) {
	eng, store := setupTestEngine(t)

	addCompleted(t, store, "2026-05-10", 25, nil)
	active, err := eng.Start(nil, 25)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	sessions, err := eng.History(0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected both sessions listed, got %d", len(sessions))
	}
	if sessions[0].ID != active.ID {
		t.Error("expected the newest (active) session first")
	}
}
