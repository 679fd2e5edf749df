package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/errors"
	"github.com/focusdeck/focusdeck/internal/storage/sqlite"
	"github.com/focusdeck/focusdeck/internal/tasks"
)

func setupTestTracker(t *testing.T) (*Tracker, *tasks.Service) {
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

	return New(store), tasks.NewService(store)
}

func TestInitializeCreatesSixtyConsecutiveDays(t *testing.T) {
	tr, _ := setupTestTracker(t)

	anchor := time.Date(2026, 2, 1, 14, 30, 0, 0, time.UTC)
	if err := tr.Initialize(anchor); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	days, err := tr.ListDays()
	if err != nil {
		t.Fatalf("list days: %v", err)
	}
	if len(days) != constants.TrackerDays {
		t.Fatalf("expected %d days, got %d", constants.TrackerDays, len(days))
	}
	if days[0].Date != "2026-02-01" {
		t.Errorf("expected first day 2026-02-01, got %s", days[0].Date)
	}
	if days[59].DayNumber != 60 || days[59].Date != "2026-04-01" {
		t.Errorf("expected day 60 on 2026-04-01, got day %d on %s", days[59].DayNumber, days[59].Date)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	tr, _ := setupTestTracker(t)

	first := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := tr.Initialize(first); err != nil {
		t.Fatalf("first initialize: %v", err)
	}
	// A second call with a different anchor must not reset the calendar.
	if err := tr.Initialize(first.AddDate(0, 1, 0)); err != nil {
		t.Fatalf("second initialize: %v", err)
	}

	days, _ := tr.ListDays()
	if len(days) != constants.TrackerDays {
		t.Fatalf("expected %d days, got %d", constants.TrackerDays, len(days))
	}
	if days[0].Date != "2026-02-01" {
		t.Errorf("expected original anchor kept, got %s", days[0].Date)
	}
}

func TestStatusFor(t *testing.T) {
	today := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		completed int
		total     int
		date      string
		want      constants.CompletionStatus
	}{
		{"no assignments", 0, 0, "2026-02-10", constants.StatusRed},
		{"none done", 0, 4, "2026-02-10", constants.StatusRed},
		{"under half", 1, 4, "2026-02-10", constants.StatusYellow},
		{"exactly half", 2, 4, "2026-02-10", constants.StatusLightGreen},
		{"almost all", 3, 4, "2026-02-10", constants.StatusLightGreen},
		{"single of three", 1, 3, "2026-02-10", constants.StatusYellow},
		{"two of three", 2, 3, "2026-02-10", constants.StatusLightGreen},
		{"all done", 4, 4, "2026-02-10", constants.StatusDeepGreen},
		{"past day stays colored", 3, 4, "2026-02-09", constants.StatusDeepGreen},
		{"future day", 4, 4, "2026-02-11", constants.StatusFuture},
		{"future day empty", 0, 0, "2026-03-01", constants.StatusFuture},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StatusFor(tc.completed, tc.total, tc.date, today)
			if got != tc.want {
				t.Errorf("StatusFor(%d, %d, %s) = %s, want %s",
					tc.completed, tc.total, tc.date, got, tc.want)
			}
		})
	}
}

func TestAssignTaskValidation(t *testing.T) {
	tr, svc := setupTestTracker(t)
	if err := tr.Initialize(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	id, err := svc.Create(tasks.CreateInput{Title: "Stretch"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := tr.AssignTask(id, 0, constants.AssignedByManual); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("day 0: expected invalid input, got %v", err)
	}
	if err := tr.AssignTask(id, 61, constants.AssignedByManual); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("day 61: expected invalid input, got %v", err)
	}
	if err := tr.AssignTask(id, 5, "robot"); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("bad origin: expected invalid input, got %v", err)
	}
	if err := tr.AssignTask("missing", 5, constants.AssignedByManual); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("missing task: expected not found, got %v", err)
	}
}

func TestAssignTaskDuplicateIsNoOp(t *testing.T) {
	tr, svc := setupTestTracker(t)
	if err := tr.Initialize(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	id, _ := svc.Create(tasks.CreateInput{Title: "Stretch"})

	if err := tr.AssignTask(id, 3, constants.AssignedByManual); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if err := tr.AssignTask(id, 3, constants.AssignedByManual); err != nil {
		t.Fatalf("duplicate assign: %v", err)
	}

	dayTasks, err := tr.TasksForDay(3)
	if err != nil {
		t.Fatalf("tasks for day: %v", err)
	}
	if len(dayTasks) != 1 {
		t.Errorf("expected 1 assignment after duplicate, got %d", len(dayTasks))
	}
}

func TestDayStatusFollowsCompletions(t *testing.T) {
	tr, svc := setupTestTracker(t)

	anchor := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := tr.Initialize(anchor); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	// Pretend today is day 5 so its color reflects the ratio.
	tr.now = func() time.Time { return anchor.AddDate(0, 0, 4) }

	first, _ := svc.Create(tasks.CreateInput{Title: "First"})
	second, _ := svc.Create(tasks.CreateInput{Title: "Second"})
	for _, id := range []string{first, second} {
		if err := tr.AssignTask(id, 5, constants.AssignedByManual); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}

	status := func() constants.CompletionStatus {
		days, err := tr.ListDays()
		if err != nil {
			t.Fatalf("list days: %v", err)
		}
		return days[4].CompletionStatus
	}

	if got := status(); got != constants.StatusRed {
		t.Errorf("no completions: expected red, got %s", got)
	}

	if _, err := svc.ToggleCompletion(first); err != nil {
		t.Fatalf("toggle first: %v", err)
	}
	if got := status(); got != constants.StatusLightGreen {
		t.Errorf("half done: expected light_green, got %s", got)
	}

	if _, err := svc.ToggleCompletion(second); err != nil {
		t.Fatalf("toggle second: %v", err)
	}
	if got := status(); got != constants.StatusDeepGreen {
		t.Errorf("all done: expected deep_green, got %s", got)
	}

	if _, err := svc.ToggleCompletion(second); err != nil {
		t.Fatalf("reopen second: %v", err)
	}
	if got := status(); got != constants.StatusLightGreen {
		t.Errorf("back to half: expected light_green, got %s", got)
	}
}

func TestDeletedTaskDropsOutOfDayCounts(t *testing.T) {
	tr, svc := setupTestTracker(t)

	anchor := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := tr.Initialize(anchor); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	tr.now = func() time.Time { return anchor }

	id, _ := svc.Create(tasks.CreateInput{Title: "Doomed"})
	if err := tr.AssignTask(id, 1, constants.AssignedByManual); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := svc.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	days, err := tr.ListDays()
	if err != nil {
		t.Fatalf("list days: %v", err)
	}
	if days[0].TasksTotal != 0 {
		t.Errorf("expected assignment removed with task, total=%d", days[0].TasksTotal)
	}
}

func TestTasksForDayMissingDay(t *testing.T) {
	tr, _ := setupTestTracker(t)

	// Tracker not initialized, so every in-range day is missing.
	if _, err := tr.TasksForDay(5); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
