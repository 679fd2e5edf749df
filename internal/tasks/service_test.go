package tasks

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/errors"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/storage/sqlite"
)

func setupTestService(t *testing.T) (*Service, *sqlite.Store) {
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

	return NewService(store), store
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Create(CreateInput{Title: "   "})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestCreateRejectsRecurringWithoutPattern(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Create(CreateInput{Title: "Read", IsRecurring: true})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestCreateRejectsRecurringSubtask(t *testing.T) {
	svc, _ := setupTestService(t)

	parentID, err := svc.Create(CreateInput{Title: "Parent"})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	_, err = svc.Create(CreateInput{
		Title:             "Child",
		ParentID:          &parentID,
		IsRecurring:       true,
		RecurrencePattern: constants.RecurrenceDaily,
	})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestCreateRejectsMissingParent(t *testing.T) {
	svc, _ := setupTestService(t)

	missing := "no-such-task"
	_, err := svc.Create(CreateInput{Title: "Orphan", ParentID: &missing})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestUpdateClearsPatternWhenRecurrenceStops(t *testing.T) {
	svc, _ := setupTestService(t)

	id, err := svc.Create(CreateInput{
		Title:             "Review notes",
		IsRecurring:       true,
		RecurrencePattern: constants.RecurrenceWeekly,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	recurring := false
	if err := svc.Update(id, UpdateInput{IsRecurring: &recurring}); err != nil {
		t.Fatalf("update: %v", err)
	}

	task, err := svc.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if task.IsRecurring || task.RecurrencePattern != "" {
		t.Errorf("expected recurrence cleared, got recurring=%v pattern=%q",
			task.IsRecurring, task.RecurrencePattern)
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	svc, _ := setupTestService(t)

	rootID, _ := svc.Create(CreateInput{Title: "Root"})
	childID, _ := svc.Create(CreateInput{Title: "Child", ParentID: &rootID})
	grandID, _ := svc.Create(CreateInput{Title: "Grandchild", ParentID: &childID})

	if err := svc.Delete(rootID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, id := range []string{rootID, childID, grandID} {
		if _, err := svc.Get(id); !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("expected task %s gone, got %v", id, err)
		}
	}
}

func TestDeleteMissingTask(t *testing.T) {
	svc, _ := setupTestService(t)

	if err := svc.Delete("nope"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestToggleCompletionCascadesToSubtasks(t *testing.T) {
	svc, _ := setupTestService(t)

	rootID, _ := svc.Create(CreateInput{Title: "Root"})
	childID, _ := svc.Create(CreateInput{Title: "Child", ParentID: &rootID})

	completed, err := svc.ToggleCompletion(rootID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !completed {
		t.Fatal("expected toggle to complete the task")
	}

	child, err := svc.Get(childID)
	if err != nil {
		t.Fatalf("get child: %v", err)
	}
	if !child.IsCompleted {
		t.Error("expected subtask completed along with parent")
	}
}

func TestToggleCompletionReopenDoesNotCascade(t *testing.T) {
	svc, _ := setupTestService(t)

	rootID, _ := svc.Create(CreateInput{Title: "Root"})
	childID, _ := svc.Create(CreateInput{Title: "Child", ParentID: &rootID})

	if _, err := svc.ToggleCompletion(rootID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	completed, err := svc.ToggleCompletion(rootID)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if completed {
		t.Fatal("expected toggle to reopen the task")
	}

	child, _ := svc.Get(childID)
	if !child.IsCompleted {
		t.Error("reopening the parent should leave subtasks completed")
	}
}

func TestToggleCompletionSpawnsNextOccurrence(t *testing.T) {
	svc, _ := setupTestService(t)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	id, err := svc.Create(CreateInput{
		Title:             "Water plants",
		DueDate:           "2026-03-10",
		IsRecurring:       true,
		RecurrencePattern: constants.RecurrenceDaily,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ToggleCompletion(id); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	forest, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("expected 2 root tasks after spawn, got %d", len(forest))
	}

	var spawned *models.Task
	for i := range forest {
		if forest[i].ID != id {
			spawned = &forest[i]
		}
	}
	if spawned == nil {
		t.Fatal("spawned occurrence not found")
	}
	if spawned.IsCompleted {
		t.Error("spawned occurrence should start incomplete")
	}
	if spawned.DueDate != "2026-03-11" {
		t.Errorf("expected due date 2026-03-11, got %s", spawned.DueDate)
	}
	if !spawned.IsRecurring || spawned.RecurrencePattern != constants.RecurrenceDaily {
		t.Error("spawned occurrence should keep the recurrence")
	}
}

func TestToggleCompletionNoSpawnOnReopen(t *testing.T) {
	svc, _ := setupTestService(t)

	id, _ := svc.Create(CreateInput{
		Title:             "Weekly review",
		IsRecurring:       true,
		RecurrencePattern: constants.RecurrenceWeekly,
	})

	if _, err := svc.ToggleCompletion(id); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.ToggleCompletion(id); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	forest, _ := svc.List()
	if len(forest) != 2 {
		t.Fatalf("expected exactly one spawn from the complete, got %d roots", len(forest))
	}
}

func TestListNestsSubtasksInCreationOrder(t *testing.T) {
	svc, _ := setupTestService(t)

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	rootID, _ := svc.Create(CreateInput{Title: "Root"})
	firstID, _ := svc.Create(CreateInput{Title: "First", ParentID: &rootID})
	secondID, _ := svc.Create(CreateInput{Title: "Second", ParentID: &rootID})

	forest, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	subs := forest[0].Subtasks
	if len(subs) != 2 || subs[0].ID != firstID || subs[1].ID != secondID {
		t.Errorf("expected subtasks in creation order, got %+v", subs)
	}
}

func TestBuildForestTreatsOrphansAsRoots(t *testing.T) {
	missing := "gone"
	flat := []models.Task{
		{ID: "a", Title: "A", CreatedAt: time.Unix(1, 0)},
		{ID: "b", Title: "B", ParentID: &missing, CreatedAt: time.Unix(2, 0)},
	}

	forest := BuildForest(flat)
	if len(forest) != 2 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(forest))
	}
}
