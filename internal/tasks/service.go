// Package tasks owns the task forest: creation, mutation, cascading
// deletion, completion toggling with recurrence, and assembly of the
// nested view from stored parent references.
package tasks

import (
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/errors"
	"github.com/focusdeck/focusdeck/internal/logger"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/storage"
	"github.com/focusdeck/focusdeck/internal/utils"
)

// CreateInput carries the fields accepted when creating a task.
type CreateInput struct {
	Title             string
	Description       string
	ParentID          *string
	DueDate           string // YYYY-MM-DD, empty for none
	IsRecurring       bool
	RecurrencePattern constants.RecurrencePattern
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Title             *string
	Description       *string
	DueDate           *string
	IsRecurring       *bool
	RecurrencePattern *constants.RecurrencePattern
}

type Service struct {
	store storage.Provider
	now   func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// Create validates the input and persists a new task, returning its id.
func (s *Service) Create(input CreateInput) (string, error) {
	task := models.Task{
		ID:                uuid.New().String(),
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		ParentID:          input.ParentID,
		DueDate:           input.DueDate,
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: input.RecurrencePattern,
		CreatedAt:         s.now(),
	}

	if err := task.Validate(); err != nil {
		return "", err
	}

	if task.ParentID != nil {
		if _, err := s.store.GetTask(*task.ParentID); err != nil {
			return "", taskNotFound(err, *task.ParentID)
		}
	}

	if err := s.store.AddTask(task); err != nil {
		return "", err
	}

	logger.Debug("Created task", "id", task.ID, "title", task.Title)
	return task.ID, nil
}

// Get returns a single task without its subtasks materialized.
func (s *Service) Get(id string) (models.Task, error) {
	task, err := s.store.GetTask(id)
	if err != nil {
		return models.Task{}, taskNotFound(err, id)
	}
	return task, nil
}

// Update applies the provided fields and re-checks the task invariants.
func (s *Service) Update(id string, input UpdateInput) error {
	task, err := s.store.GetTask(id)
	if err != nil {
		return taskNotFound(err, id)
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.IsRecurring != nil {
		task.IsRecurring = *input.IsRecurring
		if !task.IsRecurring {
			task.RecurrencePattern = ""
		}
	}
	if input.RecurrencePattern != nil {
		task.RecurrencePattern = *input.RecurrencePattern
	}

	if err := task.Validate(); err != nil {
		return err
	}

	return s.store.UpdateTask(task)
}

// Delete removes the task and its entire subtree, along with every
// assignment referencing any of the deleted tasks.
func (s *Service) Delete(id string) error {
	ids, err := s.store.DeleteTaskTree(id)
	if err != nil {
		return taskNotFound(err, id)
	}
	logger.Debug("Deleted task tree", "root", id, "count", len(ids))
	return nil
}

// ToggleCompletion flips a task's completion state and returns the new
// state. Completing a recurring root task spawns its next occurrence in
// the same transaction, with the due date advanced by the pattern.
func (s *Service) ToggleCompletion(id string) (bool, error) {
	task, err := s.store.GetTask(id)
	if err != nil {
		return false, taskNotFound(err, id)
	}

	var spawn *models.Task
	if !task.IsCompleted && task.IsRecurring && task.IsRoot() {
		spawn = &models.Task{
			ID:                uuid.New().String(),
			Title:             task.Title,
			Description:       task.Description,
			DueDate:           utils.NextDueDate(task.RecurrencePattern, task.DueDate, s.now()),
			IsRecurring:       true,
			RecurrencePattern: task.RecurrencePattern,
			CreatedAt:         s.now(),
		}
	}

	newState, err := s.store.ToggleTaskCompletion(id, spawn)
	if err != nil {
		return false, taskNotFound(err, id)
	}

	if spawn != nil {
		logger.Debug("Spawned next occurrence", "task", id, "next", spawn.ID, "due", spawn.DueDate)
	}
	return newState, nil
}

// List returns the task forest: root tasks with subtasks nested, in
// creation order at every level.
func (s *Service) List() ([]models.Task, error) {
	all, err := s.store.GetAllTasks()
	if err != nil {
		return nil, err
	}
	return BuildForest(all), nil
}

// BuildForest assembles the nested view from a flat task list. Tasks
// referencing a parent that is not in the list are treated as roots so
// the view never silently drops rows.
func BuildForest(flat []models.Task) []models.Task {
	sorted := make([]models.Task, len(flat))
	copy(sorted, flat)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	byID := make(map[string]bool, len(sorted))
	for _, t := range sorted {
		byID[t.ID] = true
	}

	children := make(map[string][]models.Task)
	var roots []models.Task
	for _, t := range sorted {
		if t.ParentID != nil && byID[*t.ParentID] {
			children[*t.ParentID] = append(children[*t.ParentID], t)
		} else {
			roots = append(roots, t)
		}
	}

	var attach func(t models.Task) models.Task
	attach = func(t models.Task) models.Task {
		t.Subtasks = []models.Task{}
		for _, child := range children[t.ID] {
			t.Subtasks = append(t.Subtasks, attach(child))
		}
		return t
	}

	forest := make([]models.Task, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, attach(root))
	}
	return forest
}

func taskNotFound(err error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundf("task %s not found", id)
	}
	return err
}
