package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/models"
)

const taskColumns = "id, title, description, is_completed, parent_id, due_date, is_recurring, recurrence_pattern, created_at"

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	return scanTask(row)
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query("SELECT " + taskColumns + " FROM tasks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	var parentID sql.NullString
	if task.ParentID != nil {
		parentID = sql.NullString{String: *task.ParentID, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, is_completed, parent_id, due_date, is_recurring, recurrence_pattern, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			is_completed = excluded.is_completed,
			parent_id = excluded.parent_id,
			due_date = excluded.due_date,
			is_recurring = excluded.is_recurring,
			recurrence_pattern = excluded.recurrence_pattern`,
		task.ID, task.Title, task.Description, task.IsCompleted, parentID,
		task.DueDate, task.IsRecurring, string(task.RecurrencePattern),
		task.CreatedAt.Format(constants.TimestampFormat),
	)
	return err
}

func (s *Store) DeleteTaskTree(id string) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids, err := collectSubtreeTx(tx, id)
	if err != nil {
		return nil, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]interface{}, len(ids))
	for i, v := range ids {
		args[i] = v
	}

	// Assignments cascade with their tasks; sessions keep their history
	// but lose the task reference.
	if _, err := tx.Exec("DELETE FROM task_assignments WHERE task_id IN ("+placeholders+")", args...); err != nil {
		return nil, fmt.Errorf("failed to delete assignments: %w", err)
	}
	if _, err := tx.Exec("UPDATE pomodoro_sessions SET task_id = NULL WHERE task_id IN ("+placeholders+")", args...); err != nil {
		return nil, fmt.Errorf("failed to detach sessions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE id IN ("+placeholders+")", args...); err != nil {
		return nil, fmt.Errorf("failed to delete tasks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) ToggleTaskCompletion(id string, spawn *models.Task) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var completed bool
	if err := tx.QueryRow("SELECT is_completed FROM tasks WHERE id = ?", id).Scan(&completed); err != nil {
		return false, err
	}

	newState := !completed
	if _, err := tx.Exec("UPDATE tasks SET is_completed = ? WHERE id = ?", newState, id); err != nil {
		return false, err
	}

	// Completing a parent completes the whole subtree; un-completing
	// leaves subtasks alone.
	if newState {
		if err := completeSubtasksTx(tx, id); err != nil {
			return false, err
		}
	}

	if spawn != nil {
		var parentID sql.NullString
		if spawn.ParentID != nil {
			parentID = sql.NullString{String: *spawn.ParentID, Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO tasks (id, title, description, is_completed, parent_id, due_date, is_recurring, recurrence_pattern, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			spawn.ID, spawn.Title, spawn.Description, spawn.IsCompleted, parentID,
			spawn.DueDate, spawn.IsRecurring, string(spawn.RecurrencePattern),
			spawn.CreatedAt.Format(constants.TimestampFormat),
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert next occurrence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return newState, nil
}

func collectSubtreeTx(tx *sql.Tx, rootID string) ([]string, error) {
	rows, err := tx.Query(`
		WITH RECURSIVE subtree(id) AS (
			SELECT id FROM tasks WHERE id = ?
			UNION ALL
			SELECT t.id FROM tasks t JOIN subtree s ON t.parent_id = s.id
		)
		SELECT id FROM subtree`, rootID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, sql.ErrNoRows
	}
	return ids, nil
}

func completeSubtasksTx(tx *sql.Tx, parentID string) error {
	if _, err := tx.Exec("UPDATE tasks SET is_completed = 1 WHERE parent_id = ?", parentID); err != nil {
		return err
	}

	rows, err := tx.Query("SELECT id FROM tasks WHERE parent_id = ?", parentID)
	if err != nil {
		return err
	}
	var children []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		children = append(children, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, child := range children {
		if err := completeSubtasksTx(tx, child); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var parentID sql.NullString
	var pattern, createdAt string

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.IsCompleted, &parentID,
		&t.DueDate, &t.IsRecurring, &pattern, &createdAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	if parentID.Valid {
		t.ParentID = &parentID.String
	}
	t.RecurrencePattern = constants.RecurrencePattern(pattern)

	t.CreatedAt, err = time.Parse(constants.TimestampFormat, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return t, nil
}
