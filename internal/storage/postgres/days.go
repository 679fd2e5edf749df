package postgres

import (
	"database/sql"
	"fmt"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/models"
)

func (s *Store) InitializeDays(dates []string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM day_tracker").Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO day_tracker (day_number, date, completion_status, tasks_completed, tasks_total)
		VALUES ($1, $2, $3, 0, 0)`)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	for i, date := range dates {
		if _, err := stmt.Exec(i+1, date, string(constants.StatusRed)); err != nil {
			return false, fmt.Errorf("failed to insert day %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) GetDays() ([]models.DayEntry, error) {
	rows, err := s.db.Query(`
		SELECT d.id, d.day_number, d.date, COALESCE(a.total, 0), COALESCE(a.done, 0)
		FROM day_tracker d
		LEFT JOIN (
			SELECT ta.day_number AS dn,
			       COUNT(*) AS total,
			       SUM(CASE WHEN t.is_completed THEN 1 ELSE 0 END) AS done
			FROM task_assignments ta
			JOIN tasks t ON t.id = ta.task_id
			GROUP BY ta.day_number
		) a ON a.dn = d.day_number
		ORDER BY d.day_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.DayEntry
	for rows.Next() {
		var d models.DayEntry
		if err := rows.Scan(&d.ID, &d.DayNumber, &d.Date, &d.TasksTotal, &d.TasksCompleted); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

func (s *Store) GetDayDate(dayNumber int) (string, error) {
	var date string
	err := s.db.QueryRow("SELECT date FROM day_tracker WHERE day_number = $1", dayNumber).Scan(&date)
	return date, err
}

func (s *Store) AddAssignment(a models.TaskAssignment) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO task_assignments (id, task_id, day_number, assigned_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (task_id, day_number) DO NOTHING`,
		a.ID, a.TaskID, a.DayNumber, string(a.AssignedBy))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) GetTasksForDay(dayNumber int) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.title, t.description, t.is_completed, t.parent_id, t.due_date, t.is_recurring, t.recurrence_pattern, t.created_at
		FROM tasks t
		JOIN task_assignments ta ON t.id = ta.task_id
		WHERE ta.day_number = $1
		ORDER BY t.created_at`, dayNumber)
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

func (s *Store) GetDayCounts(dayNumber int) (int, int, error) {
	var total, completed int
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN t.is_completed THEN 1 ELSE 0 END), 0)
		FROM task_assignments ta
		JOIN tasks t ON t.id = ta.task_id
		WHERE ta.day_number = $1`, dayNumber).Scan(&total, &completed)
	return total, completed, err
}

func (s *Store) UpdateDayStatus(dayNumber int, completed, total int, status constants.CompletionStatus) error {
	res, err := s.db.Exec(`
		UPDATE day_tracker
		SET tasks_completed = $1, tasks_total = $2, completion_status = $3
		WHERE day_number = $4`,
		completed, total, string(status), dayNumber)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
