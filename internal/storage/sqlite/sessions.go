package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/models"
)

const sessionColumns = "id, task_id, start_time, end_time, duration_minutes, completed, date"

func (s *Store) AddSession(session models.Session) error {
	var taskID sql.NullString
	if session.TaskID != nil {
		taskID = sql.NullString{String: *session.TaskID, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO pomodoro_sessions (id, task_id, start_time, end_time, duration_minutes, completed, date)
		VALUES (?, ?, ?, NULL, ?, ?, ?)`,
		session.ID, taskID, session.StartTime.Format(constants.TimestampFormat),
		session.DurationMinutes, session.Completed, session.Date)
	return err
}

func (s *Store) GetSession(id string) (models.Session, error) {
	row := s.db.QueryRow("SELECT "+sessionColumns+" FROM pomodoro_sessions WHERE id = ?", id)
	return scanSession(row)
}

func (s *Store) GetActiveSession() (*models.Session, error) {
	row := s.db.QueryRow("SELECT " + sessionColumns + " FROM pomodoro_sessions WHERE completed = 0 ORDER BY start_time DESC LIMIT 1")
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *Store) CompleteSession(id string, end time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var completed bool
	if err := tx.QueryRow("SELECT completed FROM pomodoro_sessions WHERE id = ?", id).Scan(&completed); err != nil {
		return err
	}
	if completed {
		// Completing twice is harmless.
		return nil
	}

	_, err = tx.Exec("UPDATE pomodoro_sessions SET completed = 1, end_time = ? WHERE id = ?",
		end.Format(constants.TimestampFormat), id)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) GetSessions(sinceDate string) ([]models.Session, error) {
	query := "SELECT " + sessionColumns + " FROM pomodoro_sessions"
	args := []interface{}{}
	if sinceDate != "" {
		query += " WHERE date >= ?"
		args = append(args, sinceDate)
	}
	query += " ORDER BY start_time DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func scanSession(row rowScanner) (models.Session, error) {
	var session models.Session
	var taskID, endTime sql.NullString
	var startTime string

	err := row.Scan(&session.ID, &taskID, &startTime, &endTime,
		&session.DurationMinutes, &session.Completed, &session.Date)
	if err != nil {
		return models.Session{}, err
	}

	if taskID.Valid {
		session.TaskID = &taskID.String
	}

	session.StartTime, err = time.Parse(constants.TimestampFormat, startTime)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to parse start_time: %w", err)
	}
	if endTime.Valid {
		t, err := time.Parse(constants.TimestampFormat, endTime.String)
		if err != nil {
			return models.Session{}, fmt.Errorf("failed to parse end_time: %w", err)
		}
		session.EndTime = &t
	}

	return session, nil
}
