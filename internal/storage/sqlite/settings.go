package sqlite

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "default_session_minutes":
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultSessionMinutes); err != nil {
				return models.Settings{}, fmt.Errorf("parsing default_session_minutes: %w", err)
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		"default_session_minutes", fmt.Sprintf("%d", settings.DefaultSessionMinutes),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) SaveStats(stats models.Stats) error {
	_, err := s.db.Exec(`
		UPDATE user_stats SET
			current_streak = ?,
			longest_streak = ?,
			total_tasks_completed = ?,
			total_study_minutes = ?,
			last_study_date = ?
		WHERE id = 1`,
		stats.CurrentStreak, stats.LongestStreak, stats.TotalTasksCompleted,
		stats.TotalStudyMinutes, stats.LastStudyDate)
	return err
}
