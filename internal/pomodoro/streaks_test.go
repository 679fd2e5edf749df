package pomodoro

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/utils"
)

func completedOn(date string) models.Session {
	start, _ := utils.ParseDate(date)
	return models.Session{
		ID:              uuid.New().String(),
		StartTime:       start.Add(8 * time.Hour),
		DurationMinutes: 25,
		Completed:       true,
		Date:            date,
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	if stats.CurrentStreak != 0 || stats.LongestStreak != 0 || stats.LastStudyDate != "" {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestComputeStatsStreakEndingToday(t *testing.T) {
	now := time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedOn("2026-05-08"),
		completedOn("2026-05-09"),
		completedOn("2026-05-10"),
	}

	stats := ComputeStats(sessions, now)
	if stats.CurrentStreak != 3 {
		t.Errorf("expected current streak 3, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("expected longest streak 3, got %d", stats.LongestStreak)
	}
	if stats.LastStudyDate != "2026-05-10" {
		t.Errorf("expected last study date 2026-05-10, got %s", stats.LastStudyDate)
	}
}

func TestComputeStatsStreakEndingYesterdayStillCounts(t *testing.T) {
	now := time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedOn("2026-05-09"),
		completedOn("2026-05-10"),
	}

	stats := ComputeStats(sessions, now)
	if stats.CurrentStreak != 2 {
		t.Errorf("expected current streak 2, got %d", stats.CurrentStreak)
	}
}

func TestComputeStatsBrokenStreakReadsZero(t *testing.T) {
	now := time.Date(2026, 5, 15, 9, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedOn("2026-05-09"),
		completedOn("2026-05-10"),
	}

	stats := ComputeStats(sessions, now)
	if stats.CurrentStreak != 0 {
		t.Errorf("expected broken streak to read 0, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("longest streak should survive the break, got %d", stats.LongestStreak)
	}
}

func TestComputeStatsLongestRunInThePast(t *testing.T) {
	now := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedOn("2026-05-01"),
		completedOn("2026-05-02"),
		completedOn("2026-05-03"),
		completedOn("2026-05-04"),
		completedOn("2026-05-19"),
		completedOn("2026-05-20"),
	}

	stats := ComputeStats(sessions, now)
	if stats.LongestStreak != 4 {
		t.Errorf("expected longest streak 4, got %d", stats.LongestStreak)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("expected current streak 2, got %d", stats.CurrentStreak)
	}
}

func TestComputeStatsMultipleSessionsSameDay(t *testing.T) {
	now := time.Date(2026, 5, 10, 20, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		completedOn("2026-05-10"),
		completedOn("2026-05-10"),
		completedOn("2026-05-10"),
	}

	stats := ComputeStats(sessions, now)
	if stats.CurrentStreak != 1 {
		t.Errorf("same-day sessions are one streak day, got %d", stats.CurrentStreak)
	}
	if stats.TotalStudyMinutes != 75 {
		t.Errorf("expected 75 minutes, got %d", stats.TotalStudyMinutes)
	}
}

func TestCountdownTickAndPause(t *testing.T) {
	c := NewCountdown(3 * time.Second)

	if c.Tick(time.Second) {
		t.Error("tick 1 should not finish")
	}
	c.Pause()
	if c.Tick(time.Second) {
		t.Error("paused tick should be ignored")
	}
	if c.Remaining() != 2*time.Second {
		t.Errorf("paused countdown should hold at 2s, got %s", c.Remaining())
	}

	c.Resume()
	if c.Tick(time.Second) {
		t.Error("tick 2 should not finish")
	}
	if !c.Tick(time.Second) {
		t.Error("final tick should report completion")
	}
	if !c.Done() || c.Running() {
		t.Errorf("finished countdown should be done and stopped")
	}
	if c.Tick(time.Second) {
		t.Error("ticking a finished countdown should be a no-op")
	}
}
