package pomodoro

import (
	"sort"
	"time"

	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/utils"
)

// ComputeStats derives the streak statistics from a session list. Only
// completed sessions count. The current streak is the run of
// consecutive study days ending today or yesterday; a last study date
// older than that means the streak is broken and reads as zero.
func ComputeStats(sessions []models.Session, now time.Time) models.Stats {
	var stats models.Stats

	seen := make(map[string]bool)
	var dates []time.Time
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		stats.TotalStudyMinutes += s.DurationMinutes
		if s.TaskID != nil {
			stats.TotalTasksCompleted++
		}
		if !seen[s.Date] {
			if d, err := utils.ParseDate(s.Date); err == nil {
				seen[s.Date] = true
				dates = append(dates, d)
			}
		}
	}

	if len(dates) == 0 {
		return stats
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	stats.LastStudyDate = utils.DateOf(dates[len(dates)-1])

	run := 1
	longest := 1
	for i := 1; i < len(dates); i++ {
		if utils.DaysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	stats.LongestStreak = longest

	gap := utils.DaysBetween(dates[len(dates)-1], now)
	if gap == 0 || gap == 1 {
		stats.CurrentStreak = run
	}

	return stats
}
