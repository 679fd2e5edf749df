package pomo

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type PomoStatsCmd struct{}

func (c *PomoStatsCmd) Run(ctx *cli.Context) error {
	stats, err := ctx.Pomodoro.Stats()
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Println("Focus statistics:")
	fmt.Printf("  Current streak:  %d day(s)\n", stats.CurrentStreak)
	fmt.Printf("  Longest streak:  %d day(s)\n", stats.LongestStreak)
	fmt.Printf("  Task sessions:   %d\n", stats.TotalTasksCompleted)
	fmt.Printf("  Total minutes:   %d\n", stats.TotalStudyMinutes)
	if stats.LastStudyDate != "" {
		fmt.Printf("  Last session:    %s\n", stats.LastStudyDate)
	}
	return nil
}
