package days

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type DayListCmd struct{}

func (c *DayListCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Tracker.ListDays()
	if err != nil {
		return fmt.Errorf("failed to list days: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("Day tracker not initialized. Run 'focusdeck init' first.")
		return nil
	}

	fmt.Println("Day  Date        Done  Status")
	for _, d := range entries {
		fmt.Printf("%3d  %s  %d/%d   %s\n",
			d.DayNumber, d.Date, d.TasksCompleted, d.TasksTotal, cli.StatusLabel(d.CompletionStatus))
	}
	return nil
}
