package pomo

import (
	"fmt"
	"time"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type PomoStatusCmd struct{}

func (c *PomoStatusCmd) Run(ctx *cli.Context) error {
	active, err := ctx.Pomodoro.Active()
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("No active session.")
		return nil
	}

	planned := time.Duration(active.DurationMinutes) * time.Minute
	elapsed := time.Since(active.StartTime)
	remaining := planned - elapsed

	fmt.Printf("Active session %s\n", active.ID)
	if active.TaskID != nil {
		if task, err := ctx.Tasks.Get(*active.TaskID); err == nil {
			fmt.Printf("  Task:      %s\n", task.Title)
		}
	}
	fmt.Printf("  Started:   %s\n", active.StartTime.Local().Format("15:04:05"))
	fmt.Printf("  Elapsed:   %s\n", cli.FormatDuration(elapsed))
	if remaining > 0 {
		fmt.Printf("  Remaining: %s\n", cli.FormatDuration(remaining))
	} else {
		fmt.Println("  Timer is up. Finish with 'focusdeck pomo stop'.")
	}
	return nil
}
