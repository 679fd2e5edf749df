package pomo

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type PomoStartCmd struct {
	Task     string `short:"t" help:"Task id to attach the session to."`
	Duration int    `short:"d" help:"Session length in minutes. Defaults to the configured session length."`
}

func (c *PomoStartCmd) Run(ctx *cli.Context) error {
	duration := c.Duration
	if duration == 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		duration = settings.DefaultSessionMinutes
	}

	var taskID *string
	if c.Task != "" {
		taskID = &c.Task
	}

	session, err := ctx.Pomodoro.Start(taskID, duration)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Session started: %d minutes (%s)\n", session.DurationMinutes, session.ID)
	fmt.Println("  Finish it with 'focusdeck pomo stop' when the timer is up.")
	return nil
}
