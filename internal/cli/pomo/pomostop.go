package pomo

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type PomoStopCmd struct{}

func (c *PomoStopCmd) Run(ctx *cli.Context) error {
	active, err := ctx.Pomodoro.Active()
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("No active session.")
		return nil
	}

	if err := ctx.Pomodoro.Complete(active.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Session completed: %d minutes logged.\n", active.DurationMinutes)
	return nil
}
