package tasks

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	completed, err := ctx.Tasks.ToggleCompletion(c.ID)
	if err != nil {
		return err
	}

	if completed {
		fmt.Println("✓ Task completed.")
	} else {
		fmt.Println("Task reopened.")
	}
	return nil
}
