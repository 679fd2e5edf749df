package days

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
	"github.com/focusdeck/focusdeck/internal/constants"
)

type DayAssignCmd struct {
	Day    int    `arg:"" help:"Day number (1-60)."`
	TaskID string `arg:"" help:"Task id to assign."`
}

func (c *DayAssignCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.AssignTask(c.TaskID, c.Day, constants.AssignedByManual); err != nil {
		return err
	}

	fmt.Printf("✓ Task assigned to day %d.\n", c.Day)
	return nil
}
