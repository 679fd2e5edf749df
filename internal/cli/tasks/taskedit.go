package tasks

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
	"github.com/focusdeck/focusdeck/internal/constants"
	tasksvc "github.com/focusdeck/focusdeck/internal/tasks"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task id."`
	Title       *string `help:"New title."`
	Description *string `short:"d" help:"New description."`
	Due         *string `help:"New due date (YYYY-MM-DD), empty to clear."`
	Recurrence  *string `short:"r" help:"New recurrence pattern (daily|weekly|monthly), empty to stop recurring."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	input := tasksvc.UpdateInput{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
	}
	if c.Recurrence != nil {
		recurring := *c.Recurrence != ""
		input.IsRecurring = &recurring
		if recurring {
			pattern := constants.RecurrencePattern(*c.Recurrence)
			input.RecurrencePattern = &pattern
		}
	}

	if input.Title == nil && input.Description == nil && input.DueDate == nil && input.IsRecurring == nil {
		fmt.Println("No changes specified.")
		return nil
	}

	if err := ctx.Tasks.Update(c.ID, input); err != nil {
		return err
	}

	fmt.Println("✓ Task updated.")
	return nil
}
