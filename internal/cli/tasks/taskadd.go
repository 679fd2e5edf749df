package tasks

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
	"github.com/focusdeck/focusdeck/internal/constants"
	tasksvc "github.com/focusdeck/focusdeck/internal/tasks"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Longer description."`
	Parent      string `short:"p" help:"Parent task id, making this a subtask."`
	Due         string `help:"Due date (YYYY-MM-DD)."`
	Recurrence  string `short:"r" help:"Recurrence pattern (daily|weekly|monthly). Root tasks only."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	input := tasksvc.CreateInput{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
	}
	if c.Parent != "" {
		input.ParentID = &c.Parent
	}
	if c.Recurrence != "" {
		input.IsRecurring = true
		input.RecurrencePattern = constants.RecurrencePattern(c.Recurrence)
	}

	id, err := ctx.Tasks.Create(input)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Task created: %s\n", id)
	return nil
}
