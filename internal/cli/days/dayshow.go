package days

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type DayShowCmd struct {
	Day int `arg:"" help:"Day number (1-60)."`
}

func (c *DayShowCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Tracker.TasksForDay(c.Day)
	if err != nil {
		return err
	}

	date, err := ctx.Store.GetDayDate(c.Day)
	if err != nil {
		return err
	}

	fmt.Printf("Day %d (%s)\n", c.Day, date)
	if len(tasks) == 0 {
		fmt.Println("  No tasks assigned.")
		return nil
	}

	for _, t := range tasks {
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  %s\n", mark, t.Title, t.ID)
	}
	return nil
}
