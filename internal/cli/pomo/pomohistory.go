package pomo

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type PomoHistoryCmd struct {
	Days int `short:"n" help:"Limit to the last N calendar days. 0 shows everything." default:"0"`
}

func (c *PomoHistoryCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Pomodoro.History(c.Days)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	fmt.Println("Date        Start     Minutes  State   Task")
	for _, s := range sessions {
		state := "done"
		if !s.Completed {
			state = "active"
		}
		taskLabel := "-"
		if s.TaskID != nil {
			if task, err := ctx.Tasks.Get(*s.TaskID); err == nil {
				taskLabel = task.Title
			} else {
				taskLabel = *s.TaskID
			}
		}
		fmt.Printf("%s  %s  %7d  %-6s  %s\n",
			s.Date, s.StartTime.Local().Format("15:04:05"), s.DurationMinutes, state, taskLabel)
	}
	return nil
}
