package tasks

import (
	"fmt"
	"strings"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	forest, err := ctx.Tasks.List()
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(forest) == 0 {
		fmt.Println("No tasks yet. Add one with 'focusdeck task add'.")
		return nil
	}

	var sb strings.Builder
	cli.PrintTaskTree(&sb, forest, 0)
	fmt.Print(sb.String())
	return nil
}
