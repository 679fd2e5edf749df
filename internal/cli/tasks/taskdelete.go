package tasks

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type TaskDeleteCmd struct {
	ID    string `arg:"" help:"Task id."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Tasks.Get(c.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete %q and all of its subtasks? [y/N]: ", task.Title)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Tasks.Delete(c.ID); err != nil {
		return err
	}

	fmt.Println("✓ Task deleted.")
	return nil
}
