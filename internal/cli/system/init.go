package system

import (
	"fmt"
	"os"
	"time"

	"github.com/focusdeck/focusdeck/internal/cli"
	"github.com/focusdeck/focusdeck/internal/utils"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Anchor string `help:"First day of the 60-day tracker (YYYY-MM-DD). Defaults to today."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	anchor := time.Now()
	if c.Anchor != "" {
		parsed, err := utils.ParseDate(c.Anchor)
		if err != nil {
			return fmt.Errorf("invalid anchor date %q: expected YYYY-MM-DD", c.Anchor)
		}
		anchor = parsed
	}

	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if err := ctx.Tracker.Initialize(anchor); err != nil {
		return fmt.Errorf("failed to initialize day tracker: %w", err)
	}

	fmt.Printf("Initialized focusdeck storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Day tracker starts on %s.\n", utils.DateOf(anchor))
	return nil
}
