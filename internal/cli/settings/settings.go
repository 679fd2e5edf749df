package settings

import (
	"fmt"

	"github.com/focusdeck/focusdeck/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	SessionMinutes *int `help:"Default focus session length in minutes."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Default Session Minutes: %d\n", settings.DefaultSessionMinutes)
		return nil
	}

	updated := false
	if c.SessionMinutes != nil {
		settings.DefaultSessionMinutes = *c.SessionMinutes
		updated = true
	}

	if updated {
		if err := settings.Validate(); err != nil {
			return err
		}
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
