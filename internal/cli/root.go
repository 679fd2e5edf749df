package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/focusdeck/focusdeck/internal/backup"
	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/logger"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/pomodoro"
	"github.com/focusdeck/focusdeck/internal/storage"
	"github.com/focusdeck/focusdeck/internal/tasks"
	"github.com/focusdeck/focusdeck/internal/tracker"
)

type Context struct {
	Store    storage.Provider
	Tasks    *tasks.Service
	Tracker  *tracker.Tracker
	Pomodoro *pomodoro.Engine
}

func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:    store,
		Tasks:    tasks.NewService(store),
		Tracker:  tracker.New(store),
		Pomodoro: pomodoro.New(store),
	}
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// StatusLabel renders a day's completion color for plain-text output.
func StatusLabel(status constants.CompletionStatus) string {
	switch status {
	case constants.StatusDeepGreen:
		return "done"
	case constants.StatusLightGreen:
		return "almost"
	case constants.StatusYellow:
		return "started"
	case constants.StatusFuture:
		return "future"
	default:
		return "none"
	}
}

// FormatRecurrence formats a task's recurrence for display.
func FormatRecurrence(t models.Task) string {
	if !t.IsRecurring {
		return "one-off"
	}
	return string(t.RecurrencePattern)
}

// FormatDuration renders a duration as m:ss for timer displays.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// PrintTaskTree writes an indented task forest to the given builder.
func PrintTaskTree(sb *strings.Builder, forest []models.Task, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, t := range forest {
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		fmt.Fprintf(sb, "%s[%s] %s", indent, mark, t.Title)
		if t.IsRecurring {
			fmt.Fprintf(sb, " (%s)", t.RecurrencePattern)
		}
		if t.DueDate != "" {
			fmt.Fprintf(sb, " due %s", t.DueDate)
		}
		fmt.Fprintf(sb, "  %s\n", t.ID)
		PrintTaskTree(sb, t.Subtasks, depth+1)
	}
}
