package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/focusdeck/focusdeck/internal/constants"
)

// trackerGridColumns is the width of the 60-day grid, ten days per row.
const trackerGridColumns = 10

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateTasks:
		content = docStyle.Render(m.viewTasks())
	case constants.StateTracker:
		content = docStyle.Render(m.viewTracker())
	case constants.StateTimer:
		content = docStyle.Render(m.viewTimer())
	case constants.StateStats:
		content = docStyle.Render(m.viewStats())
	case constants.StateAddTask, constants.StateAssignDay:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var notices []string
	if m.formError != "" {
		notices = append(notices, errorStyle.Render("Error: "+m.formError))
	}
	if m.statusMsg != "" {
		notices = append(notices, dimStyle.Render(m.statusMsg))
	}

	parts := []string{m.viewTabs()}
	parts = append(parts, notices...)
	parts = append(parts, content, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	titles := []string{"Tasks", "Tracker", "Timer", "Stats"}
	states := []constants.SessionState{
		constants.StateTasks, constants.StateTracker, constants.StateTimer, constants.StateStats,
	}

	var tabs []string
	for i, title := range titles {
		if m.state == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTasks() string {
	if len(m.rows) == 0 {
		return dimStyle.Render("No tasks yet. Press 'a' to add one.")
	}

	var sb strings.Builder
	for i, row := range m.rows {
		mark := "[ ]"
		if row.task.IsCompleted {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", row.depth), mark, row.task.Title)
		if row.task.IsRecurring {
			line += dimStyle.Render(fmt.Sprintf(" (%s)", row.task.RecurrencePattern))
		}
		if row.task.DueDate != "" {
			line += dimStyle.Render(" due " + row.task.DueDate)
		}

		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) viewTracker() string {
	if len(m.days) == 0 {
		return dimStyle.Render("Day tracker not initialized. Run 'focusdeck init' first.")
	}

	var sb strings.Builder
	for i, d := range m.days {
		cell := fmt.Sprintf("%2d", d.DayNumber)
		style, ok := dayCellStyles[d.CompletionStatus]
		if !ok {
			style = dimStyle
		}
		if i == m.dayCursor {
			cell = style.Reverse(true).Render(cell)
		} else {
			cell = style.Render(cell)
		}
		sb.WriteString(cell)
		if (i+1)%trackerGridColumns == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}

	selected := m.days[m.dayCursor]
	sb.WriteString(fmt.Sprintf("\nDay %d (%s): %d/%d tasks done\n",
		selected.DayNumber, selected.Date, selected.TasksCompleted, selected.TasksTotal))

	if len(m.dayTasks) == 0 {
		sb.WriteString(dimStyle.Render("  No tasks assigned.") + "\n")
	}
	for _, t := range m.dayTasks {
		mark := "[ ]"
		if t.IsCompleted {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, t.Title))
	}
	return sb.String()
}

func (m Model) viewTimer() string {
	if m.activeSession == nil {
		minutes := constants.RecommendedDurations[m.durationIdx]
		picker := fmt.Sprintf("◀ %d min ▶", minutes)
		lines := []string{
			timerStyle.Render(picker),
			"",
			dimStyle.Render("'s' starts a session; the selected task is attached."),
		}
		return lipgloss.JoinVertical(lipgloss.Center, lines...)
	}

	remaining := m.activeSession.Countdown.Remaining()
	state := "running"
	if !m.activeSession.Countdown.Running() {
		state = "paused"
	}

	taskLine := ""
	if m.activeSession.Session.TaskID != nil {
		if task, err := m.tasks.Get(*m.activeSession.Session.TaskID); err == nil {
			taskLine = task.Title
		}
	}

	lines := []string{
		timerStyle.Render(formatCountdown(remaining)),
		dimStyle.Render(state),
	}
	if taskLine != "" {
		lines = append(lines, taskLine)
	}
	lines = append(lines, "", dimStyle.Render("'p' pauses, 'x' finishes"))

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) viewStats() string {
	var sb strings.Builder
	sb.WriteString("Focus statistics\n\n")
	sb.WriteString(fmt.Sprintf("  Current streak:  %d day(s)\n", m.stats.CurrentStreak))
	sb.WriteString(fmt.Sprintf("  Longest streak:  %d day(s)\n", m.stats.LongestStreak))
	sb.WriteString(fmt.Sprintf("  Task sessions:   %d\n", m.stats.TotalTasksCompleted))
	sb.WriteString(fmt.Sprintf("  Total minutes:   %d\n", m.stats.TotalStudyMinutes))
	if m.stats.LastStudyDate != "" {
		sb.WriteString(fmt.Sprintf("  Last session:    %s\n", m.stats.LastStudyDate))
	}
	return sb.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this task and all of its subtasks?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
