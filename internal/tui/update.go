package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/pomodoro"
	tasksvc "github.com/focusdeck/focusdeck/internal/tasks"
)

// TickMsg drives the pomodoro countdown once per second.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.updateTimer()
	}

	// Form states swallow everything except esc.
	switch m.state {
	case constants.StateAddTask:
		return m.updateAddTaskForm(msg, &cmds)
	case constants.StateAssignDay:
		return m.updateAssignForm(msg, &cmds)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

		switch m.state {
		case constants.StateTasks:
			return m.updateTasksView(msg)
		case constants.StateTracker:
			return m.updateTrackerView(msg)
		case constants.StateTimer:
			return m.updateTimerView(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Tab):
		m.statusMsg = ""
		switch m.state {
		case constants.StateTasks:
			m.state = constants.StateTracker
			m.refreshDays()
		case constants.StateTracker:
			m.state = constants.StateTimer
		case constants.StateTimer:
			m.state = constants.StateStats
			m.refreshStats()
		case constants.StateStats:
			m.state = constants.StateTasks
			m.refreshTasks()
		}
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.statusMsg = ""
		switch m.state {
		case constants.StateTasks:
			m.state = constants.StateStats
			m.refreshStats()
		case constants.StateTracker:
			m.state = constants.StateTasks
			m.refreshTasks()
		case constants.StateTimer:
			m.state = constants.StateTracker
			m.refreshDays()
		case constants.StateStats:
			m.state = constants.StateTimer
		}
		return true, nil
	}
	return false, nil
}

func (m Model) updateTasksView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if t := m.selectedTask(); t != nil {
			if _, err := m.tasks.ToggleCompletion(t.ID); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
			}
			m.refreshTasks()
		}
	case key.Matches(msg, m.keys.Add):
		m.openTaskForm(nil)
	case key.Matches(msg, m.keys.AddSub):
		if t := m.selectedTask(); t != nil {
			if m.rows[m.cursor].depth >= constants.MaxInteractiveDepth-1 {
				m.statusMsg = "Subtasks are limited to 3 levels here."
				return m, nil
			}
			id := t.ID
			m.openTaskForm(&id)
		}
	case key.Matches(msg, m.keys.Delete):
		if t := m.selectedTask(); t != nil {
			m.taskToDeleteID = t.ID
			m.previousState = m.state
			m.state = constants.StateConfirmDelete
		}
	case key.Matches(msg, m.keys.Assign):
		if t := m.selectedTask(); t != nil {
			m.openAssignForm(t.ID)
		}
	}
	return m, nil
}

func (m Model) updateTrackerView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moved := false
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.dayCursor > 0 {
			m.dayCursor--
			moved = true
		}
	case key.Matches(msg, m.keys.Right):
		if m.dayCursor < len(m.days)-1 {
			m.dayCursor++
			moved = true
		}
	case key.Matches(msg, m.keys.Up):
		if m.dayCursor-trackerGridColumns >= 0 {
			m.dayCursor -= trackerGridColumns
			moved = true
		}
	case key.Matches(msg, m.keys.Down):
		if m.dayCursor+trackerGridColumns < len(m.days) {
			m.dayCursor += trackerGridColumns
			moved = true
		}
	case key.Matches(msg, m.keys.Enter):
		m.refreshDayTasks()
	}
	if moved {
		m.refreshDayTasks()
	}
	return m, nil
}

func (m Model) updateTimerView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.activeSession == nil && m.durationIdx > 0 {
			m.durationIdx--
		}
	case key.Matches(msg, m.keys.Right):
		if m.activeSession == nil && m.durationIdx < len(constants.RecommendedDurations)-1 {
			m.durationIdx++
		}
	case key.Matches(msg, m.keys.Start):
		if m.activeSession != nil {
			return m, nil
		}
		minutes := constants.RecommendedDurations[m.durationIdx]
		var taskID *string
		if t := m.selectedTask(); t != nil {
			id := t.ID
			taskID = &id
		}
		session, err := m.pomodoro.Start(taskID, minutes)
		if err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.activeSession = &pomodoro.ActiveTimer{
			Session:   session,
			Countdown: pomodoro.NewCountdown(time.Duration(minutes) * time.Minute),
		}
		return m, tickCmd()
	case key.Matches(msg, m.keys.Pause):
		if m.activeSession != nil {
			if m.activeSession.Countdown.Running() {
				m.activeSession.Countdown.Pause()
			} else {
				m.activeSession.Countdown.Resume()
				return m, tickCmd()
			}
		}
	case key.Matches(msg, m.keys.Stop):
		if m.activeSession != nil {
			return m.finishSession()
		}
	}
	return m, nil
}

func (m Model) updateTimer() (tea.Model, tea.Cmd) {
	if m.activeSession == nil || !m.activeSession.Countdown.Running() {
		return m, nil
	}
	if m.activeSession.Countdown.Tick(time.Second) {
		return m.finishSession()
	}
	return m, tickCmd()
}

func (m Model) finishSession() (tea.Model, tea.Cmd) {
	if err := m.pomodoro.Complete(m.activeSession.Session.ID); err != nil {
		m.formError = err.Error()
		return m, nil
	}
	m.statusMsg = "Session complete. Nice work."
	m.activeSession = nil
	m.refreshStats()
	return m, nil
}

func (m *Model) openTaskForm(parentID *string) {
	m.taskForm = &TaskFormModel{ParentID: parentID, Recurrence: "none"}
	fields := []huh.Field{
		huh.NewInput().Title("Title").Value(&m.taskForm.Title),
		huh.NewInput().Title("Description").Value(&m.taskForm.Description),
		huh.NewInput().Title("Due date (YYYY-MM-DD, optional)").Value(&m.taskForm.Due),
	}
	// Recurrence only applies to root tasks.
	if parentID == nil {
		fields = append(fields, huh.NewSelect[string]().
			Title("Repeats").
			Options(
				huh.NewOption("never", "none"),
				huh.NewOption("daily", string(constants.RecurrenceDaily)),
				huh.NewOption("weekly", string(constants.RecurrenceWeekly)),
				huh.NewOption("monthly", string(constants.RecurrenceMonthly)),
			).
			Value(&m.taskForm.Recurrence))
	}
	m.form = huh.NewForm(huh.NewGroup(fields...))
	m.previousState = m.state
	m.state = constants.StateAddTask
	m.formError = ""
}

func (m Model) updateAddTaskForm(msg tea.Msg, cmds *[]tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	*cmds = append(*cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		input := tasksvc.CreateInput{
			Title:       m.taskForm.Title,
			Description: m.taskForm.Description,
			ParentID:    m.taskForm.ParentID,
			DueDate:     strings.TrimSpace(m.taskForm.Due),
		}
		if m.taskForm.Recurrence != "none" && m.taskForm.Recurrence != "" {
			input.IsRecurring = true
			input.RecurrencePattern = constants.RecurrencePattern(m.taskForm.Recurrence)
		}
		if _, err := m.tasks.Create(input); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
			m.refreshTasks()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(*cmds...)
}

type assignForm struct {
	taskID string
	day    string
}

func (m *Model) openAssignForm(taskID string) {
	m.assign = &assignForm{taskID: taskID}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Assign to day (1-60)").
			Value(&m.assign.day).
			Validate(func(s string) error {
				_, err := strconv.Atoi(strings.TrimSpace(s))
				return err
			}),
	))
	m.previousState = m.state
	m.state = constants.StateAssignDay
	m.formError = ""
}

func (m Model) updateAssignForm(msg tea.Msg, cmds *[]tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	*cmds = append(*cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		day, err := strconv.Atoi(strings.TrimSpace(m.assign.day))
		if err == nil {
			err = m.tracker.AssignTask(m.assign.taskID, day, constants.AssignedByManual)
		}
		if err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
			m.statusMsg = "Task assigned."
			m.refreshDays()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(*cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y":
		if err := m.tasks.Delete(m.taskToDeleteID); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.taskToDeleteID = ""
		m.state = m.previousState
		m.refreshTasks()
	case "n", "esc":
		m.taskToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}
