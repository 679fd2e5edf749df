// Package tui is the interactive front end: a tabbed bubbletea app with
// the task tree, the 60-day tracker grid, a pomodoro timer, and streak
// statistics.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/focusdeck/focusdeck/internal/constants"
	"github.com/focusdeck/focusdeck/internal/models"
	"github.com/focusdeck/focusdeck/internal/pomodoro"
	"github.com/focusdeck/focusdeck/internal/storage"
	"github.com/focusdeck/focusdeck/internal/tasks"
	"github.com/focusdeck/focusdeck/internal/tracker"
)

// TaskFormModel holds the huh form values for adding a task.
type TaskFormModel struct {
	Title       string
	Description string
	Due         string
	Recurrence  string
	ParentID    *string
}

// taskRow is a line in the flattened task tree.
type taskRow struct {
	task  models.Task
	depth int
}

type Model struct {
	store    storage.Provider
	tasks    *tasks.Service
	tracker  *tracker.Tracker
	pomodoro *pomodoro.Engine

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	forest []models.Task
	rows   []taskRow
	cursor int

	days      []models.DayEntry
	dayCursor int
	dayTasks  []models.Task

	stats models.Stats

	activeSession *pomodoro.ActiveTimer
	durationIdx   int

	form           *huh.Form
	taskForm       *TaskFormModel
	assign         *assignForm
	taskToDeleteID string

	quitting  bool
	width     int
	height    int
	formError string
	statusMsg string
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store:    store,
		tasks:    tasks.NewService(store),
		tracker:  tracker.New(store),
		pomodoro: pomodoro.New(store),
		state:    constants.StateTasks,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}

	// Default session length cursor starts at the configured duration
	// when it is one of the recommended ones.
	if settings, err := store.GetSettings(); err == nil {
		for i, d := range constants.RecommendedDurations {
			if d == settings.DefaultSessionMinutes {
				m.durationIdx = i
			}
		}
	} else {
		m.durationIdx = 1
	}

	m.refreshTasks()
	m.refreshDays()
	m.refreshStats()
	m.resumeActiveSession()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateTasks:
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.AddSub, m.keys.Delete, m.keys.Assign)
	case constants.StateTracker:
		keys = append(keys, m.keys.Left, m.keys.Right, m.keys.Enter)
	case constants.StateTimer:
		keys = append(keys, m.keys.Start, m.keys.Pause, m.keys.Stop)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateTasks:
		actions = []key.Binding{m.keys.Add, m.keys.AddSub, m.keys.Delete, m.keys.Assign}
	case constants.StateTimer:
		actions = []key.Binding{m.keys.Start, m.keys.Pause, m.keys.Stop}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if m.activeSession != nil {
		return tickCmd()
	}
	return nil
}

func (m *Model) refreshTasks() {
	forest, err := m.tasks.List()
	if err != nil {
		m.formError = err.Error()
		return
	}
	m.forest = forest
	m.rows = flattenForest(forest, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) refreshDays() {
	days, err := m.tracker.ListDays()
	if err != nil {
		m.formError = err.Error()
		return
	}
	m.days = days
	if m.dayCursor >= len(m.days) {
		m.dayCursor = len(m.days) - 1
	}
	if m.dayCursor < 0 {
		m.dayCursor = 0
	}
	m.refreshDayTasks()
}

func (m *Model) refreshDayTasks() {
	m.dayTasks = nil
	if len(m.days) == 0 {
		return
	}
	tasks, err := m.tracker.TasksForDay(m.days[m.dayCursor].DayNumber)
	if err == nil {
		m.dayTasks = tasks
	}
}

func (m *Model) refreshStats() {
	stats, err := m.pomodoro.Stats()
	if err != nil {
		m.formError = err.Error()
		return
	}
	m.stats = stats
}

// resumeActiveSession picks up a session left running by a previous
// process so the timer tab can continue or finish it.
func (m *Model) resumeActiveSession() {
	session, err := m.pomodoro.Active()
	if err != nil || session == nil {
		return
	}

	planned := time.Duration(session.DurationMinutes) * time.Minute
	remaining := planned - time.Since(session.StartTime)
	if remaining < 0 {
		remaining = 0
	}
	m.activeSession = &pomodoro.ActiveTimer{
		Session:   *session,
		Countdown: pomodoro.NewCountdown(remaining),
	}
}

func flattenForest(forest []models.Task, depth int) []taskRow {
	var rows []taskRow
	for _, t := range forest {
		rows = append(rows, taskRow{task: t, depth: depth})
		rows = append(rows, flattenForest(t.Subtasks, depth+1)...)
	}
	return rows
}

func (m Model) selectedTask() *models.Task {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	t := m.rows[m.cursor].task
	return &t
}
