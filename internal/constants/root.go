package constants

// CompletionStatus is the derived color of a tracker day.
type CompletionStatus string

// RecurrencePattern is the repeat interval of a recurring root task.
type RecurrencePattern string

// AssignedBy records who created a task-to-day assignment.
type AssignedBy string

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "focusdeck"
	Version            = "v0.3.1"
	DefaultConfigPath  = "~/.config/focusdeck/focusdeck.db"
	DefaultKeyringUser = "database-connection"

	// TrackerDays is the fixed size of the progress tracker.
	TrackerDays = 60

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "focusdeck-"
	BackupFileSuffix = ".db"

	// Completion status constants
	StatusRed        CompletionStatus = "red"
	StatusYellow     CompletionStatus = "yellow"
	StatusLightGreen CompletionStatus = "light_green"
	StatusDeepGreen  CompletionStatus = "deep_green"
	StatusFuture     CompletionStatus = "future"

	// Recurrence constants
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"

	// Assignment origin constants. AssignedByAI is accepted and stored
	// but never produced by the app itself.
	AssignedByManual AssignedBy = "manual"
	AssignedByAI     AssignedBy = "ai"

	// DefaultSessionMinutes is the focus session length used when the
	// user does not pick one.
	DefaultSessionMinutes = 25

	// MaxInteractiveDepth caps subtask nesting in the TUI form. The
	// engine itself accepts deeper trees.
	MaxInteractiveDepth = 3

	// Session States
	StateTasks SessionState = iota
	StateTracker
	StateTimer
	StateStats
	StateAddTask
	StateAssignDay
	StateConfirmDelete
)

// RecommendedDurations are the session lengths offered by the
// presentation layer. Any positive duration is accepted by the engine.
var RecommendedDurations = []int{15, 25, 45, 60}
