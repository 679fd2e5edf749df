package pomodoro

import (
	"time"

	"github.com/focusdeck/focusdeck/internal/models"
)

// ActiveTimer pairs a stored session with its in-memory countdown.
type ActiveTimer struct {
	Session   models.Session
	Countdown Countdown
}

// Countdown is the in-memory timer state for an interactive session.
// Pause and resume never touch storage; only completion does.
type Countdown struct {
	remaining time.Duration
	running   bool
}

func NewCountdown(d time.Duration) Countdown {
	return Countdown{remaining: d, running: true}
}

func (c *Countdown) Pause()  { c.running = false }
func (c *Countdown) Resume() { c.running = true }

func (c *Countdown) Running() bool { return c.running }

func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

func (c *Countdown) Done() bool { return c.remaining <= 0 }

// Tick advances the countdown by elapsed wall time while running and
// reports whether it just reached zero. Ticks while paused are ignored.
func (c *Countdown) Tick(elapsed time.Duration) bool {
	if !c.running || c.remaining <= 0 {
		return false
	}
	c.remaining -= elapsed
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		return true
	}
	return false
}
