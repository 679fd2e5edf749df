package models

import "github.com/focusdeck/focusdeck/internal/errors"

// Settings are the persisted application preferences.
type Settings struct {
	DefaultSessionMinutes int `json:"default_session_minutes"`
}

// Validate checks settings invariants.
func (s Settings) Validate() error {
	if s.DefaultSessionMinutes <= 0 {
		return errors.InvalidInputf("default session minutes must be positive, got %d", s.DefaultSessionMinutes)
	}
	return nil
}
