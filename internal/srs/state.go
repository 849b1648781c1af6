package srs

import "time"

// MemoryState is the per-word memory record maintained across reviews.
// Strength is measured in days; Difficulty is a unitless 1-10 scale.
// A zero LastReviewed means the word has never been reviewed.
type MemoryState struct {
	Strength     float64   `json:"strength"`
	Difficulty   float64   `json:"difficulty"`
	Streak       int       `json:"streak"`
	LastReviewed time.Time `json:"last_reviewed"`
}

// NewMemoryState returns the default state assigned when a word is first
// added to the vault.
func NewMemoryState(now time.Time) MemoryState {
	return MemoryState{
		Strength:     DefaultStrength,
		Difficulty:   DefaultDifficulty,
		Streak:       0,
		LastReviewed: now,
	}
}

// Pristine reports whether the state still carries the defaults from
// NewMemoryState, i.e. the word has never had a review applied. The
// same-day-repeat guard skips pristine states so the very first review
// of a freshly added word always registers.
func (m MemoryState) Pristine() bool {
	return m.Strength == DefaultStrength &&
		m.Difficulty == DefaultDifficulty &&
		m.Streak == 0
}

// DaysSince returns the elapsed days between the last review and now.
// Never-reviewed states and clock skew both report 0.
func (m MemoryState) DaysSince(now time.Time) float64 {
	if m.LastReviewed.IsZero() {
		return 0
	}
	days := now.Sub(m.LastReviewed).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}
