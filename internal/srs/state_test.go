package srs

import (
	"testing"
	"time"
)

func TestNewMemoryStateDefaults(t *testing.T) {
	now := time.Now()
	st := NewMemoryState(now)
	if st.Strength != DefaultStrength || st.Difficulty != DefaultDifficulty || st.Streak != 0 {
		t.Errorf("unexpected defaults: %+v", st)
	}
	if !st.LastReviewed.Equal(now) {
		t.Errorf("LastReviewed = %v, want %v", st.LastReviewed, now)
	}
	if !st.Pristine() {
		t.Error("fresh state should be pristine")
	}
}

func TestPristine(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		st   MemoryState
		want bool
	}{
		{"fresh", NewMemoryState(now), true},
		{"grown strength", MemoryState{Strength: 2, Difficulty: 2}, false},
		{"moved difficulty", MemoryState{Strength: 1, Difficulty: 3}, false},
		{"has streak", MemoryState{Strength: 1, Difficulty: 2, Streak: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.st.Pristine(); got != tt.want {
			t.Errorf("%s: Pristine() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	st := MemoryState{LastReviewed: now.Add(-36 * time.Hour)}
	if got := st.DaysSince(now); got != 1.5 {
		t.Errorf("DaysSince = %f, want 1.5", got)
	}

	// Never reviewed.
	if got := (MemoryState{}).DaysSince(now); got != 0 {
		t.Errorf("DaysSince for zero time = %f, want 0", got)
	}

	// Clock skew: last review in the future clamps to 0.
	future := MemoryState{LastReviewed: now.Add(2 * time.Hour)}
	if got := future.DaysSince(now); got != 0 {
		t.Errorf("DaysSince with future timestamp = %f, want 0", got)
	}
}
