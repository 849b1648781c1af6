package session

import (
	"encoding"
	"fmt"
)

// Outcome is the terminal state of a session. Quitting is a normal
// outcome, not an error: it is returned as a value and never signalled
// through panics or sentinel errors.
type Outcome int

const (
	Completed Outcome = iota
	Quit
	Errored
)

var outcomeNames = [...]string{
	Completed: "completed",
	Quit:      "quit",
	Errored:   "error",
}

// Compile-time interface checks.
var (
	_ fmt.Stringer           = Outcome(0)
	_ encoding.TextMarshaler = Outcome(0)
)

// String returns the outcome's name. For invalid values it returns
// "Outcome(n)".
func (o Outcome) String() string {
	if o >= Completed && o <= Errored {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler for the session log.
func (o Outcome) MarshalText() ([]byte, error) {
	if o < Completed || o > Errored {
		return nil, fmt.Errorf("session: invalid outcome: %d", int(o))
	}
	return []byte(outcomeNames[o]), nil
}
