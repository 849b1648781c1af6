package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Score grades a single answer. The ordering is meaningful: anything at or
// above Know counts as a full-credit answer (no hint used) and feeds the
// streak; anything below resets it.
type Score int

const (
	No       Score = iota // failed to recall
	TwoHints              // recalled only after both hints
	OneHint               // recalled after one hint
	Know                  // recalled unaided
	Perfect               // instant, confident recall
)

// scoreWeights maps each score to its contribution to answer quality.
var scoreWeights = [...]float64{
	No:       0,
	TwoHints: 0.2,
	OneHint:  0.5,
	Know:     1.0,
	Perfect:  1.5,
}

var scoreNames = [...]string{
	No:       "no",
	TwoHints: "two-hints",
	OneHint:  "one-hint",
	Know:     "know",
	Perfect:  "perfect",
}

var scoreByName = map[string]Score{
	"no":        No,
	"two-hints": TwoHints,
	"one-hint":  OneHint,
	"know":      Know,
	"perfect":   Perfect,
}

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Score(0)
	_ json.Marshaler           = Score(0)
	_ json.Unmarshaler         = (*Score)(nil)
	_ encoding.TextMarshaler   = Score(0)
	_ encoding.TextUnmarshaler = (*Score)(nil)
)

// IsValid reports whether s is one of the five defined scores.
func (s Score) IsValid() bool {
	return s >= No && s <= Perfect
}

// Weight returns the score's contribution to answer quality.
func (s Score) Weight() float64 {
	if !s.IsValid() {
		return 0
	}
	return scoreWeights[s]
}

// Correct reports whether the answer earns full credit: recalled without
// any hint. Only correct answers extend the streak and earn speed credit.
func (s Score) Correct() bool {
	return s >= Know
}

// String returns the score's name ("no", "know", ...). For invalid values
// it returns "Score(n)".
func (s Score) String() string {
	if s.IsValid() {
		return scoreNames[s]
	}
	return fmt.Sprintf("Score(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Score) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("srs: invalid score: %d", int(s))
	}
	return []byte(scoreNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Score) UnmarshalText(text []byte) error {
	v, ok := scoreByName[string(text)]
	if !ok {
		return fmt.Errorf("srs: invalid score: %q", text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. Score serializes as a JSON string.
func (s Score) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (s *Score) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("srs: invalid score: %s", data)
	}
	return s.UnmarshalText([]byte(str))
}
