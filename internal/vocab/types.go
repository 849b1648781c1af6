// Package vocab defines the word records of a lexmem vault, the SQLite
// store that persists them, and the priority scheduler that orders them
// for review.
package vocab

import (
	"time"
	"unicode/utf8"

	"github.com/lexmem/lexmem/internal/srs"
)

// Word is a single vault entry. The word itself is the key; meaning,
// example and related are display fields the engine shows but never
// interprets. Memory carries the spaced-repetition state.
type Word struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	// Example is revealed at hint level 1, Related (phrases, synonyms)
	// at hint level 2.
	Example string `json:"example,omitempty"`
	Related string `json:"related,omitempty"`

	Memory srs.MemoryState `json:"memory"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Length returns the word length in characters, the quantity the model
// uses to normalize expected response time.
func (w Word) Length() int {
	return utf8.RuneCountInString(w.Word)
}
