package session

import "fmt"

// Choice is one operator input token during a review.
type Choice int

const (
	// ChoicePerfect claims instant, confident recall. Only valid before
	// any hint has been shown.
	ChoicePerfect Choice = iota
	// ChoiceKnow claims recall at the current hint level.
	ChoiceKnow
	// ChoiceHint asks for the next hint. Only valid below the last level.
	ChoiceHint
	// ChoiceNo concedes; the full answer is revealed before advancing.
	ChoiceNo
	// ChoiceQuit ends the session immediately, keeping all applied updates.
	ChoiceQuit
)

var choiceNames = [...]string{
	ChoicePerfect: "perfect",
	ChoiceKnow:    "know",
	ChoiceHint:    "hint",
	ChoiceNo:      "no",
	ChoiceQuit:    "quit",
}

// String returns the choice's name. For invalid values it returns
// "Choice(n)".
func (c Choice) String() string {
	if c >= ChoicePerfect && c <= ChoiceQuit {
		return choiceNames[c]
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}
