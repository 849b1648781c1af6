// Package session drives one interactive study session: it selects a
// working set by review priority, walks the operator through one review
// per word with escalating hints, applies the memory model, persists the
// result and aggregates statistics. A single session runs at a time with
// exactly one outstanding prompt; quitting mid-session is a normal
// outcome that keeps every update already applied.
package session

import (
	"fmt"
	"time"

	"github.com/lexmem/lexmem/internal/srs"
	"github.com/lexmem/lexmem/internal/vocab"
)

const maxHintLevel = 2

// Selection describes how the working set is chosen. When Start and End
// are both positive the positional range mode is used; otherwise the top
// Limit words by priority are taken (Limit <= 0 means all).
type Selection struct {
	Limit int `json:"limit,omitempty"`
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`
}

func (sel Selection) ranged() bool {
	return sel.Start > 0 && sel.End > 0
}

func (sel Selection) pick(words []vocab.Word, now time.Time) []vocab.Scheduled {
	if sel.ranged() {
		return vocab.Range(words, sel.Start, sel.End, now)
	}
	return vocab.TopN(words, sel.Limit, now)
}

// Result is what a finished session reports back to the caller.
type Result struct {
	Stats   Stats
	Outcome Outcome
	LogPath string
}

// Session wires the collaborators of one study run. Construct with New;
// the zero value is not usable.
type Session struct {
	repo   Repository
	ui     UI
	log    Logger
	params srs.Params
	sel    Selection

	// now is swappable for tests.
	now func() time.Time
}

// New creates a session over the given collaborators.
func New(repo Repository, ui UI, log Logger, params srs.Params, sel Selection) *Session {
	return &Session{
		repo:   repo,
		ui:     ui,
		log:    log,
		params: params,
		sel:    sel,
		now:    time.Now,
	}
}

// Run executes the session to one of its terminal states. The returned
// error is non-nil only for the Errored outcome; Completed and Quit are
// normal terminations. Updates applied before a quit or an error are
// never rolled back.
func (s *Session) Run() (Result, error) {
	var stats Stats

	words, err := s.repo.GetAll()
	if err != nil {
		return s.finish(stats, Errored), fmt.Errorf("session: load words: %w", err)
	}

	queue := s.sel.pick(words, s.now())
	s.log.RecordRanking(queue)

	if len(queue) == 0 {
		s.ui.Infof("Nothing to review.")
		return s.finish(stats, Completed), nil
	}

	for i, item := range queue {
		s.ui.Infof("Word %d of %d", i+1, len(queue))

		score, hints, latency, choice, err := s.reviewOne(item.Word)
		if err != nil {
			return s.finish(stats, Errored), err
		}
		if choice == ChoiceQuit {
			return s.finish(stats, Quit), nil
		}

		if err := s.apply(item, score, hints, latency, &stats); err != nil {
			return s.finish(stats, Errored), err
		}
	}

	return s.finish(stats, Completed), nil
}

// reviewOne runs the prompt loop for a single word: present, escalate
// hints on demand, and return the graded answer. Latency runs from the
// first hint-0 display to the moment an answer is chosen, hint requests
// included.
func (s *Session) reviewOne(w vocab.Word) (srs.Score, int, time.Duration, Choice, error) {
	hintLevel := 0
	start := s.now()

	for {
		s.ui.Present(w, hintLevel)

		choice, err := s.ui.Choose()
		if err != nil {
			return srs.No, hintLevel, 0, choice, fmt.Errorf("session: read choice: %w", err)
		}

		switch choice {
		case ChoiceHint:
			if hintLevel >= maxHintLevel {
				s.ui.Warnf("No more hints for this word.")
				continue
			}
			hintLevel++
			continue

		case ChoicePerfect:
			if hintLevel > 0 {
				s.ui.Warnf("Perfect is only available before any hint.")
				continue
			}
			return srs.Perfect, hintLevel, s.now().Sub(start), choice, nil

		case ChoiceKnow:
			score := [maxHintLevel + 1]srs.Score{srs.Know, srs.OneHint, srs.TwoHints}[hintLevel]
			return score, hintLevel, s.now().Sub(start), choice, nil

		case ChoiceNo:
			s.ui.Reveal(w)
			return srs.No, hintLevel, s.now().Sub(start), choice, nil

		case ChoiceQuit:
			return srs.No, hintLevel, 0, choice, nil

		default:
			s.ui.Warnf("Unrecognized choice %v.", choice)
		}
	}
}

// apply runs the model for one graded answer, persists the new state and
// records the review. A persistence failure is surfaced as a warning and
// noted on the log row but does not stop the session; a model validation
// error does.
func (s *Session) apply(item vocab.Scheduled, score srs.Score, hints int, latency time.Duration, stats *Stats) error {
	now := s.now()

	ev := srs.ReviewEvent{
		Score:      score,
		AnswerTime: latency,
		ItemLength: item.Word.Length(),
		DaysSince:  item.Word.Memory.DaysSince(now),
	}
	next, diag, err := s.params.Review(ev, item.Word.Memory)
	if err != nil {
		return fmt.Errorf("session: review %q: %w", item.Word.Word, err)
	}
	next.LastReviewed = now

	row := Review{
		Word:      item.Word.Word,
		Priority:  item.Priority,
		Timestamp: now,
		Score:     score,
		HintsUsed: hints,
		AnswerMs:  latency.Milliseconds(),
		Diag:      diag,
	}

	if err := s.repo.UpdateMemory(item.Word.Word, next); err != nil {
		s.ui.Warnf("Could not save %q: %v", item.Word.Word, err)
		row.PersistErr = err.Error()
	}

	s.log.RecordReview(row)
	stats.record(score)
	return nil
}

// finish finalizes the log for any terminal state. Log failures are not
// allowed to mask the session's own outcome.
func (s *Session) finish(stats Stats, outcome Outcome) Result {
	path, err := s.log.Finalize(stats, outcome)
	if err != nil {
		s.ui.Warnf("Could not write session log: %v", err)
	}
	return Result{Stats: stats, Outcome: outcome, LogPath: path}
}
