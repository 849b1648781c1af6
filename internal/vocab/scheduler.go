package vocab

import (
	"math"
	"sort"
	"time"

	"github.com/lexmem/lexmem/internal/srs"
)

// Scheduled pairs a word with its review priority for one session. The
// priority is recomputed every session and never persisted.
type Scheduled struct {
	Word
	Priority float64
}

// Priority is the current forgetting probability of the word's memory
// state. The formula approaches 1 asymptotically but saturates to exactly
// 1 in floating point after a few weeks at low strength; past that point
// a log-overdue term is added so severely overdue words still separate
// from each other in the ordering.
func Priority(st srs.MemoryState, now time.Time) float64 {
	days := st.DaysSince(now)
	p := srs.ForgetProbability(st.Strength, st.Difficulty, days)
	if p >= 1 {
		p += math.Log1p(days)
	}
	return p
}

// Rank orders words by priority, most likely to be forgotten first. The
// sort is stable: ties keep the traversal order of the input.
func Rank(words []Word, now time.Time) []Scheduled {
	ranked := make([]Scheduled, 0, len(words))
	for _, w := range words {
		ranked = append(ranked, Scheduled{
			Word:     w,
			Priority: Priority(w.Memory, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked
}

// TopN ranks the full collection and returns the n highest-priority words.
// n <= 0 or n beyond the collection returns everything.
func TopN(words []Word, n int, now time.Time) []Scheduled {
	ranked := Rank(words, now)
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Range takes the contiguous slice [start, end] (1-based, inclusive) of
// the collection in its stored position order, then ranks only that slice.
// This intentionally reviews a different ordering than TopN over the same
// words. Bounds are clamped; an inverted or empty range returns nil.
func Range(words []Word, start, end int, now time.Time) []Scheduled {
	if start < 1 {
		start = 1
	}
	if end > len(words) {
		end = len(words)
	}
	if start > end {
		return nil
	}
	return Rank(words[start-1:end], now)
}
