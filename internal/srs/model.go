// Package srs implements the spaced-repetition memory model: pure functions
// that turn one graded answer into an updated strength/difficulty/streak
// state, plus the forgetting-probability estimator that drives review
// priority. Nothing in this package touches the clock, the store, or the
// terminal.
package srs

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinStrength is the floor for strength in days. DefaultStrength and
	// DefaultDifficulty are assigned to new words and restored whenever a
	// stored state carries a non-positive value (cold-start coercion).
	MinStrength       = 1.0
	DefaultStrength   = 1.0
	MinDifficulty     = 1.0
	MaxDifficulty     = 10.0
	DefaultDifficulty = 2.0

	// SameDayWindow is the repeat-guard span in days (~2.6 hours). A
	// genuine review re-answered inside this window leaves the state
	// untouched so rapid repeats cannot inflate strength.
	SameDayWindow = 0.11

	// forgetPenalty multiplies strength after a failed recall.
	forgetPenalty = 0.3

	// qualityMax caps answer quality: perfect score + full speed and
	// streak credit saturates at 2.
	qualityMax = 2.0

	// Sensitivities of the tanh rescaling. The streak curve uses a wider
	// constant so the bonus keeps growing well past the threshold while
	// the speed curve saturates quickly for outlier-fast answers.
	speedSensitivity  = 2.0
	streakSensitivity = 3.0

	denomEpsilon = 1e-6
)

// Params holds the tunable weights of the model. Zero values are not
// meaningful; construct via DefaultParams or the config layer.
type Params struct {
	// ReactionTimeMs is the fixed human reaction floor. Answers faster
	// than this are treated as accidental input and earn no speed credit.
	ReactionTimeMs float64
	// CharTimeMs is the expected reading/recall time per character of the
	// word, used to normalize latency across word lengths.
	CharTimeMs float64
	// SpeedMultiplier scales expected time before comparing against the
	// actual answer time.
	SpeedMultiplier float64
	// SpeedWeight and BonusWeight blend speed score and streak bonus into
	// answer quality.
	SpeedWeight float64
	BonusWeight float64
	// CorrectionWeight scales how far one review moves difficulty.
	CorrectionWeight float64
	// StreakThreshold is the streak length at which the bonus starts.
	StreakThreshold int
}

// DefaultParams returns the stock model weights.
func DefaultParams() Params {
	return Params{
		ReactionTimeMs:   1000,
		CharTimeMs:       300,
		SpeedMultiplier:  2.0,
		SpeedWeight:      0.5,
		BonusWeight:      0.3,
		CorrectionWeight: 0.5,
		StreakThreshold:  3,
	}
}

// ReviewEvent captures one graded answer.
type ReviewEvent struct {
	Score      Score
	AnswerTime time.Duration
	// ItemLength is the word length in characters, used to normalize the
	// expected response time. Must be positive.
	ItemLength int
	// DaysSince is the elapsed time since the previous review, in days.
	DaysSince float64
}

// Diagnostics records every intermediate of one state update. It is always
// produced; the caller decides whether to forward it to the session log.
type Diagnostics struct {
	ForgetProbability float64     `json:"forget_probability"`
	ExpectedTimeMs    float64     `json:"expected_time_ms"`
	ActualTimeMs      float64     `json:"actual_time_ms"`
	SpeedScore        float64     `json:"speed_score"`
	StreakBonus       float64     `json:"streak_bonus"`
	Quality           float64     `json:"quality"`
	SameDayRepeat     bool        `json:"same_day_repeat"`
	Before            MemoryState `json:"before"`
	After             MemoryState `json:"after"`
}

// saturate rescales x >= 0 into [0,1) through a bounded tanh curve, so
// extreme inputs cannot produce unbounded reward.
func saturate(x, sensitivity float64) float64 {
	return math.Tanh(x / sensitivity)
}

// safeDenom substitutes a small epsilon with the operand's sign when the
// operand is near zero, avoiding division blow-ups.
func safeDenom(v float64) float64 {
	if math.Abs(v) >= denomEpsilon {
		return v
	}
	if math.Signbit(v) {
		return -denomEpsilon
	}
	return denomEpsilon
}

func clampStrength(s float64) float64 {
	return math.Max(s, MinStrength)
}

func clampDifficulty(d float64) float64 {
	return math.Min(math.Max(d, MinDifficulty), MaxDifficulty)
}

// SpeedScore rates response latency in [0,1). Answers below the reaction
// floor return 0; otherwise the ratio of scaled expected time to actual
// time is clamped at zero and saturated.
func (p Params) SpeedScore(itemLength int, answerTime time.Duration) float64 {
	ms := float64(answerTime) / float64(time.Millisecond)
	if ms < p.ReactionTimeMs {
		return 0
	}
	expected := p.ReactionTimeMs + p.CharTimeMs*float64(itemLength)
	raw := p.SpeedMultiplier*expected/ms - 1
	if raw < 0 {
		raw = 0
	}
	return saturate(raw, speedSensitivity)
}

// StreakBonus rates the current streak in [0,1): zero below the threshold,
// then the excess over the threshold saturated.
func (p Params) StreakBonus(streak int) float64 {
	if streak < p.StreakThreshold {
		return 0
	}
	return saturate(float64(streak-p.StreakThreshold), streakSensitivity)
}

// AnswerQuality blends correctness, speed and streak into one signal,
// clamped to [0,2].
func (p Params) AnswerQuality(score Score, speedScore, streakBonus float64) float64 {
	q := score.Weight() + p.SpeedWeight*speedScore + p.BonusWeight*streakBonus
	return math.Min(math.Max(q, 0), qualityMax)
}

// NextDifficulty moves difficulty against answer quality: quality above 1
// lowers it, below 1 raises it. Clamped to [1,10].
func (p Params) NextDifficulty(difficulty, quality float64) float64 {
	return clampDifficulty(difficulty - p.CorrectionWeight*(quality-1))
}

// NextStrength updates strength. A zero-quality answer applies the
// forgetting penalty; otherwise strength grows with quality and spacing,
// dampened by difficulty. Clamped to >= 1.
func NextStrength(quality, strength, difficulty, daysSince float64) float64 {
	if quality == 0 {
		return clampStrength(strength * forgetPenalty)
	}
	return clampStrength(strength + quality*(daysSince/difficulty))
}

// ForgetProbability estimates the chance the word is forgotten after the
// given elapsed days: 1 - e^(-(days*difficulty)/strength), in [0,1).
func ForgetProbability(strength, difficulty, daysSince float64) float64 {
	return 1 - math.Exp(-(daysSince*difficulty)/safeDenom(strength))
}

// Review applies one graded answer to a memory state and returns the new
// state plus the full diagnostics of the computation. It never mutates its
// inputs and does not stamp LastReviewed; the caller owns the clock.
//
// Policies, in order: non-positive strength/difficulty are coerced to the
// defaults; a repeat inside SameDayWindow of a non-pristine state is a
// no-op; speed credit requires a full-credit answer; streak bonus
// additionally requires at least one elapsed day.
func (p Params) Review(ev ReviewEvent, state MemoryState) (MemoryState, Diagnostics, error) {
	if ev.ItemLength <= 0 {
		return state, Diagnostics{}, fmt.Errorf("srs: item length must be positive, got %d", ev.ItemLength)
	}
	if !ev.Score.IsValid() {
		return state, Diagnostics{}, fmt.Errorf("srs: invalid score: %d", int(ev.Score))
	}

	cur := state
	if cur.Strength <= 0 {
		cur.Strength = DefaultStrength
	}
	if cur.Difficulty <= 0 {
		cur.Difficulty = DefaultDifficulty
	}

	diag := Diagnostics{
		ForgetProbability: ForgetProbability(cur.Strength, cur.Difficulty, ev.DaysSince),
		ExpectedTimeMs:    p.ReactionTimeMs + p.CharTimeMs*float64(ev.ItemLength),
		ActualTimeMs:      float64(ev.AnswerTime) / float64(time.Millisecond),
		Before:            cur,
	}

	if ev.DaysSince <= SameDayWindow && !cur.Pristine() {
		diag.SameDayRepeat = true
		diag.After = cur
		return cur, diag, nil
	}

	speed := 0.0
	if ev.Score.Correct() {
		speed = p.SpeedScore(ev.ItemLength, ev.AnswerTime)
	}
	bonus := 0.0
	if ev.Score.Correct() && ev.DaysSince >= 1 {
		bonus = p.StreakBonus(cur.Streak)
	}
	quality := p.AnswerQuality(ev.Score, speed, bonus)

	next := cur
	next.Difficulty = p.NextDifficulty(cur.Difficulty, quality)
	// Strength uses the pre-update difficulty.
	next.Strength = NextStrength(quality, cur.Strength, cur.Difficulty, ev.DaysSince)
	if ev.Score.Correct() {
		next.Streak = cur.Streak + 1
	} else {
		next.Streak = 0
	}

	diag.SpeedScore = speed
	diag.StreakBonus = bonus
	diag.Quality = quality
	diag.After = next
	return next, diag, nil
}
