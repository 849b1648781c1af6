package srs

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-6

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %.6f, want %.6f", name, got, want)
	}
}

// --- SpeedScore ---

func TestSpeedScoreBelowReactionFloor(t *testing.T) {
	p := DefaultParams()
	// 500ms is below the 1000ms reaction floor: accidental input.
	if got := p.SpeedScore(5, 500*time.Millisecond); got != 0 {
		t.Errorf("SpeedScore below floor = %f, want 0", got)
	}
}

func TestSpeedScoreBounds(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name   string
		length int
		time   time.Duration
	}{
		{"fast", 5, 1100 * time.Millisecond},
		{"expected", 5, 2500 * time.Millisecond},
		{"slow", 5, 30 * time.Second},
		{"very long word", 40, 2 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.SpeedScore(tt.length, tt.time)
			if got < 0 || got >= 1 {
				t.Errorf("SpeedScore(%d, %s) = %f, want in [0,1)", tt.length, tt.time, got)
			}
		})
	}
}

func TestSpeedScoreSlowAnswerEarnsNothing(t *testing.T) {
	p := DefaultParams()
	// expected = 1000 + 300*5 = 2500ms; multiplier 2 -> break-even at 5000ms.
	if got := p.SpeedScore(5, 10*time.Second); got != 0 {
		t.Errorf("SpeedScore past break-even = %f, want 0", got)
	}
}

func TestSpeedScoreFasterIsHigher(t *testing.T) {
	p := DefaultParams()
	fast := p.SpeedScore(5, 1200*time.Millisecond)
	slow := p.SpeedScore(5, 3*time.Second)
	if fast <= slow {
		t.Errorf("fast answer %f should outscore slow answer %f", fast, slow)
	}
}

// --- StreakBonus ---

func TestStreakBonus(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		streak int
		zero   bool
	}{
		{0, true},
		{2, true},
		{3, true}, // at threshold the excess is zero
		{4, false},
		{10, false},
	}
	for _, tt := range tests {
		got := p.StreakBonus(tt.streak)
		if tt.zero && got != 0 {
			t.Errorf("StreakBonus(%d) = %f, want 0", tt.streak, got)
		}
		if !tt.zero && (got <= 0 || got >= 1) {
			t.Errorf("StreakBonus(%d) = %f, want in (0,1)", tt.streak, got)
		}
	}
}

func TestStreakBonusMonotonic(t *testing.T) {
	p := DefaultParams()
	prev := -1.0
	for streak := 0; streak <= 20; streak++ {
		got := p.StreakBonus(streak)
		if got < prev {
			t.Fatalf("StreakBonus(%d) = %f decreased from %f", streak, got, prev)
		}
		prev = got
	}
}

// --- AnswerQuality ---

func TestAnswerQualityClamped(t *testing.T) {
	p := DefaultParams()
	// Perfect + full credit everywhere caps at 2.
	got := p.AnswerQuality(Perfect, 1.0, 1.0)
	if got > 2 {
		t.Errorf("AnswerQuality = %f, want <= 2", got)
	}
	assertFloat(t, "quality floor", p.AnswerQuality(No, 0, 0), 0)
}

func TestAnswerQualityBlend(t *testing.T) {
	p := DefaultParams()
	// know(1.0) + 0.5*0.4 + 0.3*0.2 = 1.26
	assertFloat(t, "blend", p.AnswerQuality(Know, 0.4, 0.2), 1.26)
}

// --- NextDifficulty ---

func TestNextDifficultyDirection(t *testing.T) {
	p := DefaultParams()
	// Quality above 1 lowers difficulty, below 1 raises it.
	if got := p.NextDifficulty(5, 1.5); got >= 5 {
		t.Errorf("difficulty after good answer = %f, want < 5", got)
	}
	if got := p.NextDifficulty(5, 0.2); got <= 5 {
		t.Errorf("difficulty after poor answer = %f, want > 5", got)
	}
	// Quality exactly 1 leaves it unchanged.
	assertFloat(t, "neutral quality", p.NextDifficulty(5, 1), 5)
}

func TestNextDifficultyClamped(t *testing.T) {
	p := DefaultParams()
	if got := p.NextDifficulty(1, 2); got != 1 {
		t.Errorf("difficulty floor = %f, want 1", got)
	}
	if got := p.NextDifficulty(10, 0); got != 10 {
		t.Errorf("difficulty ceiling = %f, want 10", got)
	}
}

// --- NextStrength ---

func TestNextStrengthFailurePenalty(t *testing.T) {
	// Failed recall multiplies strength by 0.3, floored at 1.
	assertFloat(t, "penalty", NextStrength(0, 10, 2, 5), 3)
	assertFloat(t, "penalty floor", NextStrength(0, 2, 2, 5), 1)
}

func TestNextStrengthGrowth(t *testing.T) {
	// strength + quality * days/difficulty = 4 + 1.5*10/2 = 11.5
	assertFloat(t, "growth", NextStrength(1.5, 4, 2, 10), 11.5)
}

func TestNextStrengthHighDifficultyDampens(t *testing.T) {
	easy := NextStrength(1, 4, 1, 10)
	hard := NextStrength(1, 4, 10, 10)
	if hard >= easy {
		t.Errorf("hard word growth %f should trail easy word growth %f", hard, easy)
	}
}

// --- ForgetProbability ---

func TestForgetProbabilityAtZeroDays(t *testing.T) {
	assertFloat(t, "P(0 days)", ForgetProbability(1, 2, 0), 0)
}

func TestForgetProbabilityKnownValue(t *testing.T) {
	// 1 - e^(-(10*2)/10) = 1 - e^-2
	want := 1 - math.Exp(-2)
	assertFloat(t, "P(s=10,d=2,t=10)", ForgetProbability(10, 2, 10), want)
}

func TestForgetProbabilityMonotonicInDays(t *testing.T) {
	prev := -1.0
	for days := 0.0; days <= 60; days += 0.5 {
		got := ForgetProbability(5, 3, days)
		if got <= prev {
			t.Fatalf("P at %.1f days = %f not strictly increasing from %f", days, got, prev)
		}
		prev = got
	}
}

func TestForgetProbabilityNearZeroStrength(t *testing.T) {
	// Must not divide by zero or go NaN.
	got := ForgetProbability(0, 2, 1)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("P with zero strength = %f", got)
	}
}

// --- Review ---

func knowEvent(days float64) ReviewEvent {
	return ReviewEvent{
		Score:      Know,
		AnswerTime: 2 * time.Second,
		ItemLength: 6,
		DaysSince:  days,
	}
}

func TestReviewInvalidItemLength(t *testing.T) {
	p := DefaultParams()
	for _, length := range []int{0, -3} {
		ev := knowEvent(1)
		ev.ItemLength = length
		if _, _, err := p.Review(ev, NewMemoryState(time.Now())); err == nil {
			t.Errorf("Review with item length %d: expected error", length)
		}
	}
}

func TestReviewInvalidScore(t *testing.T) {
	p := DefaultParams()
	ev := knowEvent(1)
	ev.Score = Score(99)
	if _, _, err := p.Review(ev, NewMemoryState(time.Now())); err == nil {
		t.Error("Review with invalid score: expected error")
	}
}

func TestReviewColdStartCoercion(t *testing.T) {
	p := DefaultParams()
	st := MemoryState{Strength: -4, Difficulty: 0, Streak: 2}
	next, diag, err := p.Review(knowEvent(2), st)
	if err != nil {
		t.Fatal(err)
	}
	assertFloat(t, "coerced strength", diag.Before.Strength, DefaultStrength)
	assertFloat(t, "coerced difficulty", diag.Before.Difficulty, DefaultDifficulty)
	if next.Strength < MinStrength {
		t.Errorf("strength %f below minimum", next.Strength)
	}
}

func TestReviewSameDayGuard(t *testing.T) {
	p := DefaultParams()
	st := MemoryState{Strength: 6, Difficulty: 3, Streak: 4}

	next, diag, err := p.Review(knowEvent(0.05), st)
	if err != nil {
		t.Fatal(err)
	}
	if !diag.SameDayRepeat {
		t.Error("expected same-day repeat to be flagged")
	}
	if next != st {
		t.Errorf("same-day repeat changed state: %+v -> %+v", st, next)
	}

	// A second rapid repeat drifts nothing either.
	again, _, err := p.Review(knowEvent(0.1), next)
	if err != nil {
		t.Fatal(err)
	}
	if again != st {
		t.Errorf("repeated same-day reviews drifted state: %+v", again)
	}
}

func TestReviewPristineStateSkipsGuard(t *testing.T) {
	p := DefaultParams()
	// Fresh word reviewed right after being added: the guard must not
	// swallow the very first review.
	st := NewMemoryState(time.Now())
	next, diag, err := p.Review(ReviewEvent{
		Score:      Know,
		AnswerTime: 1500 * time.Millisecond,
		ItemLength: 6,
		DaysSince:  0.001,
	}, st)
	if err != nil {
		t.Fatal(err)
	}
	if diag.SameDayRepeat {
		t.Error("guard applied to pristine state")
	}
	if next.Strength <= 1 {
		t.Errorf("first review strength = %f, want > 1", next.Strength)
	}
	if next.Streak != 1 {
		t.Errorf("first review streak = %d, want 1", next.Streak)
	}
}

func TestReviewStreakRules(t *testing.T) {
	p := DefaultParams()
	base := MemoryState{Strength: 5, Difficulty: 4, Streak: 7}
	tests := []struct {
		score Score
		want  int
	}{
		{Perfect, 8},
		{Know, 8},
		{OneHint, 0},
		{TwoHints, 0},
		{No, 0},
	}
	for _, tt := range tests {
		t.Run(tt.score.String(), func(t *testing.T) {
			ev := knowEvent(3)
			ev.Score = tt.score
			next, _, err := p.Review(ev, base)
			if err != nil {
				t.Fatal(err)
			}
			if next.Streak != tt.want {
				t.Errorf("streak = %d, want %d", next.Streak, tt.want)
			}
		})
	}
}

func TestReviewFailureIgnoresLatency(t *testing.T) {
	p := DefaultParams()
	st := MemoryState{Strength: 9, Difficulty: 4, Streak: 3}
	for _, at := range []time.Duration{100 * time.Millisecond, 2 * time.Second, time.Minute} {
		ev := ReviewEvent{Score: No, AnswerTime: at, ItemLength: 8, DaysSince: 5}
		next, _, err := p.Review(ev, st)
		if err != nil {
			t.Fatal(err)
		}
		assertFloat(t, "penalized strength", next.Strength, 9*0.3)
	}
}

func TestReviewNoSpeedCreditForHintedAnswers(t *testing.T) {
	p := DefaultParams()
	st := MemoryState{Strength: 5, Difficulty: 4, Streak: 0}
	ev := ReviewEvent{Score: OneHint, AnswerTime: 1200 * time.Millisecond, ItemLength: 6, DaysSince: 3}
	_, diag, err := p.Review(ev, st)
	if err != nil {
		t.Fatal(err)
	}
	if diag.SpeedScore != 0 {
		t.Errorf("hinted answer earned speed score %f", diag.SpeedScore)
	}
}

func TestReviewNoStreakBonusSameDay(t *testing.T) {
	p := DefaultParams()
	// Streak well past threshold, but under one elapsed day: no bonus.
	st := MemoryState{Strength: 5, Difficulty: 4, Streak: 10}
	ev := knowEvent(0.5)
	_, diag, err := p.Review(ev, st)
	if err != nil {
		t.Fatal(err)
	}
	if diag.StreakBonus != 0 {
		t.Errorf("same-day review earned streak bonus %f", diag.StreakBonus)
	}

	ev = knowEvent(2)
	_, diag, err = p.Review(ev, st)
	if err != nil {
		t.Fatal(err)
	}
	if diag.StreakBonus <= 0 {
		t.Errorf("spaced review with streak 10 earned no bonus")
	}
}

func TestReviewInvariantsHold(t *testing.T) {
	p := DefaultParams()
	states := []MemoryState{
		{Strength: 1, Difficulty: 1, Streak: 0},
		{Strength: 1, Difficulty: 10, Streak: 0},
		{Strength: 50, Difficulty: 5, Streak: 12},
		{Strength: -3, Difficulty: -1, Streak: 1},
	}
	scores := []Score{No, TwoHints, OneHint, Know, Perfect}
	days := []float64{0, 0.5, 1, 7, 90}
	times := []time.Duration{200 * time.Millisecond, 2 * time.Second, time.Minute}

	for _, st := range states {
		for _, sc := range scores {
			for _, d := range days {
				for _, at := range times {
					ev := ReviewEvent{Score: sc, AnswerTime: at, ItemLength: 7, DaysSince: d}
					next, _, err := p.Review(ev, st)
					if err != nil {
						t.Fatal(err)
					}
					if next.Strength < MinStrength {
						t.Fatalf("strength %f < 1 for %+v score=%v days=%f", next.Strength, st, sc, d)
					}
					if next.Difficulty < MinDifficulty || next.Difficulty > MaxDifficulty {
						t.Fatalf("difficulty %f out of [1,10] for %+v score=%v", next.Difficulty, st, sc)
					}
					if next.Streak < 0 {
						t.Fatalf("negative streak %d", next.Streak)
					}
				}
			}
		}
	}
}

func TestReviewDiagnosticsBeforeAfter(t *testing.T) {
	p := DefaultParams()
	st := MemoryState{Strength: 4, Difficulty: 3, Streak: 2}
	next, diag, err := p.Review(knowEvent(5), st)
	if err != nil {
		t.Fatal(err)
	}
	if diag.Before != st {
		t.Errorf("diag.Before = %+v, want %+v", diag.Before, st)
	}
	if diag.After != next {
		t.Errorf("diag.After = %+v, want returned state %+v", diag.After, next)
	}
	assertFloat(t, "expected time", diag.ExpectedTimeMs, 1000+300*6)
	assertFloat(t, "actual time", diag.ActualTimeMs, 2000)
}
