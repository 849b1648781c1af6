package session

import (
	"time"

	"github.com/lexmem/lexmem/internal/srs"
	"github.com/lexmem/lexmem/internal/vocab"
)

// UI is the interactive surface the session drives. Calls are synchronous;
// Choose blocks until the operator answers and is the session's only
// suspension point.
type UI interface {
	// Present shows the word with hints gated by hintLevel: 0 shows the
	// word alone, 1 adds the example, 2 adds related words and phrases.
	Present(w vocab.Word, hintLevel int)
	// Reveal shows the full answer after a conceded word.
	Reveal(w vocab.Word)
	// Choose returns the operator's next token.
	Choose() (Choice, error)
	// Infof and Warnf surface informational and non-fatal messages.
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Repository supplies the words and persists per-word memory updates.
// *vocab.Store satisfies it.
type Repository interface {
	GetAll() ([]vocab.Word, error)
	UpdateMemory(word string, st srs.MemoryState) error
}

// Logger records the session's audit trail. All record calls are
// best-effort from the session's point of view; only Finalize reports
// where the log landed.
type Logger interface {
	RecordRanking(rows []vocab.Scheduled)
	RecordReview(row Review)
	Finalize(stats Stats, outcome Outcome) (string, error)
}

// Review is one row of the session's audit trail: the scheduling context,
// the graded answer, and the full before/after diagnostics of the model.
type Review struct {
	Word       string          `json:"word"`
	Priority   float64         `json:"priority"`
	Timestamp  time.Time       `json:"timestamp"`
	Score      srs.Score       `json:"score"`
	HintsUsed  int             `json:"hints_used"`
	AnswerMs   int64           `json:"answer_ms"`
	Diag       srs.Diagnostics `json:"diagnostics"`
	PersistErr string          `json:"persist_error,omitempty"`
}
