// Package sessionlog persists the audit trail of one study session as a
// JSON document: selection parameters, the priority-ranked snapshot, one
// row per review with the model's full diagnostics, and the final stats
// and outcome. The document is rewritten after every record so a crash
// loses at most the in-flight row; Finalize stamps the outcome and the
// log is immutable from then on.
package sessionlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lexmem/lexmem/internal/session"
	"github.com/lexmem/lexmem/internal/vocab"
)

// SchemaVersion is carried in every document so future format changes can
// be detected by readers.
const SchemaVersion = 1

type rankRow struct {
	Word     string  `json:"word"`
	Priority float64 `json:"priority"`
}

type document struct {
	SchemaVersion int               `json:"schema_version"`
	SessionID     string            `json:"session_id"`
	StartedAt     time.Time         `json:"started_at"`
	FinishedAt    *time.Time        `json:"finished_at,omitempty"`
	Selection     session.Selection `json:"selection"`
	Ranking       []rankRow         `json:"ranking"`
	Reviews       []session.Review  `json:"reviews"`
	Stats         *session.Stats    `json:"stats,omitempty"`
	Outcome       string            `json:"outcome,omitempty"`
}

// Logger writes one session document under the vault's logs directory.
type Logger struct {
	path string
	doc  document

	// now is swappable for tests.
	now func() time.Time
}

// Compile-time interface check.
var _ session.Logger = (*Logger)(nil)

// New creates the log file for a session starting now. The file is named
// by start time plus a short unique suffix so concurrent vaults never
// collide.
func New(dir string, sel session.Selection) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sessionlog: create log directory: %w", err)
	}

	id := uuid.NewString()
	started := time.Now()
	name := fmt.Sprintf("%s-%s.json", started.Format("20060102-150405"), id[:8])

	l := &Logger{
		path: filepath.Join(dir, name),
		doc: document{
			SchemaVersion: SchemaVersion,
			SessionID:     id,
			StartedAt:     started,
			Selection:     sel,
		},
		now: time.Now,
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns where the document is written.
func (l *Logger) Path() string {
	return l.path
}

// RecordRanking stores the ordered word/priority snapshot chosen for the
// session. Best-effort: a write failure here is not the session's problem.
func (l *Logger) RecordRanking(rows []vocab.Scheduled) {
	l.doc.Ranking = make([]rankRow, 0, len(rows))
	for _, r := range rows {
		l.doc.Ranking = append(l.doc.Ranking, rankRow{Word: r.Word.Word, Priority: r.Priority})
	}
	_ = l.flush()
}

// RecordReview appends one review row. Best-effort, like RecordRanking.
func (l *Logger) RecordReview(row session.Review) {
	l.doc.Reviews = append(l.doc.Reviews, row)
	_ = l.flush()
}

// Finalize stamps the stats, outcome and finish time, writes the document
// a last time and returns its location.
func (l *Logger) Finalize(stats session.Stats, outcome session.Outcome) (string, error) {
	finished := l.now()
	l.doc.FinishedAt = &finished
	l.doc.Stats = &stats
	l.doc.Outcome = outcome.String()
	if err := l.flush(); err != nil {
		return "", err
	}
	return l.path, nil
}

// flush rewrites the whole document atomically (temp file + rename).
func (l *Logger) flush() error {
	b, err := json.MarshalIndent(l.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sessionlog: encode: %w", err)
	}
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("sessionlog: write: %w", err)
	}
	if err := os.Rename(tmp, l.path); err != nil {
		return fmt.Errorf("sessionlog: rename: %w", err)
	}
	return nil
}
