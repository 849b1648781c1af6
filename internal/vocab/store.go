package vocab

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lexmem/lexmem/internal/db"
	"github.com/lexmem/lexmem/internal/srs"
)

// Store provides read/write access to the words table. It is the only
// mutation surface for memory state; the session updates exactly one word
// at a time through UpdateMemory.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given DB.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Add inserts a new word with the default memory state. Fails if the word
// already exists.
func (s *Store) Add(w Word) error {
	if w.Word == "" {
		return fmt.Errorf("store: word must not be empty")
	}
	mem := w.Memory
	if mem.Strength <= 0 {
		mem = srs.NewMemoryState(time.Now())
	}
	_, err := s.db.Conn().Exec(`
		INSERT INTO words (word, meaning, example, related,
		                   memory_strength, memory_difficulty, memory_streak, memory_last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Word, w.Meaning, w.Example, w.Related,
		mem.Strength, mem.Difficulty, mem.Streak, formatTime(mem.LastReviewed),
	)
	if err != nil {
		return fmt.Errorf("store: add %q: %w", w.Word, err)
	}
	return nil
}

// Get returns a single word by key.
func (s *Store) Get(word string) (Word, error) {
	row := s.db.Conn().QueryRow(selectWords+` WHERE word = ?`, word)
	w, err := scanWord(row)
	if err == sql.ErrNoRows {
		return w, fmt.Errorf("store: word %q not found", word)
	}
	if err != nil {
		return w, fmt.Errorf("store: get %q: %w", word, err)
	}
	return w, nil
}

// GetAll returns every word in insertion order. The range selection mode
// of the scheduler depends on this order being stable.
func (s *Store) GetAll() ([]Word, error) {
	rows, err := s.db.Conn().Query(selectWords + ` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("store: list words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// UpdateMemory replaces all four memory fields of one word in a single
// statement, so a review is applied atomically or not at all.
func (s *Store) UpdateMemory(word string, st srs.MemoryState) error {
	res, err := s.db.Conn().Exec(`
		UPDATE words SET
		    memory_strength      = ?,
		    memory_difficulty    = ?,
		    memory_streak        = ?,
		    memory_last_reviewed = ?,
		    updated_at           = CURRENT_TIMESTAMP
		WHERE word = ?`,
		st.Strength, st.Difficulty, st.Streak, formatTime(st.LastReviewed), word,
	)
	if err != nil {
		return fmt.Errorf("store: update memory for %q: %w", word, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("store: word %q not found", word)
	}
	return nil
}

// Delete removes a word by key.
func (s *Store) Delete(word string) error {
	res, err := s.db.Conn().Exec(`DELETE FROM words WHERE word = ?`, word)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", word, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("store: word %q not found", word)
	}
	return nil
}

// Count returns the number of stored words.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.Conn().QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n)
	return n, err
}

// VaultStats summarises the memory state across the vault.
type VaultStats struct {
	Words         int
	AvgStrength   float64
	AvgDifficulty float64
	MaxStreak     int
}

// Stats aggregates counts and averages for the status command.
func (s *Store) Stats() (VaultStats, error) {
	var vs VaultStats
	err := s.db.Conn().QueryRow(`
		SELECT COUNT(*),
		       COALESCE(AVG(memory_strength), 0),
		       COALESCE(AVG(memory_difficulty), 0),
		       COALESCE(MAX(memory_streak), 0)
		FROM words`).Scan(&vs.Words, &vs.AvgStrength, &vs.AvgDifficulty, &vs.MaxStreak)
	if err != nil {
		return vs, fmt.Errorf("store: stats: %w", err)
	}
	return vs, nil
}

const selectWords = `
	SELECT word, meaning, COALESCE(example,''), COALESCE(related,''),
	       memory_strength, memory_difficulty, memory_streak,
	       COALESCE(memory_last_reviewed,''), created_at, updated_at
	FROM words`

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWord(row scanner) (Word, error) {
	var w Word
	var lastReviewed, createdAt, updatedAt string
	err := row.Scan(&w.Word, &w.Meaning, &w.Example, &w.Related,
		&w.Memory.Strength, &w.Memory.Difficulty, &w.Memory.Streak,
		&lastReviewed, &createdAt, &updatedAt)
	if err != nil {
		return w, err
	}
	w.Memory.LastReviewed = parseTime(lastReviewed)
	w.CreatedAt = parseTime(createdAt)
	w.UpdatedAt = parseTime(updatedAt)
	return w, nil
}

// formatTime renders a timestamp for storage. The zero value maps to NULL
// ("never reviewed").
func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
