package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"

	"github.com/lexmem/lexmem/internal/db"
	"github.com/lexmem/lexmem/internal/vocab"
)

func TestWatchHits(t *testing.T) {
	target := "/tmp/words.tsv"

	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{target, fsnotify.Write, true},
		{target, fsnotify.Create, true},
		{target, fsnotify.Rename, true},
		{target, fsnotify.Remove, false},
		{target, fsnotify.Chmod, false},
		{"/tmp/other.tsv", fsnotify.Write, false},
	}

	for _, tt := range tests {
		got := watchHits(fsnotify.Event{Name: tt.name, Op: tt.op}, target)
		if got != tt.want {
			t.Errorf("watchHits(%s %s) = %v, want %v", tt.name, tt.op, got, tt.want)
		}
	}
}

func TestSyncWordList(t *testing.T) {
	dir := t.TempDir()

	database, err := db.Open(filepath.Join(dir, "lexmem.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer database.Close()
	store := vocab.NewStore(database)

	list := filepath.Join(dir, "words.tsv")
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(list, []byte(content), 0o644); err != nil {
			t.Fatalf("write word list: %v", err)
		}
	}

	write("terse\tbrief and to the point\n")
	added, err := syncWordList(store, list)
	if err != nil {
		t.Fatalf("syncWordList: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}

	// Re-running with the same content adds nothing.
	added, err = syncWordList(store, list)
	if err != nil {
		t.Fatalf("syncWordList (repeat): %v", err)
	}
	if added != 0 {
		t.Errorf("repeat added = %d, want 0", added)
	}

	// A grown file imports only the new rows.
	write("terse\tbrief and to the point\nlaconic\tusing few words\n")
	added, err = syncWordList(store, list)
	if err != nil {
		t.Fatalf("syncWordList (grown): %v", err)
	}
	if added != 1 {
		t.Errorf("grown added = %d, want 1", added)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("store has %d words, want 2", n)
	}
}
