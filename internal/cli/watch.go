package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/vocab"
)

func newWatchCmd() *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a word list file and import new words as they appear",
		Long: `Start a long-running watcher on a tab-separated word list. Whenever the
file changes, any words not yet in the vault are imported.

Changes are debounced so that editors which write in multiple steps
(write + rename, partial saves) trigger a single import pass.

Press Ctrl-C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := findRoot()
			if err != nil {
				return err
			}

			database, store, err := openStore(root)
			if err != nil {
				return err
			}
			defer database.Close()

			target, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(target); err != nil {
				return fmt.Errorf("word list: %w", err)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory, not the file: editors replace files
			// by rename, which drops a file-level watch.
			if err := watcher.Add(filepath.Dir(target)); err != nil {
				return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
			}

			debounce := time.Duration(debounceMs) * time.Millisecond

			// Import whatever is already there before waiting.
			if added, err := syncWordList(store, target); err != nil {
				return err
			} else if added > 0 {
				fmt.Printf("[%s] imported %d word(s)\n", time.Now().Format("15:04:05"), added)
			}

			fmt.Printf("Watching %s (debounce %s). Press Ctrl-C to stop.\n", target, debounce)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			timer := time.NewTimer(debounce)
			timer.Stop() // Don't fire immediately.
			dirty := false

			for {
				select {
				case <-sigCh:
					fmt.Println("\nStopping watcher.")
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !watchHits(event, target) {
						continue
					}
					dirty = true
					timer.Reset(debounce)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "  watch error: %v\n", err)

				case <-timer.C:
					if !dirty {
						continue
					}
					dirty = false

					added, err := syncWordList(store, target)
					if err != nil {
						fmt.Fprintf(os.Stderr, "  warning: %v\n", err)
						continue
					}
					if added > 0 {
						fmt.Printf("[%s] imported %d word(s)\n", time.Now().Format("15:04:05"), added)
					}
				}
			}
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "debounce interval in milliseconds")

	return cmd
}

// watchHits reports whether a directory event concerns the watched file.
// Remove events are ignored; the next write will trigger a re-import.
func watchHits(event fsnotify.Event, target string) bool {
	if event.Name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// syncWordList imports every word from the list that is not yet in the
// vault and returns how many were added.
func syncWordList(store *vocab.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := parseWordList(f)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, w := range words {
		if err := store.Add(w); err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
