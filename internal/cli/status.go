package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/config"
	"github.com/lexmem/lexmem/internal/vocab"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current state of the vault",
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

			stats, err := store.Stats()
			if err != nil {
				return err
			}

			vcfg, _ := config.LoadVault(root)
			name := vcfg.Name
			if name == "" {
				name = root
			}

			// Words currently past the 50% forgetting mark.
			words, err := store.GetAll()
			if err != nil {
				return err
			}
			due := 0
			now := time.Now()
			for _, w := range words {
				if vocab.Priority(w.Memory, now) >= 0.5 {
					due++
				}
			}

			var dbSize int64
			if fi, err := os.Stat(config.VaultDBPath(root)); err == nil {
				dbSize = fi.Size()
			}

			fmt.Printf("\nVault:      %s\n", name)
			fmt.Printf("Words:      %d (%d due for review)\n", stats.Words, due)
			if stats.Words > 0 {
				fmt.Printf("Strength:   %.1f days on average\n", stats.AvgStrength)
				fmt.Printf("Difficulty: %.1f on average\n", stats.AvgDifficulty)
				fmt.Printf("Best streak: %d\n", stats.MaxStreak)
			}
			fmt.Printf("DB size:    %s\n", formatBytes(dbSize))
			fmt.Println()
			return nil
		},
	}
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
