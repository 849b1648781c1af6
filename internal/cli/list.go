package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/vocab"
)

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List words ranked by how urgently they need review",
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

			words, err := store.GetAll()
			if err != nil {
				return err
			}
			if len(words) == 0 {
				fmt.Println("The vault is empty. Add words with `lexmem add`.")
				return nil
			}

			ranked := vocab.TopN(words, limit, time.Now())

			fmt.Printf("%-20s %8s %6s %10s %10s\n", "WORD", "FORGET%", "STREAK", "STRENGTH", "DIFFICULTY")
			for _, w := range ranked {
				fmt.Printf("%-20s %7.0f%% %6d %10.1f %10.1f\n",
					w.Word.Word, forgetPercent(w.Priority), w.Memory.Streak,
					w.Memory.Strength, w.Memory.Difficulty)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most this many words (0 = all)")
	return cmd
}

// forgetPercent renders a priority as a percentage. Overdue-boosted
// priorities exceed 1 but the forget column stays a probability.
func forgetPercent(priority float64) float64 {
	return math.Min(priority, 1) * 100
}
