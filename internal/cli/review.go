package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/config"
	"github.com/lexmem/lexmem/internal/session"
	"github.com/lexmem/lexmem/internal/sessionlog"
)

func newReviewCmd() *cobra.Command {
	var limit, from, to int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Run an interactive review session",
		Long: `Review the words you are most likely to have forgotten.

By default the session takes the top --limit words ranked by forgetting
probability. With --from/--to it instead takes that positional slice of
the vault (in the order words were added) and reviews it by priority —
useful for drilling a specific batch, e.g. this week's additions.

During a review: [p]erfect for instant recall, [k]now once you have it,
[h]int to reveal the example (then related words), [n]o idea to concede,
[q]uit to stop. Quitting keeps everything already reviewed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (from > 0) != (to > 0) {
				return fmt.Errorf("--from and --to must be given together")
			}

			root, err := findRoot()
			if err != nil {
				return err
			}

			database, store, err := openStore(root)
			if err != nil {
				return err
			}
			defer database.Close()

			cfg, err := config.Load(root)
			if err != nil {
				return err
			}

			sel := session.Selection{Limit: limit, Start: from, End: to}
			if !cmd.Flags().Changed("limit") && from == 0 {
				sel.Limit = cfg.Session.DefaultLimit
			}

			logger, err := sessionlog.New(config.VaultLogDirPath(root), sel)
			if err != nil {
				return err
			}

			s := session.New(store, newTerminalUI(), logger, cfg.Model.Params(), sel)
			res, err := s.Run()
			if err != nil {
				return err
			}

			printSummary(res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Review at most this many words (0 = config default)")
	cmd.Flags().IntVar(&from, "from", 0, "Start of a positional range (1-based, inclusive)")
	cmd.Flags().IntVar(&to, "to", 0, "End of a positional range (1-based, inclusive)")
	return cmd
}

func printSummary(res session.Result) {
	st := res.Stats
	if st.Reviewed == 0 {
		return
	}

	fmt.Println()
	if res.Outcome == session.Quit {
		fmt.Printf("Session stopped early — %d word(s) reviewed.\n", st.Reviewed)
	} else {
		fmt.Printf("Session complete — %d word(s) reviewed.\n", st.Reviewed)
	}

	rows := []struct {
		label string
		n     int
	}{
		{"perfect", st.Perfect},
		{"known", st.Known},
		{"one hint", st.OneHint},
		{"two hints", st.TwoHints},
		{"missed", st.Unknown},
	}
	for _, r := range rows {
		if r.n > 0 {
			fmt.Printf("  %-10s %d\n", r.label, r.n)
		}
	}
	if res.LogPath != "" {
		fmt.Printf("Log: %s\n", res.LogPath)
	}
}
