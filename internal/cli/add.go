package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/vocab"
)

func newAddCmd() *cobra.Command {
	var example, related string

	cmd := &cobra.Command{
		Use:   "add <word> <meaning...>",
		Short: "Add a word to the vault",
		Long: `Add a word with its meaning. The example sentence is shown as the first
hint during review, related words and phrases as the second.

Examples:
  lexmem add ephemeral "lasting a very short time"
  lexmem add sonder "the realization that each passerby has a life as vivid as your own" \
      --example "a sudden sonder washed over her on the crowded platform"`,
		Args: cobra.MinimumNArgs(2),
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

			w := vocab.Word{
				Word:    args[0],
				Meaning: strings.Join(args[1:], " "),
				Example: example,
				Related: related,
			}
			if err := store.Add(w); err != nil {
				return err
			}

			fmt.Printf("Added %q\n", w.Word)
			return nil
		},
	}

	cmd.Flags().StringVarP(&example, "example", "e", "", "Example sentence (hint 1)")
	cmd.Flags().StringVarP(&related, "related", "r", "", "Related words and phrases (hint 2)")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word from the vault",
		Args:  cobra.ExactArgs(1),
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

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", args[0])
			return nil
		},
	}
}
