package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import words from a tab-separated file",
		Long: `Import words from a word list, one per line:

  word<TAB>meaning[<TAB>example[<TAB>related]]

Blank lines and lines starting with # are skipped. Words already in the
vault are left untouched and reported as skipped.`,
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

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open word list: %w", err)
			}
			defer f.Close()

			words, err := parseWordList(f)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				fmt.Println("No words found in the file.")
				return nil
			}

			bar := progressbar.NewOptions(len(words),
				progressbar.OptionSetDescription("  Importing"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)

			added, skipped := 0, 0
			for _, w := range words {
				if err := store.Add(w); err != nil {
					if strings.Contains(err.Error(), "UNIQUE") {
						skipped++
					} else {
						_ = bar.Finish()
						return err
					}
				} else {
					added++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Printf("Imported %d word(s)", added)
			if skipped > 0 {
				fmt.Printf(", skipped %d already present", skipped)
			}
			fmt.Println()
			return nil
		},
	}
}
