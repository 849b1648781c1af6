// Package cli defines the Cobra command tree for the lexmem CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lexmem",
	Short: "Spaced-repetition vocabulary trainer for your terminal",
	Long: `Lexmem keeps a vault of vocabulary words and schedules them for review
exactly when you are about to forget them.

Every review feeds a memory model that tracks how strongly you know each
word, how hard it is for you, and how long your streak is — and the next
session always starts with the words you are most likely to have lost.

Run 'lexmem init' in any directory to create a vault.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newReviewCmd(),
		newListCmd(),
		newStatusCmd(),
		newImportCmd(),
		newExportCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lexmem %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
