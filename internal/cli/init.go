package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/config"
	"github.com/lexmem/lexmem/internal/db"
)

func newInitCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a lexmem vault in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			dbPath := config.VaultDBPath(cwd)
			if _, err := os.Stat(dbPath); err == nil {
				return fmt.Errorf("vault already exists at %s", config.VaultDirPath(cwd))
			}

			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("create database: %w", err)
			}
			defer database.Close()

			if name == "" {
				name = filepath.Base(cwd)
			}
			if err := config.SaveVault(cwd, config.VaultConfig{Name: name}); err != nil {
				return err
			}

			fmt.Printf("Created vault %q in %s\n", name, config.VaultDirPath(cwd))
			fmt.Println("Add words with `lexmem add <word> <meaning>`, then `lexmem review`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Vault name (defaults to the directory name)")
	return cmd
}
