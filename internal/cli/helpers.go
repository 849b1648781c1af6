package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexmem/lexmem/internal/config"
	"github.com/lexmem/lexmem/internal/db"
	"github.com/lexmem/lexmem/internal/vocab"
)

// findRoot walks up from the working directory looking for a .lexmem/
// vault directory.
func findRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dir, _ := filepath.Abs(cwd)
	for {
		if _, err := os.Stat(filepath.Join(dir, ".lexmem")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no vault found — run `lexmem init` first")
}

// openStore opens the vault database for the given root. The caller owns
// the returned DB and must Close it.
func openStore(root string) (*db.DB, *vocab.Store, error) {
	dbPath := config.VaultDBPath(root)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("vault not initialized — run `lexmem init` first")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return database, vocab.NewStore(database), nil
}
