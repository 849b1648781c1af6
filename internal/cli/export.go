package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexmem/lexmem/internal/config"
	"github.com/lexmem/lexmem/internal/export"
)

func newExportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the vault as JSON or a markdown study sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, ok := export.Get(format)
			if !ok {
				return fmt.Errorf("unknown format %q (valid: %s)",
					format, strings.Join(export.ValidFormats(), ", "))
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

			words, err := store.GetAll()
			if err != nil {
				return err
			}

			vcfg, _ := config.LoadVault(root)
			out, err := exporter.Export(export.ExportData{
				VaultName: vcfg.Name,
				Words:     words,
				Now:       time.Now(),
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output == "" || output == "-" {
				fmt.Print(out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json, markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
