package cmd

import (
	"fmt"
	"os"

	"enstracker/internal/inventory"

	"github.com/spf13/cobra"
)

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the inventory as CSV to a file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, _ := cmd.Flags().GetString("out")

		s, closeStore, err := openStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeStore()

		assets, err := inventory.NewRepository(s).All()
		if err != nil {
			return fmt.Errorf("read inventory: %w", err)
		}

		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer file.Close()

		if err := inventory.WriteCSV(file, assets); err != nil {
			return fmt.Errorf("export inventory: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d assets to %s\n", len(assets), out)
		return nil
	},
}
