package cmd

import (
	"context"
	"fmt"
	"os"

	"enstracker/internal/database"
	"enstracker/internal/store"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "enstracker",
		Short: "ENS asset tracking service",
	}
	ExportCmd.Flags().String("out", "ENS_Inventory.csv", "Destination file for the CSV export")
	SearchCmd.Flags().String("status", "All", "Status filter for the interactive search")
	SearchCmd.Flags().Int("limit", 10, "Page size for the interactive search")
	rootCmd.AddCommand(ExportCmd)
	rootCmd.AddCommand(SearchCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore() (*store.SQLiteStore, func(), error) {
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "enstracker.db"
	}

	db, err := database.NewSQLiteConnection(path)
	if err != nil {
		return nil, nil, err
	}

	s, err := store.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return s, func() { db.Close() }, nil
}
