// Init command: creates the database and applies migrations.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/sqlite"
)

var initDBCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the task database",
	Long:  `Create the database file and apply any pending migrations.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Open(appConfig)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		fmt.Printf("Database initialized at %s\n", appConfig.DBPath())
		return nil
	},
}
