// Seed command: inserts the sample tasks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/sqlite"
	"github.com/mesh-intelligence/taskboard/internal/task"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample tasks into the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Open(appConfig)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		svc := task.NewService(sqlite.NewTaskRepository(db))
		count, err := svc.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}

		fmt.Printf("Seeded %d sample tasks\n", count)
		return nil
	},
}
