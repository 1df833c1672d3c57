// Board command: runs the interactive terminal board.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/apiclient"
	"github.com/mesh-intelligence/taskboard/internal/sqlite"
	"github.com/mesh-intelligence/taskboard/internal/task"
	"github.com/mesh-intelligence/taskboard/internal/tui"
)

// flagAPI points the board at a running server instead of the local
// database.
var flagAPI string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Long: `Open the interactive task board in the terminal. By default the board
works directly on the local database; with --api it talks to a running
taskboard server instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagAPI != "" {
			return tui.Run(cmd.Context(), apiclient.New(flagAPI))
		}

		db, err := sqlite.Open(appConfig)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		svc := task.NewService(sqlite.NewTaskRepository(db))
		return tui.Run(cmd.Context(), tui.NewLocalBackend(svc))
	},
}

func init() {
	boardCmd.Flags().StringVar(&flagAPI, "api", "", "base URL of a running server, e.g. http://localhost:3001")
}
