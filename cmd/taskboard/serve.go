// Serve command: runs the REST API server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/httpapi"
	"github.com/mesh-intelligence/taskboard/internal/sqlite"
	"github.com/mesh-intelligence/taskboard/internal/task"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the task API server",
	Long:  `Start the REST API server. Migrations run before the server accepts connections.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.Open(appConfig)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		svc := task.NewService(sqlite.NewTaskRepository(db))
		app := httpapi.New(svc)

		// Listen returns nil during a graceful shutdown; only a real
		// failure reaches errCh.
		errCh := make(chan error, 1)
		go func() {
			if err := app.Listen(fmt.Sprintf(":%d", appConfig.Port)); err != nil {
				errCh <- err
			}
		}()

		log.Printf("[serve] Server running on port %d", appConfig.Port)
		log.Printf("[serve] Database: %s", appConfig.DBPath())

		wait := gfshutdown.GracefulShutdown(
			cmd.Context(),
			shutdownTimeout,
			map[string]gfshutdown.Operation{
				"http-server": func(ctx context.Context) error {
					return app.ShutdownWithContext(ctx)
				},
				"database": func(ctx context.Context) error {
					return db.Close()
				},
			},
		)

		select {
		case err := <-errCh:
			db.Close()
			return fmt.Errorf("server stopped: %w", err)
		case code := <-wait:
			if code != 0 {
				return fmt.Errorf("shutdown finished with code %d", code)
			}
			log.Printf("[serve] Shutdown complete")
			return nil
		}
	},
}
