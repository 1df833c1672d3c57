// Package httpapi exposes the task REST API over fiber. Handlers validate
// payloads, delegate to the task service, and shape every response into the
// uniform {success, data, error, validationErrors} envelope.
package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-intelligence/taskboard/internal/task"
)

// New builds the fiber application with all routes registered. The caller
// owns the listen/shutdown lifecycle.
func New(svc *task.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "taskboard",
		DisableStartupMessage: true,
	})

	h := &handlers{svc: svc}

	app.Get("/health", h.health)

	api := app.Group("/api")
	api.Get("/tasks", h.listTasks)
	api.Get("/tasks/:id", h.getTask)
	api.Post("/tasks", h.createTask)
	api.Put("/tasks/:id", h.updateTask)
	api.Delete("/tasks/:id", h.deleteTask)

	return app
}
