package httpapi

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mesh-intelligence/taskboard/internal/task"
	"github.com/mesh-intelligence/taskboard/internal/validate"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// handlers holds the HTTP handlers for the task API.
type handlers struct {
	svc *task.Service
}

// health is a liveness probe only; it performs no dependency checks.
func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// listTasks handles GET /api/tasks?sortBy=&sortOrder=.
func (h *handlers) listTasks(c *fiber.Ctx) error {
	sortBy := c.Query("sortBy")
	sortOrder := c.Query("sortOrder", types.SortOrderAsc)

	tasks, err := h.svc.List(c.UserContext(), sortBy, sortOrder)
	if err != nil {
		log.Printf("[httpapi] Error fetching tasks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Response{
			Success: false,
			Error:   "Failed to fetch tasks",
		})
	}

	return c.JSON(types.Response{Success: true, Data: tasks})
}

// getTask handles GET /api/tasks/:id.
func (h *handlers) getTask(c *fiber.Ctx) error {
	id := c.Params("id")

	if errs := validate.ID(id); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success:          false,
			Error:            "Invalid ID",
			ValidationErrors: errs,
		})
	}

	found, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, types.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.Response{
				Success: false,
				Error:   "Task not found",
			})
		}
		log.Printf("[httpapi] Error fetching task %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Response{
			Success: false,
			Error:   "Failed to fetch task",
		})
	}

	return c.JSON(types.Response{Success: true, Data: found})
}

// createTask handles POST /api/tasks.
func (h *handlers) createTask(c *fiber.Ctx) error {
	var req types.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if res := validate.CreateTask(req); !res.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success:          false,
			Error:            "Validation failed",
			ValidationErrors: res.Errors,
		})
	}

	created, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		log.Printf("[httpapi] Error creating task: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Response{
			Success: false,
			Error:   "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.Response{Success: true, Data: created})
}

// updateTask handles PUT /api/tasks/:id.
func (h *handlers) updateTask(c *fiber.Ctx) error {
	id := c.Params("id")

	if errs := validate.ID(id); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success:          false,
			Error:            "Invalid ID",
			ValidationErrors: errs,
		})
	}

	var req types.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	if res := validate.UpdateTask(req); !res.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success:          false,
			Error:            "Validation failed",
			ValidationErrors: res.Errors,
		})
	}

	updated, err := h.svc.Update(c.UserContext(), id, req)
	if err != nil {
		if errors.Is(err, types.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.Response{
				Success: false,
				Error:   "Task not found",
			})
		}
		log.Printf("[httpapi] Error updating task %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Response{
			Success: false,
			Error:   "Failed to update task",
		})
	}

	return c.JSON(types.Response{Success: true, Data: updated})
}

// deleteTask handles DELETE /api/tasks/:id.
func (h *handlers) deleteTask(c *fiber.Ctx) error {
	id := c.Params("id")

	if errs := validate.ID(id); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.Response{
			Success:          false,
			Error:            "Invalid ID",
			ValidationErrors: errs,
		})
	}

	removed, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		log.Printf("[httpapi] Error deleting task %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Response{
			Success: false,
			Error:   "Failed to delete task",
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(types.Response{
			Success: false,
			Error:   "Task not found",
		})
	}

	return c.JSON(types.Response{Success: true})
}
