// Package task implements the task service: identifier and timestamp
// assignment layered over a storage repository. The service trusts its
// caller; validation happens at the HTTP boundary.
package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Repository is the storage contract the service delegates to.
type Repository interface {
	FindAll(ctx context.Context, sortBy, sortOrder string) ([]types.Task, error)
	FindByID(ctx context.Context, id string) (*types.Task, error)
	Create(ctx context.Context, task types.Task) (*types.Task, error)
	Update(ctx context.Context, id string, req types.UpdateTaskRequest, updatedAt string) (*types.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Service orchestrates task operations over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a Service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all tasks in the requested order.
func (s *Service) List(ctx context.Context, sortBy, sortOrder string) ([]types.Task, error) {
	return s.repo.FindAll(ctx, sortBy, sortOrder)
}

// Get returns one task by id.
func (s *Service) Get(ctx context.Context, id string) (*types.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// Create assigns a fresh v4 UUID and a single "now" timestamp used for both
// createdAt and updatedAt, then delegates to the repository.
func (s *Service) Create(ctx context.Context, req types.CreateTaskRequest) (*types.Task, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(ctx, types.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Update refreshes updatedAt and passes the caller-supplied partial fields
// through unchanged.
func (s *Service) Update(ctx context.Context, id string, req types.UpdateTaskRequest) (*types.Task, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(ctx, id, req, now)
}

// Delete removes a task, reporting whether a row existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
