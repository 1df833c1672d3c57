package tui

import (
	"context"

	"github.com/mesh-intelligence/taskboard/internal/task"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Backend is the data source the board talks to. The API client satisfies
// it directly; a local service is wrapped by LocalBackend.
type Backend interface {
	List(ctx context.Context, sortBy, sortOrder string) ([]types.Task, error)
	Create(ctx context.Context, req types.CreateTaskRequest) (*types.Task, error)
	Update(ctx context.Context, id string, req types.UpdateTaskRequest) (*types.Task, error)
	Delete(ctx context.Context, id string) error
}

// LocalBackend adapts the task service to the Backend interface so the
// board can run against an embedded database without a server.
type LocalBackend struct {
	svc *task.Service
}

// NewLocalBackend wraps a task service.
func NewLocalBackend(svc *task.Service) *LocalBackend {
	return &LocalBackend{svc: svc}
}

func (b *LocalBackend) List(ctx context.Context, sortBy, sortOrder string) ([]types.Task, error) {
	return b.svc.List(ctx, sortBy, sortOrder)
}

func (b *LocalBackend) Create(ctx context.Context, req types.CreateTaskRequest) (*types.Task, error) {
	return b.svc.Create(ctx, req)
}

func (b *LocalBackend) Update(ctx context.Context, id string, req types.UpdateTaskRequest) (*types.Task, error) {
	return b.svc.Update(ctx, id, req)
}

func (b *LocalBackend) Delete(ctx context.Context, id string) error {
	removed, err := b.svc.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return types.ErrTaskNotFound
	}
	return nil
}
