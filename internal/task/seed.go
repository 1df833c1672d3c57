package task

import (
	"context"
	"fmt"
	"time"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// SampleTasks returns the development fixture set: four tasks with varied
// statuses and due dates relative to now.
func SampleTasks(now time.Time) []types.CreateTaskRequest {
	in := func(days int) *string {
		v := now.AddDate(0, 0, days).UTC().Format(time.RFC3339)
		return &v
	}
	str := func(s string) *string { return &s }

	return []types.CreateTaskRequest{
		{
			Title:       "Complete project documentation",
			Description: str("Write comprehensive documentation for the task management system"),
			DueDate:     in(7),
			Status:      types.StatusInProgress,
		},
		{
			Title:       "Review code changes",
			Description: str("Review pull requests and provide feedback"),
			DueDate:     in(2),
			Status:      types.StatusPending,
		},
		{
			Title:       "Setup CI/CD pipeline",
			Description: str("Configure automated testing and deployment"),
			Status:      types.StatusCompleted,
		},
		{
			Title:       "Database optimization",
			Description: str("Optimize database queries and add proper indexing"),
			DueDate:     in(14),
			Status:      types.StatusPending,
		},
	}
}

// Seed inserts the sample set through the service. Seeding is
// unconditional: re-running it inserts the fixtures again. On failure the
// count of tasks inserted before the error is returned alongside it.
func (s *Service) Seed(ctx context.Context) (int, error) {
	inserted := 0
	for _, req := range SampleTasks(time.Now()) {
		if _, err := s.Create(ctx, req); err != nil {
			return inserted, fmt.Errorf("seeding task %q: %w", req.Title, err)
		}
		inserted++
	}
	return inserted, nil
}
