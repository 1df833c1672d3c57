package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// TaskRepository translates task CRUD calls into parameterized SQL against
// the tasks table. It owns the row-to-entity mapping: NULL text columns
// hydrate to nil pointers, never to empty strings.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a repository over an injected database handle.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "id, title, description, due_date, status, created_at, updated_at"

// FindAll returns every task, sorted per the requested rule:
//   - sortBy "dueDate": by due date in the requested order (NULL ordering
//     is left to SQLite)
//   - sortBy "status": by workflow rank, descending reverses the rank
//   - anything else: creation time descending
func (r *TaskRepository) FindAll(ctx context.Context, sortBy, sortOrder string) ([]types.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks ORDER BY " + orderExpr(sortBy, sortOrder)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []types.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns the task with the given id, or ErrTaskNotFound when no
// row matches. Absence is a normal outcome, not a failure.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*types.Task, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	task, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return &task, nil
}

// Create inserts the task and re-reads it by id to return the canonical
// stored representation. A miss on the re-read signals ErrTaskNotCreated;
// that path is unreachable under correct operation.
func (r *TaskRepository) Create(ctx context.Context, task types.Task) (*types.Task, error) {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks ("+taskColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		task.ID,
		task.Title,
		nullableText(task.Description),
		nullableText(task.DueDate),
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	created, err := r.FindByID(ctx, task.ID)
	if err != nil {
		if err == types.ErrTaskNotFound {
			return nil, types.ErrTaskNotCreated
		}
		return nil, err
	}
	return created, nil
}

// Update applies the present fields of req plus the mandatory updated_at
// to the task with the given id, then re-reads and returns it. Returns
// ErrTaskNotFound without touching the table when the id does not exist.
func (r *TaskRepository) Update(ctx context.Context, id string, req types.UpdateTaskRequest, updatedAt string) (*types.Task, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if req.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullableText(req.Description))
	}
	if req.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableText(req.DueDate))
	}
	if req.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*req.Status))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}

	return r.FindByID(ctx, id)
}

// Delete removes the task with the given id. The boolean reports whether a
// row was actually removed; deleting an absent id is not an error.
func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting task %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return affected > 0, nil
}

// orderExpr returns the ORDER BY expression for the requested sort. Status
// ordering is generated from types.StatusRank so the SQL and the UI share
// one ordinal mapping.
func orderExpr(sortBy, sortOrder string) string {
	desc := sortOrder == types.SortOrderDesc

	switch sortBy {
	case types.SortByDueDate:
		if desc {
			return "due_date DESC"
		}
		return "due_date ASC"
	case types.SortByStatus:
		return statusOrderExpr(desc)
	default:
		return "created_at DESC"
	}
}

// statusOrderExpr builds a CASE expression ranking statuses by their
// workflow ordinal. The WHEN values are enum constants, not user input.
func statusOrderExpr(desc bool) string {
	var b strings.Builder
	b.WriteString("CASE status")
	for _, s := range types.Statuses() {
		rank := types.StatusRank[s]
		if desc {
			rank = len(types.StatusRank) + 1 - rank
		}
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", s, rank)
	}
	b.WriteString(" END")
	return b.String()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask hydrates one tasks row into a Task. NULL description and
// due_date columns become nil pointers.
func scanTask(row rowScanner) (types.Task, error) {
	var t types.Task
	var description, dueDate sql.NullString
	var status string

	if err := row.Scan(&t.ID, &t.Title, &description, &dueDate, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return types.Task{}, err
	}

	t.Status = types.TaskStatus(status)
	if description.Valid {
		v := description.String
		t.Description = &v
	}
	if dueDate.Valid {
		v := dueDate.String
		t.DueDate = &v
	}
	return t, nil
}

// nullableText maps an absent or empty optional string to SQL NULL.
// Optional text is stored as NULL, never as empty string.
func nullableText(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
