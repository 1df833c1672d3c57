package types

// TaskStatus is the closed set of workflow states a task can be in.
type TaskStatus string

// Task statuses. The string values are part of the wire format and the
// persisted representation; they never change casing.
const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// StatusRank maps each status to its workflow ordinal. It is the single
// source of truth for status ordering: the repository builds its ORDER BY
// expression from it and the board UI uses it for local sorting.
var StatusRank = map[TaskStatus]int{
	StatusPending:    1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

// Statuses returns all statuses in ascending rank order.
func Statuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is a member of the status enumeration.
func (s TaskStatus) Valid() bool {
	_, ok := StatusRank[s]
	return ok
}

// Task is the sole domain entity. Optional fields are pointers: a nil
// Description or DueDate means the field is absent, never empty string.
// Timestamps are RFC 3339 strings, set by the service layer.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"dueDate,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// Sort keys accepted by the list endpoint. Any other value falls back to
// creation time descending.
const (
	SortByDueDate = "dueDate"
	SortByStatus  = "status"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)
