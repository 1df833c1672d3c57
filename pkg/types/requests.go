package types

// CreateTaskRequest is the POST /api/tasks body. Title and Status are
// required; the validator enforces both.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"dueDate,omitempty"`
	Status      TaskStatus `json:"status"`
}

// UpdateTaskRequest is the PUT /api/tasks/:id body. Every field is a
// pointer: nil means "leave unchanged", a non-nil value is an assignment.
// The repository emits SET clauses only for the non-nil fields.
type UpdateTaskRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	DueDate     *string     `json:"dueDate,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// ValidationError describes one failed field constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the uniform envelope for every API response.
type Response struct {
	Success          bool              `json:"success"`
	Data             any               `json:"data,omitempty"`
	Error            string            `json:"error,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}
