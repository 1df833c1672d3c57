package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/taskboard/internal/validate"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Form field indexes, in focus order.
const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldStatus
	fieldCount
)

// formModel is the create/edit form. A nil editing task means the form
// creates; otherwise it updates that task.
type formModel struct {
	editing *types.Task

	title       string
	description string
	dueDate     string
	statusIdx   int

	focus     int
	fieldErrs map[string]string
}

// newForm builds an empty create form, or an edit form pre-filled from the
// given task.
func newForm(editing *types.Task) *formModel {
	f := &formModel{editing: editing, fieldErrs: map[string]string{}}
	if editing == nil {
		return f
	}

	f.title = editing.Title
	if editing.Description != nil {
		f.description = *editing.Description
	}
	if editing.DueDate != nil {
		f.dueDate = *editing.DueDate
	}
	for i, s := range types.Statuses() {
		if s == editing.Status {
			f.statusIdx = i
		}
	}
	return f
}

func (f *formModel) status() types.TaskStatus {
	return types.Statuses()[f.statusIdx]
}

// handleKey applies one keypress to the form. Enter and esc are handled by
// the caller.
func (f *formModel) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "tab", "down":
		f.focus = (f.focus + 1) % fieldCount
		return
	case "shift+tab", "up":
		f.focus = (f.focus + fieldCount - 1) % fieldCount
		return
	}

	if f.focus == fieldStatus {
		switch msg.String() {
		case "left", "h":
			f.statusIdx = (f.statusIdx + len(types.Statuses()) - 1) % len(types.Statuses())
		case "right", "l", " ":
			f.statusIdx = (f.statusIdx + 1) % len(types.Statuses())
		}
		return
	}

	field := f.focusedField()
	switch msg.Type {
	case tea.KeyBackspace:
		runes := []rune(*field)
		if len(runes) > 0 {
			*field = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		*field += string(msg.Runes)
	case tea.KeySpace:
		*field += " "
	}
}

func (f *formModel) focusedField() *string {
	switch f.focus {
	case fieldDescription:
		return &f.description
	case fieldDueDate:
		return &f.dueDate
	default:
		return &f.title
	}
}

// validate runs the canonical validators on the pending request and records
// per-field errors for display. It returns true when the form can submit.
func (f *formModel) validate() bool {
	var res validate.Result
	if f.editing == nil {
		res = validate.CreateTask(f.createRequest())
	} else {
		res = validate.UpdateTask(f.updateRequest())
	}

	f.fieldErrs = map[string]string{}
	for _, ve := range res.Errors {
		if _, seen := f.fieldErrs[ve.Field]; !seen {
			f.fieldErrs[ve.Field] = ve.Message
		}
	}
	return res.Valid
}

// createRequest builds the create payload. Empty optional inputs are
// omitted entirely.
func (f *formModel) createRequest() types.CreateTaskRequest {
	return types.CreateTaskRequest{
		Title:       f.title,
		Description: optional(f.description),
		DueDate:     optional(f.dueDate),
		Status:      f.status(),
	}
}

// updateRequest builds the partial update payload. Title and status are
// always sent; optional inputs left blank are omitted so the stored values
// stay untouched.
func (f *formModel) updateRequest() types.UpdateTaskRequest {
	title := f.title
	status := f.status()
	return types.UpdateTaskRequest{
		Title:       &title,
		Description: optional(f.description),
		DueDate:     optional(f.dueDate),
		Status:      &status,
	}
}

// optional maps an empty input to an absent field.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}
