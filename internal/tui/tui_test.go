package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestSortCycling(t *testing.T) {
	assert.Equal(t, types.SortByDueDate, nextSortBy(""))
	assert.Equal(t, types.SortByStatus, nextSortBy(types.SortByDueDate))
	assert.Equal(t, "", nextSortBy(types.SortByStatus))

	assert.Equal(t, types.SortOrderDesc, toggleSortOrder(types.SortOrderAsc))
	assert.Equal(t, types.SortOrderAsc, toggleSortOrder(types.SortOrderDesc))
}

func TestSortLabel(t *testing.T) {
	assert.Equal(t, "newest first", sortLabel("", types.SortOrderAsc))
	assert.Equal(t, "due date (asc)", sortLabel(types.SortByDueDate, types.SortOrderAsc))
	assert.Equal(t, "status (desc)", sortLabel(types.SortByStatus, types.SortOrderDesc))
}

func TestNewFormPrefillsFromTask(t *testing.T) {
	task := types.Task{
		ID:          "0f8fad5b-d9cb-469f-a165-70867728950e",
		Title:       "Write docs",
		Description: strPtr("all of them"),
		DueDate:     strPtr("2030-01-02"),
		Status:      types.StatusInProgress,
	}

	f := newForm(&task)
	assert.Equal(t, "Write docs", f.title)
	assert.Equal(t, "all of them", f.description)
	assert.Equal(t, "2030-01-02", f.dueDate)
	assert.Equal(t, types.StatusInProgress, f.status())
}

func TestCreateRequestOmitsEmptyOptionals(t *testing.T) {
	f := newForm(nil)
	f.title = "Task"

	req := f.createRequest()
	assert.Equal(t, "Task", req.Title)
	assert.Nil(t, req.Description)
	assert.Nil(t, req.DueDate)
	assert.Equal(t, types.StatusPending, req.Status)
}

func TestUpdateRequestAlwaysCarriesTitleAndStatus(t *testing.T) {
	task := types.Task{Title: "Old", Status: types.StatusPending}
	f := newForm(&task)
	f.title = "New"
	f.statusIdx = 2

	req := f.updateRequest()
	require.NotNil(t, req.Title)
	assert.Equal(t, "New", *req.Title)
	require.NotNil(t, req.Status)
	assert.Equal(t, types.StatusCompleted, *req.Status)
	assert.Nil(t, req.Description)
	assert.Nil(t, req.DueDate)
}

func TestFormValidateRecordsFieldErrors(t *testing.T) {
	f := newForm(nil)
	f.dueDate = "not-a-date"

	require.False(t, f.validate())
	assert.Equal(t, "Title is required", f.fieldErrs["title"])
	assert.Equal(t, "Invalid date format", f.fieldErrs["dueDate"])

	f.title = "Task"
	f.dueDate = ""
	assert.True(t, f.validate())
	assert.Empty(t, f.fieldErrs)
}

func TestFormFocusAndStatusCycling(t *testing.T) {
	f := newForm(nil)
	assert.Equal(t, fieldTitle, f.focus)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	f.handleKey(tab)
	assert.Equal(t, fieldDescription, f.focus)
	f.handleKey(tab)
	f.handleKey(tab)
	assert.Equal(t, fieldStatus, f.focus)
	f.handleKey(tab)
	assert.Equal(t, fieldTitle, f.focus)

	f.focus = fieldStatus
	f.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, types.StatusInProgress, f.status())
	f.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, types.StatusPending, f.status())
	f.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, types.StatusCompleted, f.status())
}

func TestFormTextEditing(t *testing.T) {
	f := newForm(nil)
	f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	assert.Equal(t, "hi", f.title)

	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "h", f.title)

	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	f.handleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", f.title)
}

func TestModelHandlesLoadedTasks(t *testing.T) {
	m := newModel(context.Background(), nil)

	tasks := []types.Task{
		{ID: "1", Title: "a", Status: types.StatusPending},
		{ID: "2", Title: "b", Status: types.StatusCompleted},
	}
	next, cmd := m.Update(tasksLoadedMsg{tasks: tasks})
	require.Nil(t, cmd)

	got := next.(*model)
	assert.Equal(t, tasks, got.state.Tasks)
	assert.False(t, got.state.Loading)
	assert.Empty(t, got.state.Err)
}

func TestModelClampsCursorAfterDelete(t *testing.T) {
	m := newModel(context.Background(), nil)
	m.state.Tasks = []types.Task{
		{ID: "1", Title: "a", Status: types.StatusPending},
		{ID: "2", Title: "b", Status: types.StatusPending},
	}
	m.cursor = 1

	next, _ := m.Update(taskDeletedMsg{id: "2"})
	got := next.(*model)
	require.Len(t, got.state.Tasks, 1)
	assert.Equal(t, 0, got.cursor)
}

func TestModelRecordsBackendError(t *testing.T) {
	m := newModel(context.Background(), nil)
	m.state.Loading = true

	next, _ := m.Update(errMsg{err: errors.New("connection refused")})
	got := next.(*model)
	assert.False(t, got.state.Loading)
	assert.Equal(t, "connection refused", got.state.Err)
}

func TestModelSavedTaskClosesForm(t *testing.T) {
	m := newModel(context.Background(), nil)
	m.form = newForm(nil)
	m.screen = screenForm

	next, cmd := m.Update(taskSavedMsg{
		task:    types.Task{ID: "1", Title: "a", Status: types.StatusPending},
		created: true,
	})
	got := next.(*model)
	assert.Equal(t, screenList, got.screen)
	assert.Nil(t, got.form)
	require.Len(t, got.state.Tasks, 1)
	assert.NotNil(t, cmd)
}
