// Package tui implements the interactive task board. It follows the Elm
// architecture: a model, typed messages, and a View rendered from state.
// All board state transitions go through the store reducer; the model only
// keeps presentation concerns (cursor, active screen, form input).
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/taskboard/internal/store"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// screen selects which view the board is showing.
type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirmDelete
)

// Messages produced by backend commands.
type (
	tasksLoadedMsg struct{ tasks []types.Task }
	taskSavedMsg   struct {
		task    types.Task
		created bool
	}
	taskDeletedMsg struct{ id string }
	errMsg         struct{ err error }
)

// Run starts the board against the given backend and blocks until the user
// quits or ctx is canceled.
func Run(ctx context.Context, backend Backend) error {
	m := newModel(ctx, backend)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	ctx     context.Context
	backend Backend

	state  store.State
	screen screen
	cursor int
	form   *formModel
	width  int
	height int
}

func newModel(ctx context.Context, backend Backend) *model {
	return &model{
		ctx:     ctx,
		backend: backend,
		state:   store.Initial(),
		screen:  screenList,
	}
}

// dispatch routes an action through the reducer.
func (m *model) dispatch(a store.Action) {
	m.state = store.Reduce(m.state, a)
}

// selected returns the task under the cursor, or nil when the list is empty.
func (m *model) selected() *types.Task {
	if m.cursor < 0 || m.cursor >= len(m.state.Tasks) {
		return nil
	}
	t := m.state.Tasks[m.cursor]
	return &t
}

// clampCursor keeps the cursor inside the task list after mutations.
func (m *model) clampCursor() {
	if m.cursor >= len(m.state.Tasks) {
		m.cursor = len(m.state.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Init() tea.Cmd {
	m.dispatch(store.SetLoading{Loading: true})
	return m.loadTasks()
}

// loadTasks fetches the task list using the current sort settings.
func (m *model) loadTasks() tea.Cmd {
	sortBy := m.state.SortBy
	sortOrder := m.state.SortOrder
	return func() tea.Msg {
		tasks, err := m.backend.List(m.ctx, sortBy, sortOrder)
		if err != nil {
			return errMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m *model) saveTask(f *formModel) tea.Cmd {
	return func() tea.Msg {
		if f.editing == nil {
			created, err := m.backend.Create(m.ctx, f.createRequest())
			if err != nil {
				return errMsg{err: err}
			}
			return taskSavedMsg{task: *created, created: true}
		}
		updated, err := m.backend.Update(m.ctx, f.editing.ID, f.updateRequest())
		if err != nil {
			return errMsg{err: err}
		}
		return taskSavedMsg{task: *updated}
	}
}

func (m *model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.backend.Delete(m.ctx, id); err != nil {
			return errMsg{err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.dispatch(store.SetTasks{Tasks: msg.tasks})
		m.dispatch(store.SetLoading{Loading: false})
		m.dispatch(store.SetError{})
		m.clampCursor()
		return m, nil

	case taskSavedMsg:
		if msg.created {
			m.dispatch(store.AddTask{Task: msg.task})
		} else {
			m.dispatch(store.UpdateTask{Task: msg.task})
		}
		m.dispatch(store.SetEditingTask{Task: nil})
		m.dispatch(store.SetError{})
		m.form = nil
		m.screen = screenList
		// Reload so the list reflects server-side ordering.
		return m, m.loadTasks()

	case taskDeletedMsg:
		m.dispatch(store.DeleteTask{ID: msg.id})
		m.dispatch(store.SetError{})
		m.clampCursor()
		m.screen = screenList
		return m, nil

	case errMsg:
		m.dispatch(store.SetLoading{Loading: false})
		m.dispatch(store.SetError{Err: msg.err.Error()})
		if m.screen == screenConfirmDelete {
			m.screen = screenList
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenForm:
		return m.handleFormKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.state.Tasks)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "enter":
		if t := m.selected(); t != nil {
			m.dispatch(store.SetViewingTask{Task: t})
			m.screen = screenDetail
		}

	case "n":
		m.form = newForm(nil)
		m.screen = screenForm

	case "e":
		if t := m.selected(); t != nil {
			m.dispatch(store.SetEditingTask{Task: t})
			m.form = newForm(t)
			m.screen = screenForm
		}

	case "d":
		if m.selected() != nil {
			m.screen = screenConfirmDelete
		}

	case "s":
		m.dispatch(store.SetSorting{SortBy: nextSortBy(m.state.SortBy), SortOrder: m.state.SortOrder})
		m.dispatch(store.SetLoading{Loading: true})
		return m, m.loadTasks()

	case "o":
		m.dispatch(store.SetSorting{SortBy: m.state.SortBy, SortOrder: toggleSortOrder(m.state.SortOrder)})
		m.dispatch(store.SetLoading{Loading: true})
		return m, m.loadTasks()

	case "r":
		m.dispatch(store.SetLoading{Loading: true})
		return m, m.loadTasks()
	}

	return m, nil
}

func (m *model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.dispatch(store.SetViewingTask{Task: nil})
		m.screen = screenList

	case "e":
		if t := m.state.ViewingTask; t != nil {
			m.dispatch(store.SetViewingTask{Task: nil})
			m.dispatch(store.SetEditingTask{Task: t})
			m.form = newForm(t)
			m.screen = screenForm
		}
	}
	return m, nil
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if t := m.selected(); t != nil {
			return m, m.deleteTask(t.ID)
		}
		m.screen = screenList
	case "n", "esc", "q":
		m.screen = screenList
	}
	return m, nil
}

func (m *model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dispatch(store.SetEditingTask{Task: nil})
		m.form = nil
		m.screen = screenList
		return m, nil

	case "enter":
		if m.form.validate() {
			return m, m.saveTask(m.form)
		}
		return m, nil
	}

	m.form.handleKey(msg)
	return m, nil
}

// nextSortBy cycles created-time, dueDate, status.
func nextSortBy(current string) string {
	switch current {
	case "":
		return types.SortByDueDate
	case types.SortByDueDate:
		return types.SortByStatus
	default:
		return ""
	}
}

// toggleSortOrder flips asc and desc.
func toggleSortOrder(current string) string {
	if current == types.SortOrderDesc {
		return types.SortOrderAsc
	}
	return types.SortOrderDesc
}

// sortLabel names the active sort for the header.
func sortLabel(sortBy, sortOrder string) string {
	switch sortBy {
	case types.SortByDueDate:
		return fmt.Sprintf("due date (%s)", sortOrder)
	case types.SortByStatus:
		return fmt.Sprintf("status (%s)", sortOrder)
	default:
		return "newest first"
	}
}
