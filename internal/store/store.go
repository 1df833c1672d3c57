// Package store holds the board UI state and its reducer. Reduce is a pure
// function of (state, action); every transition returns a new State value
// and unrecognized actions return the state unchanged. The bubbletea model
// dispatches actions here instead of mutating its own fields, so the UI
// state transitions stay testable in isolation.
package store

import "github.com/mesh-intelligence/taskboard/pkg/types"

// State is the full board UI state.
type State struct {
	Tasks       []types.Task
	EditingTask *types.Task
	ViewingTask *types.Task
	SortBy      string
	SortOrder   string
	Loading     bool
	Err         string
}

// Initial returns the state before any data has loaded.
func Initial() State {
	return State{
		Tasks:     []types.Task{},
		SortOrder: types.SortOrderAsc,
	}
}

// Action is a state transition request. The concrete types below are the
// only recognized actions.
type Action interface {
	isAction()
}

// SetTasks replaces the task list.
type SetTasks struct{ Tasks []types.Task }

// AddTask appends a task to the list.
type AddTask struct{ Task types.Task }

// UpdateTask replaces the list element with a matching id, preserving
// list order.
type UpdateTask struct{ Task types.Task }

// DeleteTask removes the task with the given id from the list.
type DeleteTask struct{ ID string }

// SetEditingTask selects the task being edited; nil closes the editor.
type SetEditingTask struct{ Task *types.Task }

// SetViewingTask selects the task being viewed; nil closes the view.
type SetViewingTask struct{ Task *types.Task }

// SetSorting updates the sort key and direction together; the two fields
// are never left inconsistent.
type SetSorting struct {
	SortBy    string
	SortOrder string
}

// SetLoading toggles the loading flag.
type SetLoading struct{ Loading bool }

// SetError records the last error message; an empty string clears it.
type SetError struct{ Err string }

func (SetTasks) isAction()       {}
func (AddTask) isAction()        {}
func (UpdateTask) isAction()     {}
func (DeleteTask) isAction()     {}
func (SetEditingTask) isAction() {}
func (SetViewingTask) isAction() {}
func (SetSorting) isAction()     {}
func (SetLoading) isAction()     {}
func (SetError) isAction()       {}

// Reduce applies one action to the state and returns the next state.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetTasks:
		s.Tasks = a.Tasks

	case AddTask:
		tasks := make([]types.Task, 0, len(s.Tasks)+1)
		tasks = append(tasks, s.Tasks...)
		s.Tasks = append(tasks, a.Task)

	case UpdateTask:
		tasks := make([]types.Task, len(s.Tasks))
		for i, t := range s.Tasks {
			if t.ID == a.Task.ID {
				tasks[i] = a.Task
			} else {
				tasks[i] = t
			}
		}
		s.Tasks = tasks

	case DeleteTask:
		tasks := make([]types.Task, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			if t.ID != a.ID {
				tasks = append(tasks, t)
			}
		}
		s.Tasks = tasks

	case SetEditingTask:
		s.EditingTask = a.Task

	case SetViewingTask:
		s.ViewingTask = a.Task

	case SetSorting:
		s.SortBy = a.SortBy
		s.SortOrder = a.SortOrder

	case SetLoading:
		s.Loading = a.Loading

	case SetError:
		s.Err = a.Err
	}

	return s
}
