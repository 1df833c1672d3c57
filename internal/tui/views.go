package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	statusStyles = map[types.TaskStatus]lipgloss.Style{
		types.StatusPending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		types.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		types.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
	}
)

// statusBadge renders a status in its color.
func statusBadge(s types.TaskStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render("[" + string(s) + "]")
}

func (m *model) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenForm:
		return m.viewForm()
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m *model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Board") + "\n\n")
	b.WriteString(dimStyle.Render("Sort: "+sortLabel(m.state.SortBy, m.state.SortOrder)) + "\n\n")

	if m.state.Err != "" {
		b.WriteString(errStyle.Render("Error: "+m.state.Err) + "\n\n")
	}

	switch {
	case m.state.Loading:
		b.WriteString("Loading tasks...\n")
	case len(m.state.Tasks) == 0:
		b.WriteString(dimStyle.Render("No tasks yet. Press n to create one.") + "\n")
	default:
		for i, t := range m.state.Tasks {
			b.WriteString(m.renderRow(i, t))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move · enter view · n new · e edit · d delete · s sort · o order · r refresh · q quit"))
	return b.String()
}

func (m *model) renderRow(i int, t types.Task) string {
	cursor := "  "
	line := fmt.Sprintf("%s %s", statusBadge(t.Status), t.Title)
	if t.DueDate != nil {
		line += dimStyle.Render("  due " + dateOnly(*t.DueDate))
	}
	if i == m.cursor {
		return selectedStyle.Render("> ") + selectedStyle.Render(line)
	}
	return cursor + line
}

func (m *model) viewDetail() string {
	t := m.state.ViewingTask
	if t == nil {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Details") + "\n\n")
	b.WriteString(labelStyle.Render("Title:       ") + t.Title + "\n")
	b.WriteString(labelStyle.Render("Status:      ") + statusBadge(t.Status) + "\n")

	description := dimStyle.Render("(none)")
	if t.Description != nil && *t.Description != "" {
		description = *t.Description
	}
	b.WriteString(labelStyle.Render("Description: ") + description + "\n")

	due := dimStyle.Render("(none)")
	if t.DueDate != nil {
		due = dateOnly(*t.DueDate)
	}
	b.WriteString(labelStyle.Render("Due date:    ") + due + "\n")
	b.WriteString(labelStyle.Render("Created:     ") + t.CreatedAt + "\n")
	b.WriteString(labelStyle.Render("Updated:     ") + t.UpdatedAt + "\n\n")

	b.WriteString(dimStyle.Render("e edit · esc back"))
	return b.String()
}

func (m *model) viewForm() string {
	f := m.form
	if f == nil {
		return m.viewList()
	}

	heading := "New Task"
	if f.editing != nil {
		heading = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	b.WriteString(renderInput(f, fieldTitle, "Title", f.title))
	b.WriteString(renderInput(f, fieldDescription, "Description", f.description))
	b.WriteString(renderInput(f, fieldDueDate, "Due date (YYYY-MM-DD)", f.dueDate))
	b.WriteString(renderStatusPicker(f))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab next field · left/right change status · enter save · esc cancel"))
	return b.String()
}

func renderInput(f *formModel, field int, label, value string) string {
	var b strings.Builder

	name := labelStyle.Render(label + ":")
	if f.focus == field {
		name = focusStyle.Render("> " + label + ":")
	} else {
		name = "  " + name
	}
	b.WriteString(name + " " + value)
	if f.focus == field {
		b.WriteString(focusStyle.Render("_"))
	}
	b.WriteString("\n")

	if msg, ok := f.fieldErrs[fieldErrKey(field)]; ok {
		b.WriteString("    " + errStyle.Render(msg) + "\n")
	}
	return b.String()
}

func renderStatusPicker(f *formModel) string {
	var b strings.Builder

	name := labelStyle.Render("Status:")
	if f.focus == fieldStatus {
		name = focusStyle.Render("> Status:")
	} else {
		name = "  " + name
	}
	b.WriteString(name + " ")

	for i, s := range types.Statuses() {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == f.statusIdx {
			b.WriteString(selectedStyle.Render("(" + string(s) + ")"))
		} else {
			b.WriteString(dimStyle.Render(" " + string(s) + " "))
		}
	}
	b.WriteString("\n")

	if msg, ok := f.fieldErrs["status"]; ok {
		b.WriteString("    " + errStyle.Render(msg) + "\n")
	}
	return b.String()
}

// fieldErrKey maps a focus index to the validator's field name.
func fieldErrKey(field int) string {
	switch field {
	case fieldDescription:
		return "description"
	case fieldDueDate:
		return "dueDate"
	case fieldStatus:
		return "status"
	default:
		return "title"
	}
}

func (m *model) viewConfirmDelete() string {
	t := m.selected()
	if t == nil {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete Task") + "\n\n")
	b.WriteString("Delete \"" + t.Title + "\"?\n\n")
	b.WriteString(dimStyle.Render("y confirm · n cancel"))
	return b.String()
}

// dateOnly trims an RFC 3339 timestamp down to its date part.
func dateOnly(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}
