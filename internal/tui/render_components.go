package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomotask/internal/config"
	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/pomodoro"
	"github.com/charmbracelet/lipgloss"
)

const unnamedPlaceholder = "(unnamed, press e)"

var intervalButtons = []struct {
	key  string
	kind pomodoro.Kind
}{
	{"f", pomodoro.KindFocus},
	{"s", pomodoro.KindShortBreak},
	{"l", pomodoro.KindLongBreak},
}

func (m MainModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderTimerBar())
	b.WriteString("\n")
	if line := m.renderStatus(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}
	if m.width == 0 || m.width >= config.CompactModeThreshold {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render(m.registry.HelpFor(m.view.Timer.Phase.String())))
	}
	return CurrentTheme.Base.Render(b.String())
}

func (m MainModel) renderHeader() string {
	filter := "all tasks"
	if m.filter == models.FilterPending {
		filter = "pending tasks"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		CurrentTheme.Header.Render(config.DefaultWindowTitle),
		"  ",
		CurrentTheme.Target.Render(FormatTarget(m.view.Target)),
		"  ",
		CurrentTheme.Dim.Render(filter),
	)
}

func (m MainModel) renderTasks() string {
	width := nameWidth(m.width)
	var rows []string
	for i, t := range m.view.Tasks {
		rows = append(rows, m.renderTaskRow(i, t, width))
	}
	if m.editing && !m.hasTask(m.editingID) {
		rows = append(rows, "  "+m.input.View())
	}
	if len(rows) == 0 {
		return CurrentTheme.Dim.Render("  No tasks. Press a to add one.") + "\n"
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m MainModel) hasTask(id int64) bool {
	for _, t := range m.view.Tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (m MainModel) renderTaskRow(i int, t pomodoro.TaskView, width int) string {
	marker := "  "
	if i == m.cursor {
		marker = CurrentTheme.Cursor.Render("> ")
	}
	if m.editing && t.ID == m.editingID {
		return marker + CurrentTheme.Input.Render(m.input.View())
	}

	box := "[ ]"
	style := CurrentTheme.Task
	name := t.Name
	switch {
	case !t.Locked:
		// Left unnamed by an interrupted edit.
		box = "[~]"
		style = CurrentTheme.Dim
		if strings.TrimSpace(name) == "" {
			name = unnamedPlaceholder
		}
	case t.Done:
		box = "[x]"
		style = CurrentTheme.DoneTask
	}
	name = TruncateName(name, width)
	padded := name + strings.Repeat(" ", max(0, width-lipgloss.Width(name)))
	return fmt.Sprintf("%s%s %s  %s", marker, box, style.Render(padded), FormatCount(t.Completed, t.Estimate))
}

func (m MainModel) renderTimerBar() string {
	snap := m.view.Timer
	var parts []string
	for _, btn := range intervalButtons {
		label := btn.kind.String()
		text := fmt.Sprintf("[%s] %s", btn.key, label)
		if !snap.Idle() && snap.Kind == btn.kind {
			parts = append(parts, kindStyle(label).Render(text))
			continue
		}
		parts = append(parts, CurrentTheme.Button.Render(text))
	}

	switch {
	case snap.FocusExpired():
		parts = append(parts, CurrentTheme.Expired.Render("Done! Add point to task."), CurrentTheme.Dim.Render("[c] x"))
	case snap.Running():
		parts = append(parts, CurrentTheme.Clock.Render(snap.Clock()), CurrentTheme.Dim.Render("[c] x"))
	}
	return strings.Join(parts, " ")
}

func (m MainModel) renderStatus() string {
	if m.err != nil {
		return CurrentTheme.Error.Render("Error: " + m.err.Error())
	}
	if m.Message != "" {
		return CurrentTheme.Status.Render(m.Message)
	}
	return ""
}
