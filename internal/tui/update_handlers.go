package tui

import (
	"strings"

	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/pomodoro"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		m.tickPending = false
		return m.refresh()
	case refreshMsg:
		return m.refresh()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// Any key acknowledges the last error or message.
		m.err = nil
		m.Message = ""
		if m.editing {
			return m.handleEditMode(msg)
		}
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.input.Width = nameWidth(m.width)
	return m, nil
}

func (m MainModel) handleNormalMode(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	next, cmd, handled := m.registry.Handle(m, msg.String())
	if !handled {
		return m, nil
	}
	return next, cmd
}

func (m MainModel) handleEditMode(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.finishEditing(m.input.Value())
	case tea.KeyEsc:
		// Escape keeps the previous name; a task that never had one goes away.
		return m.finishEditing(m.editingName)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) startEditing(id int64, name string) (MainModel, tea.Cmd) {
	m.editing = true
	m.editingID = id
	m.editingName = name
	m.input.SetValue(name)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// finishEditing leaves edit mode only once the name is stored, so a failed
// write keeps the typed text in the field.
func (m MainModel) finishEditing(name string) (MainModel, tea.Cmd) {
	deleted, err := m.engine.ConfirmName(m.ctx, m.editingID, name)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.editing = false
	m.editingID = 0
	m.editingName = ""
	m.input.Blur()
	m.input.Reset()
	if deleted {
		m.Message = "Empty task removed."
	}
	return m.refresh()
}

func moveCursor(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		if len(m.view.Tasks) == 0 {
			return m, nil, true
		}
		m.cursor += delta
		if m.cursor < 0 {
			m.cursor = 0
		}
		if m.cursor >= len(m.view.Tasks) {
			m.cursor = len(m.view.Tasks) - 1
		}
		return m, nil, true
	}
}

func handleAddTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	id, err := m.engine.AddTask(m.ctx)
	if err != nil {
		m.setError(err)
		return m, nil, true
	}
	m, refreshed := m.refresh()
	for i, t := range m.view.Tasks {
		if t.ID == id {
			m.cursor = i
		}
	}
	next, cmd := m.startEditing(id, "")
	return next, tea.Batch(refreshed, cmd), true
}

func handleEditTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	if err := m.engine.Unlock(m.ctx, task.ID); err != nil {
		m.setError(err)
		return m, nil, true
	}
	next, cmd := m.startEditing(task.ID, task.Name)
	return next, cmd, true
}

func handleToggleDone(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	if !task.Locked {
		m.Message = "Name the task first (press e)."
		return m, nil, true
	}
	if _, err := m.engine.ToggleDone(m.ctx, task.ID); err != nil {
		m.setError(err)
		return m, nil, true
	}
	next, cmd := m.refresh()
	return next, cmd, true
}

func adjustEstimate(delta int) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		task, ok := m.selected()
		if !ok {
			return m, nil, true
		}
		if _, err := m.engine.AdjustEstimate(m.ctx, task.ID, delta); err != nil {
			m.setError(err)
			return m, nil, true
		}
		next, cmd := m.refresh()
		return next, cmd, true
	}
}

func handleDeleteTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	if err := m.engine.DeleteTask(m.ctx, task.ID); err != nil {
		m.setError(err)
		return m, nil, true
	}
	next, cmd := m.refresh()
	return next, cmd, true
}

func startInterval(kind pomodoro.Kind) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		if _, err := m.engine.Start(m.ctx, kind); err != nil {
			m.setError(err)
			return m, nil, true
		}
		next, cmd := m.refresh()
		return next, cmd, true
	}
}

func handleCancel(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if err := m.engine.Cancel(m.ctx); err != nil {
		m.setError(err)
		return m, nil, true
	}
	next, cmd := m.refresh()
	return next, cmd, true
}

func handleAttach(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	task, ok := m.selected()
	if !ok {
		m.Message = "Select a task to credit."
		return m, nil, true
	}
	if err := m.engine.AttachCurrent(m.ctx, task.ID); err != nil {
		m.setError(err)
		return m, nil, true
	}
	m.Message = "Point added to " + strings.TrimSpace(task.Name) + "."
	next, cmd := m.refresh()
	return next, cmd, true
}

func handleToggleFilter(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next := models.FilterPending
	if m.filter == models.FilterPending {
		next = models.FilterAll
	}
	if err := m.engine.SetFilter(m.ctx, next); err != nil {
		m.setError(err)
		return m, nil, true
	}
	m.filter = next
	updated, cmd := m.refresh()
	return updated, cmd, true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

var expiredOnly = []string{pomodoro.PhaseExpired.String()}

var activeTimer = []string{pomodoro.PhaseRunning.String(), pomodoro.PhaseExpired.String()}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "up", Handler: moveCursor(-1)})
	r.Register(KeyBinding{Key: "k", Handler: moveCursor(-1)})
	r.Register(KeyBinding{Key: "down", Handler: moveCursor(1)})
	r.Register(KeyBinding{Key: "j", Handler: moveCursor(1)})
	r.Register(KeyBinding{Key: "a", Handler: handleAddTask, Description: "add"})
	r.Register(KeyBinding{Key: "e", Handler: handleEditTask, Description: "edit"})
	r.Register(KeyBinding{Key: "x", Handler: handleToggleDone, Description: "done"})
	r.Register(KeyBinding{Key: "+", Handler: adjustEstimate(1), Description: "estimate"})
	r.Register(KeyBinding{Key: "=", Handler: adjustEstimate(1)})
	r.Register(KeyBinding{Key: "-", Handler: adjustEstimate(-1)})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteTask, Description: "delete"})
	r.Register(KeyBinding{Key: "f", Handler: startInterval(pomodoro.KindFocus), Description: "focus"})
	r.Register(KeyBinding{Key: "s", Handler: startInterval(pomodoro.KindShortBreak), Description: "short break"})
	r.Register(KeyBinding{Key: "l", Handler: startInterval(pomodoro.KindLongBreak), Description: "long break"})
	r.Register(KeyBinding{Key: "c", Handler: handleCancel, Description: "cancel", Timer: activeTimer})
	r.Register(KeyBinding{Key: "p", Handler: handleAttach, Description: "add point", Timer: expiredOnly, Priority: 1})
	r.Register(KeyBinding{Key: "enter", Handler: handleAttach, Timer: expiredOnly, Priority: 1})
	r.Register(KeyBinding{Key: "enter", Handler: handleEditTask})
	r.Register(KeyBinding{Key: "v", Handler: handleToggleFilter, Description: "filter"})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit"})
	return r
}
