package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomotask/internal/config"
	"github.com/akyairhashvil/pomotask/internal/models"
	"github.com/akyairhashvil/pomotask/internal/pomodoro"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// TickMsg asks for a refresh while an interval is running.
type TickMsg time.Time

type refreshMsg struct{}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func refreshCmd() tea.Msg { return refreshMsg{} }

// MainModel is the task list with the interval bar underneath.
type MainModel struct {
	ctx      context.Context
	engine   *pomodoro.Engine
	registry *HandlerRegistry
	log      *zap.Logger

	view   pomodoro.View
	filter models.TaskFilter
	cursor int

	editing     bool
	editingID   int64
	editingName string
	input       textinput.Model

	latch       pomodoro.ExpiryLatch
	notifier    pomodoro.Notifier
	title       *windowTitle
	tickPending bool

	Message       string
	err           error
	width, height int
}

var _ pomodoro.Renderer = (*MainModel)(nil)

type ModelOption func(*MainModel)

func WithNotifier(n pomodoro.Notifier) ModelOption {
	return func(m *MainModel) {
		if n != nil {
			m.notifier = n
		}
	}
}

func WithFilter(f models.TaskFilter) ModelOption {
	return func(m *MainModel) {
		if f.Valid() {
			m.filter = f
		}
	}
}

func WithLogger(log *zap.Logger) ModelOption {
	return func(m *MainModel) {
		if log != nil {
			m.log = log
		}
	}
}

func NewMainModel(ctx context.Context, engine *pomodoro.Engine, opts ...ModelOption) MainModel {
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.CharLimit = config.MaxTaskNameLength
	ti.Width = config.TargetNameWidth

	m := MainModel{
		ctx:      ctx,
		engine:   engine,
		registry: defaultRegistry(),
		log:      zap.NewNop(),
		filter:   models.FilterAll,
		input:    ti,
		notifier: NewBellNotifier(nil),
		title:    &windowTitle{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, refreshCmd)
}

// Render stores the engine view for the next frame.
func (m *MainModel) Render(v pomodoro.View) {
	m.view = v
	if m.cursor >= len(v.Tasks) {
		m.cursor = len(v.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor.
func (m MainModel) selected() (pomodoro.TaskView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Tasks) {
		return pomodoro.TaskView{}, false
	}
	return m.view.Tasks[m.cursor], true
}

// refresh pulls a new view from the engine and schedules what follows it:
// the window title, the expiry notification and the next tick.
func (m MainModel) refresh() (MainModel, tea.Cmd) {
	view, err := m.engine.Refresh(m.ctx, m.filter)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.Render(view)

	for i, t := range view.Tasks {
		if !t.JustCreated || (m.editing && t.ID == m.editingID) {
			continue
		}
		m.cursor = i
		if err := m.engine.ClearJustCreated(m.ctx, t.ID); err != nil {
			m.log.Warn("clear focus hint failed", zap.Int64("task", t.ID), zap.Error(err))
		}
		m.view.Tasks[i].JustCreated = false
	}

	if view.BreakFinished {
		m.Message = "Break over."
	}
	if m.latch.Observe(view.Timer) {
		m.notifier.IntervalExpired()
	}

	var cmds []tea.Cmd
	m.title.SetTitle(view.Timer.Title(config.DefaultWindowTitle))
	if title, changed := m.title.take(); changed {
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	if d := m.engine.PollInterval(view.Timer); d > 0 && !m.tickPending {
		m.tickPending = true
		cmds = append(cmds, tickCmd(d))
	}
	return m, tea.Batch(cmds...)
}

func (m *MainModel) setError(err error) {
	m.err = err
	m.log.Warn("operation failed", zap.Error(err))
}
