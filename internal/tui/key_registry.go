package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs a binding. handled=false lets lower priority bindings try.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// Timer limits the binding to these timer states; empty means always.
	Timer    []string
	Priority int
}

func (b KeyBinding) AppliesTo(state string) bool {
	if len(b.Timer) == 0 {
		return true
	}
	for _, s := range b.Timer {
		if s == state {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	state := m.view.Timer.Phase.String()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(state) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(state string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(state) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor lists the described bindings for a timer state, first key wins.
func (r *HandlerRegistry) HelpFor(state string) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(state) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}
