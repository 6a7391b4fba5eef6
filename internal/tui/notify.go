package tui

import (
	"io"
	"os"
	"sync"

	"github.com/akyairhashvil/pomotask/internal/pomodoro"
)

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	w io.Writer
}

// NewBellNotifier writes to w, or stderr when w is nil.
func NewBellNotifier(w io.Writer) *BellNotifier {
	if w == nil {
		w = os.Stderr
	}
	return &BellNotifier{w: w}
}

func (n *BellNotifier) IntervalExpired() {
	_, _ = io.WriteString(n.w, "\a")
}

// windowTitle remembers the last title so it is only sent when it changes.
type windowTitle struct {
	mu      sync.Mutex
	current string
	sent    string
}

func (w *windowTitle) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = title
}

func (w *windowTitle) take() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current == w.sent {
		return w.current, false
	}
	w.sent = w.current
	return w.current, true
}

var (
	_ pomodoro.Notifier    = (*BellNotifier)(nil)
	_ pomodoro.TitleSetter = (*windowTitle)(nil)
)
