package pomodoro

// Renderer draws a refreshed view.
type Renderer interface {
	Render(View)
}

// Notifier is told when a focus interval has just run out.
type Notifier interface {
	IntervalExpired()
}

// TitleSetter receives the window title.
type TitleSetter interface {
	SetTitle(string)
}

// ExpiryLatch fires once per expired focus interval. Feed it every
// snapshot; Observe returns true on the first snapshot that shows a given
// timer expired.
type ExpiryLatch struct {
	fired int64
}

func (l *ExpiryLatch) Observe(s Snapshot) bool {
	if !s.FocusExpired() {
		if s.Idle() {
			l.fired = 0
		}
		return false
	}
	if l.fired == s.Timer.ID {
		return false
	}
	l.fired = s.Timer.ID
	return true
}

// Reset forgets the last fired timer.
func (l *ExpiryLatch) Reset() {
	l.fired = 0
}
