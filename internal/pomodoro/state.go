// Package pomodoro derives timer state and daily targets from stored data.
// Nothing here runs in the background; every answer is computed from the
// persisted timers and the clock passed in.
package pomodoro

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomotask/internal/config"
	"github.com/akyairhashvil/pomotask/internal/models"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseExpired:
		return "expired"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Kind is the interval type the user asked for.
type Kind int

const (
	KindFocus Kind = iota
	KindShortBreak
	KindLongBreak
)

func (k Kind) String() string {
	switch k {
	case KindFocus:
		return "Focus"
	case KindShortBreak:
		return "Short Break"
	case KindLongBreak:
		return "Long Break"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Durations holds the length of each interval kind.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

func DefaultDurations() Durations {
	return Durations{
		Focus:      config.FocusDuration,
		ShortBreak: config.ShortBreakDuration,
		LongBreak:  config.LongBreakDuration,
	}
}

// For returns the length of kind.
func (d Durations) For(kind Kind) time.Duration {
	switch kind {
	case KindShortBreak:
		return d.ShortBreak
	case KindLongBreak:
		return d.LongBreak
	default:
		return d.Focus
	}
}

// KindOf classifies a stored timer. Breaks are told apart by length; a
// break matching neither configured length counts as short.
func (d Durations) KindOf(t models.Timer) Kind {
	if t.IsPomodoro {
		return KindFocus
	}
	if time.Duration(t.Duration)*time.Minute == d.LongBreak && d.LongBreak != d.ShortBreak {
		return KindLongBreak
	}
	return KindShortBreak
}

// Snapshot is the timer state at one instant.
type Snapshot struct {
	Phase     Phase
	Timer     *models.Timer
	Kind      Kind
	Remaining time.Duration
	EndsAt    time.Time
}

// Evaluate derives the state of the unattributed timer at now using the
// default durations to classify breaks.
func Evaluate(timer *models.Timer, now time.Time) Snapshot {
	return EvaluateWith(timer, now, DefaultDurations())
}

// EvaluateWith is Evaluate with explicit durations. A timer whose end equals
// now is Expired.
func EvaluateWith(timer *models.Timer, now time.Time, d Durations) Snapshot {
	if timer == nil {
		return Snapshot{Phase: PhaseIdle}
	}
	t := *timer
	end := t.End()
	snap := Snapshot{
		Timer:  &t,
		Kind:   d.KindOf(t),
		EndsAt: end,
	}
	if now.Before(end) {
		snap.Phase = PhaseRunning
		snap.Remaining = end.Sub(now)
	} else {
		snap.Phase = PhaseExpired
	}
	return snap
}

func (s Snapshot) Idle() bool    { return s.Phase == PhaseIdle }
func (s Snapshot) Running() bool { return s.Phase == PhaseRunning }
func (s Snapshot) Expired() bool { return s.Phase == PhaseExpired }

// FocusExpired reports a finished focus interval waiting to be attached.
func (s Snapshot) FocusExpired() bool {
	return s.Phase == PhaseExpired && s.Kind == KindFocus
}

// Clock renders the remaining time as MM:SS from whole seconds.
func (s Snapshot) Clock() string {
	secs := int64(s.Remaining / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Title is the window title for this state: the clock while running,
// fallback otherwise.
func (s Snapshot) Title(fallback string) string {
	if s.Phase != PhaseRunning {
		return fallback
	}
	return fmt.Sprintf("%s %s", s.Clock(), s.Kind)
}

// Equal compares two snapshots by value.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Phase != o.Phase || s.Kind != o.Kind || s.Remaining != o.Remaining || !s.EndsAt.Equal(o.EndsAt) {
		return false
	}
	if (s.Timer == nil) != (o.Timer == nil) {
		return false
	}
	return s.Timer == nil || s.Timer.ID == o.Timer.ID
}
