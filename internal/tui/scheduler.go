package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordrush/internal/clock"
)

type timerMsg struct {
	id uint64
}

// teaScheduler implements clock.Scheduler on top of tea.Tick so every timer
// callback runs inside Update, on the program's event loop. Commands for
// newly armed ticks queue up until flush hands them to the runtime.
type teaScheduler struct {
	now     func() time.Time
	nextID  uint64
	timers  map[uint64]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	sched *teaScheduler
	id    uint64
	every time.Duration
	fire  func()
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{now: time.Now, timers: map[uint64]*teaTimer{}}
}

// Now implements clock.Clock.
func (s *teaScheduler) Now() time.Time {
	return s.now()
}

// Repeat implements clock.Scheduler.
func (s *teaScheduler) Repeat(every time.Duration, fire func()) clock.Timer {
	s.nextID++
	t := &teaTimer{sched: s, id: s.nextID, every: every, fire: fire}
	s.timers[t.id] = t
	s.arm(t)
	return t
}

// Stop implements clock.Timer. A tick already in flight for this timer is
// dropped when it arrives.
func (t *teaTimer) Stop() {
	delete(t.sched.timers, t.id)
}

func (s *teaScheduler) arm(t *teaTimer) {
	id := t.id
	s.enqueue(tea.Tick(t.every, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

func (s *teaScheduler) enqueue(cmd tea.Cmd) {
	s.pending = append(s.pending, cmd)
}

func (s *teaScheduler) handle(msg timerMsg) {
	t, ok := s.timers[msg.id]
	if !ok {
		return
	}
	s.arm(t)
	t.fire()
}

func (s *teaScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
