package clock

import "time"

// Fake is a manually advanced Scheduler for tests.
type Fake struct {
	now    time.Time
	nextID uint64
	timers map[uint64]*fakeTimer
}

type fakeTimer struct {
	fake  *Fake
	id    uint64
	every time.Duration
	due   time.Time
	fire  func()
}

// NewFake returns a Fake positioned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start, timers: map[uint64]*fakeTimer{}}
}

// Now implements Clock.
func (f *Fake) Now() time.Time {
	return f.now
}

// Repeat implements Scheduler.
func (f *Fake) Repeat(every time.Duration, fire func()) Timer {
	if every <= 0 {
		every = time.Nanosecond
	}
	f.nextID++
	t := &fakeTimer{
		fake:  f,
		id:    f.nextID,
		every: every,
		due:   f.now.Add(every),
		fire:  fire,
	}
	f.timers[t.id] = t
	return t
}

// Stop implements Timer.
func (t *fakeTimer) Stop() {
	delete(t.fake.timers, t.id)
}

// Active reports how many timers are currently scheduled.
func (f *Fake) Active() int {
	return len(f.timers)
}

// Advance moves time forward by d, firing every timer that falls due on the
// way in due-time order. Timers created or stopped by callbacks take effect
// immediately.
func (f *Fake) Advance(d time.Duration) {
	end := f.now.Add(d)
	for {
		t := f.nextDue(end)
		if t == nil {
			break
		}
		f.now = t.due
		t.due = t.due.Add(t.every)
		t.fire()
	}
	f.now = end
}

func (f *Fake) nextDue(end time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.timers {
		if t.due.After(end) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.id < next.id) {
			next = t
		}
	}
	return next
}
