// Package clock abstracts wall time and repeating timers so game logic can run
// against a real event loop or a deterministic fake.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a handle to a scheduled repeating callback.
type Timer interface {
	// Stop cancels the timer. A stopped timer never fires again.
	Stop()
}

// Scheduler runs callbacks on a fixed period.
//
// Implementations must invoke callbacks on the same goroutine that drives the
// rest of the game, so callbacks may freely mutate game state.
type Scheduler interface {
	Clock
	Repeat(every time.Duration, fire func()) Timer
}

// System is a Clock backed by time.Now.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time {
	return time.Now()
}
