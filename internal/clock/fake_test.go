package clock

import (
	"testing"
	"time"
)

func TestFakeFiresInDueOrder(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	var order []string
	f.Repeat(300*time.Millisecond, func() { order = append(order, "fast") })
	f.Repeat(time.Second, func() { order = append(order, "slow") })

	f.Advance(time.Second)

	want := []string{"fast", "fast", "fast", "slow"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if !f.Now().Equal(time.Unix(1, 0)) {
		t.Fatalf("expected clock at 1s, got %v", f.Now())
	}
}

func TestFakeStopFromCallback(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	count := 0
	var timer Timer
	timer = f.Repeat(time.Second, func() {
		count++
		timer.Stop()
	})
	f.Advance(5 * time.Second)
	if count != 1 {
		t.Fatalf("expected one fire after stop, got %d", count)
	}
	if f.Active() != 0 {
		t.Fatalf("expected no active timers, got %d", f.Active())
	}
}

func TestFakeRestartFromCallback(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	fires := 0
	var restart func()
	var timer Timer
	restart = func() {
		if timer != nil {
			timer.Stop()
		}
		timer = f.Repeat(2*time.Second, func() {
			fires++
			restart()
		})
	}
	restart()
	f.Advance(6 * time.Second)
	if fires != 3 {
		t.Fatalf("expected 3 fires, got %d", fires)
	}
	if f.Active() != 1 {
		t.Fatalf("expected a single re-armed timer, got %d", f.Active())
	}
}
