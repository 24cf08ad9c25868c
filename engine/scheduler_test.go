package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	record := func(name string) func() { return func() { order = append(order, name) } }

	s.After(300*time.Millisecond, "c", nil, record("c"))
	s.After(100*time.Millisecond, "a", nil, record("a"))
	s.After(200*time.Millisecond, "b1", nil, record("b1"))
	s.After(200*time.Millisecond, "b2", nil, record("b2"))

	if fired := s.Advance(150 * time.Millisecond); !reflect.DeepEqual(fired, []string{"a"}) {
		t.Fatalf("fired at 150ms = %v, want [a]", fired)
	}
	s.Advance(time.Second)

	want := []string{"a", "b1", "b2", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerGuardSkipsStaleEvents(t *testing.T) {
	s := NewScheduler()
	generation := 1
	captured := generation
	ran := false

	s.After(time.Second, "stale", func() bool { return generation == captured }, func() { ran = true })
	generation++

	if fired := s.Advance(2 * time.Second); len(fired) != 0 {
		t.Errorf("fired = %v, want none", fired)
	}
	if ran {
		t.Error("guarded action ran after generation changed")
	}
	if s.Pending() != 0 {
		t.Error("stale event should be consumed")
	}
}

func TestSchedulerActionMaySchedule(t *testing.T) {
	s := NewScheduler()
	count := 0
	var rearm func()
	rearm = func() {
		count++
		if count < 3 {
			s.After(100*time.Millisecond, "rearm", nil, rearm)
		}
	}
	s.After(100*time.Millisecond, "rearm", nil, rearm)

	for now := time.Duration(0); now <= time.Second; now += 50 * time.Millisecond {
		s.Advance(now)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestSchedulerClockIsMonotonic(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	s.Advance(500 * time.Millisecond)
	if s.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", s.Now())
	}
}
