package engine

import (
	"sort"
	"time"
)

// ScheduledEvent is a deferred action bound to the round clock
// Guard is re-checked at fire time so events outliving their phase or round become no-ops
type ScheduledEvent struct {
	Name     string
	Deadline time.Duration
	Guard    func() bool
	Action   func()

	seq uint64 // insertion order, breaks deadline ties
}

// Scheduler holds deferred events against a single authoritative clock
// Not safe for concurrent use; owned by the round's single writer
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []*ScheduledEvent
}

// NewScheduler creates an empty scheduler at clock zero
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make([]*ScheduledEvent, 0, 8)}
}

// Now returns the scheduler clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules action to run delay after the current clock if guard still holds then
// A nil guard always passes
func (s *Scheduler) After(delay time.Duration, name string, guard func() bool, action func()) {
	s.seq++
	ev := &ScheduledEvent{
		Name:     name,
		Deadline: s.now + delay,
		Guard:    guard,
		Action:   action,
		seq:      s.seq,
	}

	i := sort.Search(len(s.pending), func(i int) bool {
		p := s.pending[i]
		return p.Deadline > ev.Deadline || (p.Deadline == ev.Deadline && p.seq > ev.seq)
	})
	s.pending = append(s.pending, nil)
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = ev
}

// Advance moves the clock to now and fires due events in deadline order
// Returns the names of events whose guard passed
func (s *Scheduler) Advance(now time.Duration) []string {
	if now > s.now {
		s.now = now
	}

	var fired []string
	for len(s.pending) > 0 && s.pending[0].Deadline <= s.now {
		ev := s.pending[0]
		s.pending[0] = nil
		s.pending = s.pending[1:]

		if ev.Guard != nil && !ev.Guard() {
			continue
		}
		ev.Action()
		fired = append(fired, ev.Name)
	}
	return fired
}

// Pending returns the number of events not yet due
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
