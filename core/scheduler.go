package core

// Timer represents a scheduled event
type Timer struct {
	WakeTime uint64
	Handler  func(*Timer) uint8
	Next     *Timer
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

// Scheduler keeps timers sorted by WakeTime and fires the due ones.
// It drives periodic events such as the simulated PWM cycle clock.
type Scheduler struct {
	list *Timer
	now  uint64
}

// NewScheduler creates an empty scheduler at tick 0
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule adds a timer to the schedule
func (s *Scheduler) Schedule(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	s.insert(t)
}

// insert inserts a timer in sorted order by WakeTime.
// Timers with equal WakeTime fire in insertion order.
func (s *Scheduler) insert(t *Timer) {
	if s.list == nil || t.WakeTime < s.list.WakeTime {
		t.Next = s.list
		s.list = t
		return
	}

	current := s.list
	for current.Next != nil && current.Next.WakeTime <= t.WakeTime {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// Dispatch advances time to now and runs every timer due at or before
// it, returning the number of handlers run. A rescheduled timer that is
// still due runs again within the same call.
func (s *Scheduler) Dispatch(now uint64) int {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	s.now = now
	fired := 0
	for s.list != nil && s.list.WakeTime <= now {
		timer := s.list
		s.list = timer.Next
		timer.Next = nil

		fired++
		if timer.Handler(timer) == SF_RESCHEDULE {
			s.insert(timer)
		}
	}
	return fired
}

// Next returns the wake time of the earliest pending timer
func (s *Scheduler) Next() (uint64, bool) {
	if s.list == nil {
		return 0, false
	}
	return s.list.WakeTime, true
}

// Now returns the time of the last dispatch
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Cancel removes a timer if it is pending
func (s *Scheduler) Cancel(t *Timer) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for p := &s.list; *p != nil; p = &(*p).Next {
		if *p == t {
			*p = t.Next
			t.Next = nil
			return true
		}
	}
	return false
}
