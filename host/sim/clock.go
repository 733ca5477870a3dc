package sim

import (
	"inverter/core"
)

// Clock is the periodic cycle-complete trigger. It runs on a
// core.Scheduler and fires its edge callback at each PWM cycle boundary
// in simulated timer ticks. Invocations never overlap.
type Clock struct {
	sched   *core.Scheduler
	timer   core.Timer
	cycleHz uint32
	start   uint64
	count   uint64

	onEdge    func(cycle uint64)
	inEdge    bool
	overlaps  int
	scheduled bool
}

// NewClock creates a clock firing cycleHz times per simulated second
func NewClock(sched *core.Scheduler, cycleHz uint32, onEdge func(cycle uint64)) *Clock {
	c := &Clock{
		sched:   sched,
		cycleHz: cycleHz,
		start:   sched.Now(),
		onEdge:  onEdge,
	}
	c.timer.Handler = c.fire
	return c
}

// Start arms the first cycle boundary
func (c *Clock) Start() {
	if c.scheduled {
		return
	}
	c.timer.Next = nil
	c.timer.WakeTime = core.CycleWake(c.start, c.count+1, c.cycleHz)
	c.sched.Schedule(&c.timer)
	c.scheduled = true
}

// Stop disarms the clock
func (c *Clock) Stop() {
	if c.sched.Cancel(&c.timer) {
		c.scheduled = false
	}
}

// Step advances simulated time to the next cycle boundary and
// dispatches it. Returns false if the clock is not running.
func (c *Clock) Step() bool {
	wake, ok := c.sched.Next()
	if !ok {
		return false
	}
	c.sched.Dispatch(wake)
	return true
}

// fire is the scheduler handler for one cycle boundary
func (c *Clock) fire(t *core.Timer) uint8 {
	if c.inEdge {
		c.overlaps++
		return core.SF_DONE
	}
	c.inEdge = true
	c.onEdge(c.count)
	c.inEdge = false

	c.count++
	t.WakeTime = core.CycleWake(c.start, c.count+1, c.cycleHz)
	return core.SF_RESCHEDULE
}

// Cycles returns the number of cycle boundaries fired
func (c *Clock) Cycles() uint64 {
	return c.count
}

// Now returns the simulated time in timer ticks
func (c *Clock) Now() uint64 {
	return c.sched.Now()
}

// Overlaps returns how many edges arrived while the handler was running
func (c *Clock) Overlaps() int {
	return c.overlaps
}
