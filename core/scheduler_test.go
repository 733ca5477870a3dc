package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var fired []uint64

	handler := func(tm *Timer) uint8 {
		fired = append(fired, tm.WakeTime)
		return SF_DONE
	}

	for _, w := range []uint64{30, 10, 20, 10} {
		s.Schedule(&Timer{WakeTime: w, Handler: handler})
	}

	if next, ok := s.Next(); !ok || next != 10 {
		t.Errorf("Expected next wake 10, got %d (ok=%v)", next, ok)
	}

	if n := s.Dispatch(20); n != 3 {
		t.Errorf("Expected 3 timers fired, got %d", n)
	}
	if diff := cmp.Diff([]uint64{10, 10, 20}, fired); diff != "" {
		t.Errorf("Fire order mismatch (-want +got):\n%s", diff)
	}

	s.Dispatch(100)
	if _, ok := s.Next(); ok {
		t.Error("Expected empty schedule")
	}
	if s.Now() != 100 {
		t.Errorf("Expected now=100, got %d", s.Now())
	}
}

func TestSchedulerReschedule(t *testing.T) {
	s := NewScheduler()
	count := 0

	tm := &Timer{WakeTime: 0}
	tm.Handler = func(tm *Timer) uint8 {
		count++
		tm.WakeTime += 10
		if count == 5 {
			return SF_DONE
		}
		return SF_RESCHEDULE
	}
	s.Schedule(tm)

	s.Dispatch(25)
	if count != 3 {
		t.Errorf("Expected 3 runs by t=25, got %d", count)
	}

	s.Dispatch(1000)
	if count != 5 {
		t.Errorf("Expected timer to stop after 5 runs, got %d", count)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	a := &Timer{WakeTime: 5, Handler: func(*Timer) uint8 { return SF_DONE }}
	b := &Timer{WakeTime: 6, Handler: func(*Timer) uint8 {
		t.Error("cancelled timer fired")
		return SF_DONE
	}}
	s.Schedule(a)
	s.Schedule(b)

	if !s.Cancel(b) {
		t.Fatal("Cancel returned false for pending timer")
	}
	if s.Cancel(b) {
		t.Error("Cancel returned true for a timer no longer pending")
	}
	s.Dispatch(10)
}

func TestCycleWakeNoDrift(t *testing.T) {
	// 12MHz / 19300Hz is not an integer number of ticks
	const n = 19300
	if w := CycleWake(0, n, ReferenceCycleHz); w != TimerFreq {
		t.Errorf("Expected one second (%d ticks) after %d cycles, got %d", TimerFreq, n, w)
	}
	if p := TicksPerCycle(ReferenceCycleHz); p != 621 {
		t.Errorf("Expected 621 ticks per cycle, got %d", p)
	}
	if TimerToUS(TimerFromUS(52)) != 52 {
		t.Error("Tick/us conversion is not reversible for whole microseconds")
	}
}
