package sim

import (
	"fmt"
)

// Change sets the frequency-mode input level from a given cycle onwards
type Change struct {
	Cycle uint64 `json:"cycle"`
	Low   bool   `json:"low"`
}

// Switch is a ModeInput whose level follows a schedule, modelling an
// operator flipping the 50/60 Hz selector while the inverter runs.
type Switch struct {
	low      bool
	schedule []Change
	next     int
	reads    int
}

// NewSwitch creates a switch at the initial level. Changes must be in
// strictly increasing cycle order.
func NewSwitch(initialLow bool, schedule []Change) (*Switch, error) {
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Cycle <= schedule[i-1].Cycle {
			return nil, fmt.Errorf("switch change %d at cycle %d not after cycle %d",
				i, schedule[i].Cycle, schedule[i-1].Cycle)
		}
	}
	return &Switch{low: initialLow, schedule: schedule}, nil
}

// At moves the switch to its level for the given cycle
func (s *Switch) At(cycle uint64) {
	for s.next < len(s.schedule) && s.schedule[s.next].Cycle <= cycle {
		s.low = s.schedule[s.next].Low
		s.next++
	}
}

// LowFrequency implements core.ModeInput
func (s *Switch) LowFrequency() bool {
	s.reads++
	return s.low
}

// Reads returns how many times the level was sampled
func (s *Switch) Reads() int {
	return s.reads
}
