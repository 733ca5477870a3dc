// Cycle-synchronous waveform generator
// Runs once per PWM cycle from the cycle-complete interrupt and walks the
// waveform table, dropping one sample every `reload` cycles when the high
// output frequency is selected.
package core

import (
	"errors"
)

var (
	ErrEmptyTable = errors.New("waveform table is empty")
	ErrZeroReload = errors.New("skip reload must be at least 1")
)

// State is the mutable generator state. It is owned by the cycle handler.
type State struct {
	Index   int    // Current phase position, 0 <= Index < table length
	Sample  Sample // Cached table[Index], written on the next cycle
	Counter uint8  // Cycles left until the next skip (high frequency mode only)
}

// Generator pushes one table sample per hardware cycle into the duty
// registers. OnCycleComplete must not be re-entered and nothing else may
// touch the generator while the cycle interrupt is live.
type Generator struct {
	table  Table
	reload uint8
	state  State

	out  DutyOutput
	mode ModeInput
	ack  CycleAck

	cycles uint32 // Handler invocations since reset
	skips  uint32 // Extra advances since reset
}

// NewGenerator creates a generator positioned at the start of the table
func NewGenerator(table Table, reload uint8, out DutyOutput, mode ModeInput, ack CycleAck) (*Generator, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	if reload == 0 {
		return nil, ErrZeroReload
	}

	g := &Generator{
		table:  table,
		reload: reload,
		out:    out,
		mode:   mode,
		ack:    ack,
	}
	g.Reset()
	return g, nil
}

// Reset restores the power-on state
func (g *Generator) Reset() {
	g.state = InitialState(g.table, g.reload)
	g.cycles = 0
	g.skips = 0
}

// InitialState returns the power-on state for a table
func InitialState(t Table, reload uint8) State {
	return State{
		Index:   0,
		Sample:  t[0],
		Counter: reload,
	}
}

// OnCycleComplete is the per-cycle handler. It writes the cached sample
// and its complement, requests the cycle-end commit, advances the phase
// and acknowledges the hardware. It never fails, blocks or allocates.
func (g *Generator) OnCycleComplete() {
	s := g.state.Sample
	g.out.SetPrimary(s)
	g.out.SetSecondary(^s)
	g.out.Commit()

	var skipped bool
	g.state, skipped = Step(g.table, g.state, g.reload, g.mode.LowFrequency())
	g.cycles++
	if skipped {
		g.skips++
	}

	g.ack.Acknowledge()
}

// Step is the pure phase transition behind OnCycleComplete.
//
// The index always advances by one. When low is false the correction
// counter counts down and, on reaching zero, the index advances once
// more and the counter reloads. The returned state caches the sample at
// the new index; skipped reports whether the extra advance happened.
func Step(t Table, s State, reload uint8, low bool) (next State, skipped bool) {
	n := len(t)

	idx := s.Index + 1
	if idx == n {
		idx = 0
	}

	counter := s.Counter
	if !low {
		counter--
		if counter == 0 {
			idx++
			if idx == n {
				idx = 0
			}
			counter = reload
			skipped = true
		}
	}

	return State{Index: idx, Sample: t[idx], Counter: counter}, skipped
}

// State returns a copy of the current generator state
func (g *Generator) State() State {
	return g.state
}

// Table returns the waveform table the generator walks
func (g *Generator) Table() Table {
	return g.table
}

// Reload returns the skip reload constant
func (g *Generator) Reload() uint8 {
	return g.reload
}

// Cycles returns the number of handler invocations since reset
func (g *Generator) Cycles() uint32 {
	return g.cycles
}

// Skips returns the number of dropped samples since reset
func (g *Generator) Skips() uint32 {
	return g.skips
}

// Snapshot reads the state and counters with interrupts masked, for
// callers outside the cycle handler such as a status loop.
func (g *Generator) Snapshot() (s State, cycles, skips uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return g.state, g.cycles, g.skips
}
