// Package sim runs the waveform generator against simulated hardware: a
// periodic cycle clock, double-buffered duty registers and a live
// frequency selector. It is the host-side stand-in for the PWM wrap
// interrupt on the target.
package sim

import (
	"context"
	"fmt"

	"inverter/core"
)

// ctxCheckInterval is how many cycles run between context checks
const ctxCheckInterval = 1024

// Config describes one simulated inverter
type Config struct {
	CycleHz    uint32
	Table      core.Table
	Reload     uint8
	InitialLow bool
	Switches   []Change
}

// Simulator wires the generator to simulated hardware
type Simulator struct {
	cfg   Config
	gen   *core.Generator
	regs  *Registers
	sw    *Switch
	sched *core.Scheduler
	clock *Clock

	trace *Trace
}

// New builds a simulator. The table must satisfy the complement symmetry.
func New(cfg Config) (*Simulator, error) {
	if cfg.CycleHz == 0 {
		return nil, fmt.Errorf("cycle rate must be positive")
	}
	if err := cfg.Table.Verify(); err != nil {
		return nil, fmt.Errorf("invalid waveform table: %w", err)
	}

	sw, err := NewSwitch(cfg.InitialLow, cfg.Switches)
	if err != nil {
		return nil, err
	}

	regs := NewRegisters()
	if _, err := regs.Configure(cfg.CycleHz); err != nil {
		return nil, err
	}

	gen, err := core.NewGenerator(cfg.Table, cfg.Reload, regs, sw, regs)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	s := &Simulator{
		cfg:   cfg,
		gen:   gen,
		regs:  regs,
		sw:    sw,
		sched: core.NewScheduler(),
	}
	s.clock = NewClock(s.sched, cfg.CycleHz, s.edge)
	return s, nil
}

// edge is one hardware cycle boundary: raise the flag, run the handler,
// then let the registers latch for the next cycle.
func (s *Simulator) edge(cycle uint64) {
	s.sw.At(cycle)
	s.regs.raise()

	skipsBefore := s.gen.Skips()
	low := s.sw.low

	s.gen.OnCycleComplete()
	s.regs.Latch()

	s.trace.Advanced++
	if s.gen.Skips() != skipsBefore {
		s.trace.Advanced++
		s.trace.Skips++
	}

	p, q := s.regs.Active()
	s.trace.Primary = append(s.trace.Primary, p)
	s.trace.Secondary = append(s.trace.Secondary, q)
	s.trace.Low = append(s.trace.Low, low)
}

// Run simulates the given number of cycles and returns their trace.
// Consecutive runs continue from where the previous one stopped.
func (s *Simulator) Run(ctx context.Context, cycles int) (*Trace, error) {
	s.trace = &Trace{
		CycleHz:     s.cfg.CycleHz,
		TableLength: s.cfg.Table.Len(),
		Primary:     make([]core.Sample, 0, cycles),
		Secondary:   make([]core.Sample, 0, cycles),
		Low:         make([]bool, 0, cycles),
	}

	s.clock.Start()
	defer s.clock.Stop()

	for i := 0; i < cycles; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return s.trace, err
			}
		}
		if !s.clock.Step() {
			return s.trace, fmt.Errorf("cycle clock stopped after %d cycles", i)
		}
	}
	return s.trace, nil
}

// Generator returns the simulated generator
func (s *Simulator) Generator() *core.Generator {
	return s.gen
}

// Registers returns the simulated duty registers
func (s *Simulator) Registers() *Registers {
	return s.regs
}

// Switch returns the simulated frequency selector
func (s *Simulator) Switch() *Switch {
	return s.sw
}

// Clock returns the simulated cycle clock
func (s *Simulator) Clock() *Clock {
	return s.clock
}
