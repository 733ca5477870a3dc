package sim

import "inverter/core"

// Registers is a DutyDriver test double modelling double-buffered
// compare registers: writes land in a pending pair that is only moved to
// the active pair when a commit was requested and the cycle boundary is
// reached.
type Registers struct {
	cycleHz uint32

	pending   [2]core.Sample
	written   uint8 // bit 0: primary, bit 1: secondary
	commitReq bool
	active    [2]core.Sample

	irq bool // cycle-complete flag raised by the clock

	commits int
	acks    int
	latches int
	torn    int
	missed  int
}

// NewRegisters returns registers idling at mid-scale
func NewRegisters() *Registers {
	return &Registers{
		active:  [2]core.Sample{core.MidScale, core.MidScale},
		pending: [2]core.Sample{core.MidScale, core.MidScale},
	}
}

// Configure implements core.DutyDriver. The simulated carrier hits any
// rate exactly.
func (r *Registers) Configure(cycleHz uint32) (uint32, error) {
	r.cycleHz = cycleHz
	return cycleHz, nil
}

// SetPrimary implements core.DutyOutput
func (r *Registers) SetPrimary(v core.Sample) {
	r.pending[0] = v
	r.written |= 1
}

// SetSecondary implements core.DutyOutput
func (r *Registers) SetSecondary(v core.Sample) {
	r.pending[1] = v
	r.written |= 2
}

// Commit implements core.DutyOutput
func (r *Registers) Commit() {
	r.commitReq = true
	r.commits++
}

// Acknowledge implements core.CycleAck
func (r *Registers) Acknowledge() {
	r.irq = false
	r.acks++
}

// raise sets the cycle-complete flag before the handler runs
func (r *Registers) raise() {
	if r.irq {
		// Previous cycle was never acknowledged
		r.missed++
	}
	r.irq = true
}

// Latch applies a committed pending pair at the cycle boundary.
// A commit with only one half written is counted as torn.
func (r *Registers) Latch() {
	if r.commitReq {
		if r.written != 3 {
			r.torn++
		}
		r.active = r.pending
		r.latches++
	}
	r.commitReq = false
	r.written = 0
}

// Active returns the duty pair driving the bridge this cycle
func (r *Registers) Active() (primary, secondary core.Sample) {
	return r.active[0], r.active[1]
}

// Stats reports commit, acknowledge, latch, torn and missed-ack counts
func (r *Registers) Stats() RegisterStats {
	return RegisterStats{
		Commits:      r.commits,
		Acks:         r.acks,
		Latches:      r.latches,
		Torn:         r.torn,
		MissedAcks:   r.missed,
		ConfiguredHz: r.cycleHz,
	}
}

// RegisterStats is a snapshot of register activity
type RegisterStats struct {
	Commits      int
	Acks         int
	Latches      int
	Torn         int
	MissedAcks   int
	ConfiguredHz uint32
}
