package sim

import "inverter/core"

// Trace is the per-cycle record of a simulation run
type Trace struct {
	CycleHz     uint32
	TableLength int

	Primary   []core.Sample // Active primary duty per cycle
	Secondary []core.Sample // Active secondary duty per cycle
	Low       []bool        // Mode input level seen by the handler

	Advanced int // Table positions advanced in total
	Skips    int // Extra advances
}

// Cycles returns the number of recorded cycles
func (t *Trace) Cycles() int {
	return len(t.Primary)
}

// Seconds returns the simulated time covered by the trace
func (t *Trace) Seconds() float64 {
	if t.CycleHz == 0 {
		return 0
	}
	return float64(t.Cycles()) / float64(t.CycleHz)
}

// Traversals returns how many full table periods were walked
func (t *Trace) Traversals() float64 {
	if t.TableLength == 0 {
		return 0
	}
	return float64(t.Advanced) / float64(t.TableLength)
}

// EffectiveFrequency is the table traversal rate over the whole trace
func (t *Trace) EffectiveFrequency() float64 {
	secs := t.Seconds()
	if secs == 0 {
		return 0
	}
	return t.Traversals() / secs
}

// Differential returns primary minus secondary for each cycle, the
// signed drive across the bridge.
func (t *Trace) Differential() []int {
	d := make([]int, len(t.Primary))
	for i := range t.Primary {
		d[i] = int(t.Primary[i]) - int(t.Secondary[i])
	}
	return d
}

// ZeroCrossingFrequency measures the output frequency from rising zero
// crossings of the differential signal, between the first and last
// crossing. Returns 0 with fewer than two crossings.
func (t *Trace) ZeroCrossingFrequency() float64 {
	d := t.Differential()
	first, last, count := -1, -1, 0
	for i := 1; i < len(d); i++ {
		if d[i-1] < 0 && d[i] >= 0 {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}
	if count < 2 || t.CycleHz == 0 {
		return 0
	}
	span := float64(last-first) / float64(t.CycleHz)
	return float64(count-1) / span
}

// ComplementViolations counts cycles where secondary != 255 - primary
func (t *Trace) ComplementViolations() int {
	n := 0
	for i := range t.Primary {
		if int(t.Primary[i])+int(t.Secondary[i]) != 255 {
			n++
		}
	}
	return n
}
