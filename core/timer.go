package core

// TimerFreq is the tick rate of the simulated cycle clock
const (
	TimerFreq = 12000000 // 12MHz, matches the RP2040 reference clock
)

// TicksPerCycle returns the nominal (truncated) number of timer ticks in
// one PWM cycle at cycleHz.
func TicksPerCycle(cycleHz uint32) uint64 {
	if cycleHz == 0 {
		return 0
	}
	return TimerFreq / uint64(cycleHz)
}

// CycleWake returns the tick at which the n-th cycle after start ends.
// It is computed from n directly so fractional tick periods do not
// accumulate drift.
func CycleWake(start uint64, n uint64, cycleHz uint32) uint64 {
	if cycleHz == 0 {
		return start
	}
	return start + (n*TimerFreq)/uint64(cycleHz)
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint64) uint64 {
	return (us * TimerFreq) / 1000000
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint64) uint64 {
	return (ticks * 1000000) / TimerFreq
}
