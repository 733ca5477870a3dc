package core

// DutyOutput is the pair of complementary duty registers driving the
// two halves of the H-bridge.
type DutyOutput interface {
	// SetPrimary writes the duty of the primary phase
	SetPrimary(value Sample)

	// SetSecondary writes the duty of the secondary phase
	SetSecondary(value Sample)

	// Commit requests that both written values take effect together
	// at the end of the current hardware cycle, never mid-cycle.
	Commit()
}

// CycleAck clears the hardware cycle-complete signal
type CycleAck interface {
	Acknowledge()
}

// ModeInput selects between the two supported output frequencies.
// It is sampled once per cycle and never latched.
type ModeInput interface {
	// LowFrequency reports whether the lower output frequency is selected
	LowFrequency() bool
}

// ModeFunc adapts a plain function to ModeInput
type ModeFunc func() bool

// LowFrequency implements ModeInput
func (f ModeFunc) LowFrequency() bool {
	return f()
}

// DutyDriver is the abstract duty-output interface that core code uses.
// Platform-specific implementations handle the actual PWM hardware.
type DutyDriver interface {
	DutyOutput
	CycleAck

	// Configure sets up the carrier so that one duty cycle completes
	// cycleHz times per second. Returns the achieved cycle rate
	// (may differ slightly because of hardware divider constraints).
	Configure(cycleHz uint32) (uint32, error)
}

// Global singleton used by core code.
var dutyDriver DutyDriver

// SetDutyDriver is called by target-specific code to register its driver.
func SetDutyDriver(d DutyDriver) {
	dutyDriver = d
}

// MustDuty returns the configured driver or panics if missing.
func MustDuty() DutyDriver {
	if dutyDriver == nil {
		panic("duty driver not configured")
	}
	return dutyDriver
}
