//go:build rp2040

package main

import (
	"machine"
)

// PinModeInput reads the 50/60 Hz selector switch. The pin is pulled up;
// closing the switch to ground selects the low frequency.
type PinModeInput struct {
	pin machine.Pin
}

// NewPinModeInput configures pin as a pulled-up input
func NewPinModeInput(pin machine.Pin) *PinModeInput {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &PinModeInput{pin: pin}
}

// LowFrequency implements core.ModeInput. It is a single GPIO read.
func (m *PinModeInput) LowFrequency() bool {
	return !m.pin.Get()
}
