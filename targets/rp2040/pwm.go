//go:build rp2040

package main

import (
	"device/rp"
	"machine"

	"inverter/core"
)

// dutyMax is the largest duty value written by the generator
const dutyMax = 255

// pwmPeripheral is an interface for PWM hardware peripherals
// This abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// RP2040DutyDriver implements core.DutyDriver on one RP2040 PWM slice.
// Channel A carries the primary phase, channel B the secondary.
//
// The slice compare register is double-buffered and only takes effect
// when the counter wraps, so both halves always switch together at the
// cycle boundary and Commit has nothing to do.
type RP2040DutyDriver struct {
	pwm   pwmPeripheral
	slice uint8

	pinA, pinB machine.Pin
	chA, chB   uint8

	// Duty sample to compare value, precomputed so the wrap handler
	// does no division
	levels [dutyMax + 1]uint32
}

// NewRP2040DutyDriver creates a driver for the slice that owns pinA/pinB
func NewRP2040DutyDriver(pwm pwmPeripheral, slice uint8, pinA, pinB machine.Pin) *RP2040DutyDriver {
	return &RP2040DutyDriver{
		pwm:   pwm,
		slice: slice,
		pinA:  pinA,
		pinB:  pinB,
	}
}

// Configure sets the slice period to one duty cycle and enables its
// wrap interrupt. Returns the achieved cycle rate.
func (d *RP2040DutyDriver) Configure(cycleHz uint32) (uint32, error) {
	// PWMConfig.Period is in nanoseconds
	period := uint64(1000000000) / uint64(cycleHz)

	err := d.pwm.Configure(machine.PWMConfig{
		Period: period,
	})
	if err != nil {
		return 0, err
	}

	d.chA, err = d.pwm.Channel(d.pinA)
	if err != nil {
		return 0, err
	}
	d.chB, err = d.pwm.Channel(d.pinB)
	if err != nil {
		return 0, err
	}

	// Scale 0-255 to 0-Top() once
	top := d.pwm.Top()
	for v := range d.levels {
		d.levels[v] = (uint32(v) * top) / dutyMax
	}

	// Start at zero differential
	d.pwm.Set(d.chA, d.levels[core.MidScale])
	d.pwm.Set(d.chB, d.levels[^core.MidScale])

	// Clear any stale wrap flag, then enable the interrupt for this slice
	rp.PWM.INTR.Set(1 << d.slice)
	rp.PWM.INTE.SetBits(1 << d.slice)

	return uint32(uint64(1000000000) / period), nil
}

// SetPrimary writes the channel A compare value
func (d *RP2040DutyDriver) SetPrimary(v core.Sample) {
	d.pwm.Set(d.chA, d.levels[v])
}

// SetSecondary writes the channel B compare value
func (d *RP2040DutyDriver) SetSecondary(v core.Sample) {
	d.pwm.Set(d.chB, d.levels[v])
}

// Commit is a no-op: the hardware latches CC at wrap
func (d *RP2040DutyDriver) Commit() {}

// Acknowledge clears the slice's wrap interrupt flag
func (d *RP2040DutyDriver) Acknowledge() {
	rp.PWM.INTR.Set(1 << d.slice)
}

// Disable masks the wrap interrupt and parks both outputs at zero
// differential
func (d *RP2040DutyDriver) Disable() {
	rp.PWM.INTE.ClearBits(1 << d.slice)
	d.pwm.Set(d.chA, d.levels[core.MidScale])
	d.pwm.Set(d.chB, d.levels[^core.MidScale])
}
