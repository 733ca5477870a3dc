//go:build rp2040

package main

import (
	"device/rp"
	"machine"
	"runtime/interrupt"
	"strconv"
	"time"

	"inverter/core"
)

// Board wiring
const (
	pinPrimary   = machine.GPIO0 // PWM slice 0 channel A, high-side pair 1
	pinSecondary = machine.GPIO1 // PWM slice 0 channel B, high-side pair 2
	pinMode      = machine.GPIO2 // 50/60 Hz selector, low = 50 Hz
	dutySlice    = 0

	watchdogMillis = 500
	statusInterval = 2 * time.Second
)

// generator is only touched by pwmWrap once the interrupt is enabled
var generator *core.Generator

func main() {
	// Clear any watchdog state left over from before reset
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitDebugUART()

	driver := NewRP2040DutyDriver(machine.PWM0, dutySlice, pinPrimary, pinSecondary)
	core.SetDutyDriver(driver)

	actual, err := core.MustDuty().Configure(core.ReferenceCycleHz)
	if err != nil {
		halt("PWM configure failed: " + err.Error())
	}
	core.DebugPrintln("[INV] cycle rate " + strconv.FormatUint(uint64(actual), 10) + " Hz")

	mode := NewPinModeInput(pinMode)

	generator, err = core.NewGenerator(core.Reference, core.ReferenceReload, driver, mode, driver)
	if err != nil {
		halt("generator: " + err.Error())
	}

	// Start the cycle handler
	intr := interrupt.New(rp.IRQ_PWM_IRQ_WRAP, pwmWrap)
	intr.Enable()

	// The watchdog is the only supervisor: if the wrap handler overruns
	// its cycle budget the main loop starves and the board resets.
	err = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: watchdogMillis})
	if err == nil {
		err = machine.Watchdog.Start()
	}
	if err != nil {
		core.DebugPrintln("[INV] watchdog unavailable: " + err.Error())
	}

	lastStatus := time.Now()
	for {
		machine.Watchdog.Update()

		if time.Since(lastStatus) >= statusInterval {
			s, cycles, skips := generator.Snapshot()
			core.DebugPrintln(core.StatusLine(s, cycles, skips))
			lastStatus = time.Now()
		}

		time.Sleep(10 * time.Millisecond)
	}
}

// pwmWrap runs once per PWM cycle when slice 0 wraps
func pwmWrap(interrupt.Interrupt) {
	generator.OnCycleComplete()
}

// halt parks the bridge and stops
func halt(msg string) {
	core.DebugPrintln("[INV] " + msg)
	if d, ok := core.MustDuty().(*RP2040DutyDriver); ok {
		d.Disable()
	}
	for {
		time.Sleep(time.Second)
	}
}
