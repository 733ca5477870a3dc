//go:build rp2040

package main

import (
	"machine"

	"inverter/core"
)

var debugUART *machine.UART

// InitDebugUART initializes UART1 on GPIO4 (TX) and GPIO5 (RX) and routes
// core debug output to it. GPIO0/1 are taken by the bridge PWM.
// Baud rate: 115200
func InitDebugUART() {
	debugUART = machine.UART1

	err := debugUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO4, // UART1 TX
		RX:       machine.GPIO5, // UART1 RX
	})
	if err != nil {
		return
	}

	core.SetDebugWriter(func(s string) {
		debugUART.Write([]byte(s))
		debugUART.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)

	core.DebugPrintln("=== RP2040 Inverter Debug UART ===")
}
