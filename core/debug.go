package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, stderr, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Never call it from the cycle handler.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// StatusLine formats generator state for debug output
func StatusLine(s State, cycles, skips uint32) string {
	buf := make([]byte, 0, 64)
	buf = append(buf, "[GEN] index="...)
	buf = appendUint(buf, uint32(s.Index))
	buf = append(buf, " sample="...)
	buf = appendUint(buf, uint32(s.Sample))
	buf = append(buf, " counter="...)
	buf = appendUint(buf, uint32(s.Counter))
	buf = append(buf, " cycles="...)
	buf = appendUint(buf, cycles)
	buf = append(buf, " skips="...)
	buf = appendUint(buf, skips)
	return string(buf)
}
