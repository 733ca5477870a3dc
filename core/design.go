package core

import (
	"fmt"
	"math"
)

// Reference design parameters
const (
	ReferenceCycleHz = 19300 // PWM cycles per second
	ReferenceLowHz   = 50
	ReferenceHighHz  = 60
	ReferenceReload  = 5
)

// tableTolerance is the relative error allowed between the requested low
// frequency and the one an integer table length actually produces.
const tableTolerance = 0.005

// TableLength returns the even table length whose traversal at cycleHz
// produces lowHz.
func TableLength(cycleHz, lowHz float64) (int, error) {
	if cycleHz <= 0 || lowHz <= 0 {
		return 0, fmt.Errorf("frequencies must be positive: cycle=%g low=%g", cycleHz, lowHz)
	}

	n := int(math.Round(cycleHz / lowHz))
	if n%2 != 0 {
		// Round toward the exact ratio
		if float64(n) < cycleHz/lowHz {
			n++
		} else {
			n--
		}
	}
	if n < 4 {
		return 0, fmt.Errorf("cycle rate %g Hz too low for %g Hz: %w", cycleHz, lowHz, ErrShortTable)
	}

	actual := cycleHz / float64(n)
	if math.Abs(actual-lowHz)/lowHz > tableTolerance {
		return 0, fmt.Errorf("no even table length gives %g Hz at %g Hz (closest %d -> %.3f Hz)",
			lowHz, cycleHz, n, actual)
	}
	return n, nil
}

// SkipReload returns the number of cycles between dropped samples that
// raises a table traversal from lowHz to highHz.
func SkipReload(length int, lowHz, highHz float64) (uint8, error) {
	if length <= 0 {
		return 0, ErrEmptyTable
	}
	if lowHz <= 0 || highHz <= lowHz {
		return 0, fmt.Errorf("high frequency %g must exceed low frequency %g", highHz, lowHz)
	}

	l := float64(length)
	every := math.Round(l / (l*highHz/lowHz - l))
	if every < 1 || every > 255 {
		return 0, fmt.Errorf("skip interval %g out of range for %g/%g Hz", every, lowHz, highHz)
	}
	return uint8(every), nil
}

// EffectiveFrequency is the output frequency when a table of the given
// length is walked at cycleHz.
func EffectiveFrequency(cycleHz float64, length int, reload uint8, low bool) float64 {
	if length == 0 {
		return 0
	}
	f := cycleHz / float64(length)
	if low || reload == 0 {
		return f
	}
	// One extra advance every reload cycles
	return f * (1 + 1/float64(reload))
}

// CycleRate returns the carrier cycle rate a table length needs for lowHz
func CycleRate(length int, lowHz float64) float64 {
	return float64(length) * lowHz
}
