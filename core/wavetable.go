// Waveform table
// One period of the output waveform as 8-bit samples biased around 128.
package core

import (
	"errors"
	"fmt"
	"math"
)

//go:generate go run ../host/cmd/gentable -o sinetable.go

// Sample is a quantized amplitude. 128 is the zero crossing of the
// differential output.
type Sample uint8

// MidScale is the sample value for zero output differential
const MidScale Sample = 128

// ReferenceLength is the table length of the reference design
const ReferenceLength = 386

var (
	ErrOddLength  = errors.New("table length must be even")
	ErrShortTable = errors.New("table length must be at least 4")
)

// Table holds one full period of samples. It is never modified after
// construction and is shared read-only with the generator.
type Table []Sample

// SampleAt returns the sample at phase position i.
// i must be in [0, Len()); callers wrap.
func (t Table) SampleAt(i int) Sample {
	return t[i]
}

// Len returns the number of phase positions in one period
func (t Table) Len() int {
	return len(t)
}

// Half returns the phase offset of the complementary half period
func (t Table) Half() int {
	return len(t) / 2
}

// Verify checks that every sample and its phase complement sum to 255,
// which lets the secondary register be derived with a single complement.
func (t Table) Verify() error {
	if len(t) < 4 {
		return ErrShortTable
	}
	if len(t)%2 != 0 {
		return ErrOddLength
	}

	half := t.Half()
	for i := 0; i < half; i++ {
		if uint16(t[i])+uint16(t[i+half]) != 255 {
			return fmt.Errorf("samples %d and %d are not complementary: %d + %d != 255",
				i, i+half, t[i], t[i+half])
		}
	}
	return nil
}

// Sine builds a sine table of the given even length.
//
// The first half is rounded from 127.5 + 127.5*sin(phase) with the zero
// crossing pinned to MidScale. The second half is the bitwise complement
// of the first, so the table is complementary by construction.
func Sine(length int) (Table, error) {
	if length < 4 {
		return nil, ErrShortTable
	}
	if length%2 != 0 {
		return nil, ErrOddLength
	}

	t := make(Table, length)
	half := length / 2
	t[0] = MidScale
	for i := 1; i < half; i++ {
		phase := 2 * math.Pi * float64(i) / float64(length)
		t[i] = Sample(math.Round(127.5 + 127.5*math.Sin(phase)))
	}
	for i := 0; i < half; i++ {
		t[i+half] = ^t[i]
	}
	return t, nil
}
