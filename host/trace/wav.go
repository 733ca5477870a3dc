// Package trace exports simulated inverter output as PCM audio so it can
// be inspected in a waveform viewer or compared against a scope capture.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"inverter/host/sim"
)

const (
	bitDepth    = 16
	pcmFormat   = 1   // WAV format tag for integer PCM
	levelScale  = 128 // differential -255..255 maps to about +-32640
	numChannels = 1
)

var ErrInvalidWAV = errors.New("not a valid WAV file")

// WriteWAV writes the differential bridge drive (primary - secondary) of
// a trace as 16-bit mono PCM, one sample per PWM cycle.
func WriteWAV(w io.WriteSeeker, tr *sim.Trace) error {
	if tr.CycleHz == 0 {
		return fmt.Errorf("wav: trace has no cycle rate")
	}

	diff := tr.Differential()
	data := make([]int, len(diff))
	for i, d := range diff {
		data[i] = d * levelScale
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  int(tr.CycleHz),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, int(tr.CycleHz), bitDepth, numChannels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

// ReadWAV decodes a file written by WriteWAV back into differential
// levels and returns them with the sample (cycle) rate.
func ReadWAV(r io.ReadSeeker) ([]int, int, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, 0, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels != numChannels {
		return nil, 0, fmt.Errorf("wav: expected mono data")
	}

	levels := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		levels[i] = v / levelScale
	}
	return levels, int(dec.SampleRate), nil
}
