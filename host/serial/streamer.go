package serial

import (
	"context"
	"fmt"
	"io"

	"inverter/host/sim"
	"inverter/protocol"
)

// streamChunk is how many bytes are batched per write
const streamChunk = 4096

// Streamer writes simulated duty pairs as protocol frames, one frame
// per cycle, so a DAC rig can replay the inverter drive.
type Streamer struct {
	w      io.Writer
	seq    uint8
	cycle  uint32
	buf    []byte
	frames int
}

// NewStreamer creates a streamer writing to w (usually a Port)
func NewStreamer(w io.Writer) *Streamer {
	return &Streamer{
		w:   w,
		buf: make([]byte, 0, streamChunk+protocol.MessageLengthMax),
	}
}

// WriteTrace streams every cycle of the trace. Cycle numbers continue
// across calls.
func (s *Streamer) WriteTrace(ctx context.Context, tr *sim.Trace) error {
	for i := range tr.Primary {
		s.buf = protocol.EncodeDutyFrame(s.buf, protocol.DutyFrame{
			Seq:       s.seq,
			Cycle:     s.cycle,
			Primary:   uint8(tr.Primary[i]),
			Secondary: uint8(tr.Secondary[i]),
		})
		s.seq = (s.seq + 1) & protocol.MessageSeqMask
		s.cycle++
		s.frames++

		if len(s.buf) >= streamChunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.flush(); err != nil {
				return err
			}
		}
	}
	return s.flush()
}

func (s *Streamer) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("failed to write duty frames: %w", err)
	}
	s.buf = s.buf[:0]
	return nil
}

// Frames returns the number of frames written
func (s *Streamer) Frames() int {
	return s.frames
}
