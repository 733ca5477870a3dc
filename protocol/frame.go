package protocol

import "errors"

var (
	ErrShortFrame = errors.New("incomplete duty frame")
	ErrBadFrame   = errors.New("malformed duty frame")
	ErrBadCRC     = errors.New("duty frame CRC mismatch")
)

// DutyFrame is one cycle's register pair as carried on the wire
type DutyFrame struct {
	Seq       uint8  // 4-bit rolling sequence
	Cycle     uint32 // Cycle number the values apply to
	Primary   uint8
	Secondary uint8
}

// dutyPayloadMin is the smallest payload: 1-byte VLQ cycle + two duties
const dutyPayloadMin = 3

// EncodeDutyFrame appends one framed duty pair to dst:
//
//	len | 0x10|seq | vlq(cycle) primary secondary | crc_hi crc_lo | 0x7E
func EncodeDutyFrame(dst []byte, f DutyFrame) []byte {
	start := len(dst)
	dst = append(dst, 0, MessageDest|(f.Seq&MessageSeqMask))
	dst = AppendVLQUint(dst, f.Cycle)
	dst = append(dst, f.Primary, f.Secondary)

	msgLen := len(dst) - start + MessageTrailerSize
	dst[start+MessagePositionLen] = byte(msgLen)

	crc := CRC16(dst[start:])
	return append(dst, byte(crc>>8), byte(crc), MessageValueSync)
}

// DecodeDutyFrame decodes the first frame in data. It returns the frame
// and how many bytes were consumed.
//
// On ErrShortFrame the caller should wait for more data; only leading
// sync bytes are consumed. On ErrBadFrame or ErrBadCRC the consumed count
// skips to just past the next sync byte so decoding can resynchronize.
func DecodeDutyFrame(data []byte) (DutyFrame, int, error) {
	skip := 0
	for skip < len(data) && data[skip] == MessageValueSync {
		skip++
	}
	data = data[skip:]

	if len(data) < MessageLengthMin {
		return DutyFrame{}, skip, ErrShortFrame
	}

	msgLen := int(data[MessagePositionLen])
	seq := data[MessagePositionSeq]
	if msgLen < MessageLengthMin+dutyPayloadMin || msgLen > MessageLengthMax ||
		seq&^MessageSeqMask != MessageDest {
		return DutyFrame{}, skip + resync(data), ErrBadFrame
	}

	if len(data) < msgLen {
		return DutyFrame{}, skip, ErrShortFrame
	}

	if data[msgLen-MessageTrailerSync] != MessageValueSync {
		return DutyFrame{}, skip + resync(data), ErrBadFrame
	}

	frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
		uint16(data[msgLen-MessageTrailerCRC+1])
	if frameCRC != CRC16(data[:msgLen-MessageTrailerCRC]) {
		return DutyFrame{}, skip + resync(data), ErrBadCRC
	}

	payload := data[MessageHeaderSize : msgLen-MessageTrailerSize]
	cycle, err := DecodeVLQUint(&payload)
	if err != nil || len(payload) != 2 {
		return DutyFrame{}, skip + msgLen, ErrBadFrame
	}

	return DutyFrame{
		Seq:       seq & MessageSeqMask,
		Cycle:     cycle,
		Primary:   payload[0],
		Secondary: payload[1],
	}, skip + msgLen, nil
}

// DecodeDutyFrames decodes every complete frame in data, skipping
// corrupt ones. It returns the frames, the number of bytes consumed and
// the number of frames dropped.
func DecodeDutyFrames(data []byte) ([]DutyFrame, int, int) {
	var frames []DutyFrame
	consumed, dropped := 0, 0

	for consumed < len(data) {
		f, n, err := DecodeDutyFrame(data[consumed:])
		consumed += n
		if errors.Is(err, ErrShortFrame) {
			break
		}
		if err != nil {
			dropped++
			continue
		}
		frames = append(frames, f)
	}
	return frames, consumed, dropped
}

// resync returns the offset just past the next sync byte after the start
// of data, or len(data) if there is none.
func resync(data []byte) int {
	for i := 1; i < len(data); i++ {
		if data[i] == MessageValueSync {
			return i + 1
		}
	}
	return len(data)
}
