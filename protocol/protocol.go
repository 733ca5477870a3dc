// Package protocol implements the duty-frame wire format used to stream
// inverter register values to a hardware-in-the-loop rig. Frames reuse
// the Klipper message block layout: length, sequence, payload, CRC16
// and a trailing sync byte.
package protocol

// Message block constants
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
	MessageSeqMask     = 0x0F
)
