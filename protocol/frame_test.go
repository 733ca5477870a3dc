package protocol

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDutyFrameRoundTrip(t *testing.T) {
	testCases := []DutyFrame{
		{Seq: 0, Cycle: 0, Primary: 128, Secondary: 127},
		{Seq: 15, Cycle: 385, Primary: 255, Secondary: 0},
		{Seq: 7, Cycle: 1 << 30, Primary: MessageValueSync, Secondary: ^uint8(MessageValueSync)},
	}

	for _, want := range testCases {
		data := EncodeDutyFrame(nil, want)

		if int(data[MessagePositionLen]) != len(data) {
			t.Errorf("Length byte %d does not match frame size %d", data[MessagePositionLen], len(data))
		}
		if data[len(data)-1] != MessageValueSync {
			t.Errorf("Frame does not end with sync byte: %v", data)
		}

		got, n, err := DecodeDutyFrame(data)
		if err != nil {
			t.Errorf("DecodeDutyFrame(%v) failed: %v", data, err)
			continue
		}
		if n != len(data) {
			t.Errorf("Expected %d bytes consumed, got %d", len(data), n)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Frame mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDutyFrameSeqMasked(t *testing.T) {
	data := EncodeDutyFrame(nil, DutyFrame{Seq: 0x13, Cycle: 1, Primary: 1, Secondary: 254})
	got, _, err := DecodeDutyFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Seq != 3 {
		t.Errorf("Expected sequence masked to 3, got %d", got.Seq)
	}
}

func TestDutyFrameShort(t *testing.T) {
	data := EncodeDutyFrame(nil, DutyFrame{Cycle: 2000, Primary: 200, Secondary: 55})

	for cut := 0; cut < len(data); cut++ {
		_, n, err := DecodeDutyFrame(data[:cut])
		if !errors.Is(err, ErrShortFrame) {
			t.Errorf("cut %d: expected ErrShortFrame, got %v", cut, err)
		}
		if n != 0 {
			t.Errorf("cut %d: expected nothing consumed, got %d", cut, n)
		}
	}
}

func TestDutyFrameBadCRC(t *testing.T) {
	data := EncodeDutyFrame(nil, DutyFrame{Cycle: 10, Primary: 10, Secondary: 245})
	data[MessageHeaderSize+1] ^= 0x01

	_, n, err := DecodeDutyFrame(data)
	if !errors.Is(err, ErrBadCRC) {
		t.Errorf("Expected ErrBadCRC, got %v", err)
	}
	if n != len(data) {
		t.Errorf("Expected resync past trailing sync (%d bytes), got %d", len(data), n)
	}
}

func TestDecodeDutyFramesResync(t *testing.T) {
	var stream []byte
	stream = append(stream, 0x01, 0x02) // line noise
	stream = append(stream, MessageValueSync)
	stream = EncodeDutyFrame(stream, DutyFrame{Seq: 1, Cycle: 1, Primary: 130, Secondary: 125})

	bad := EncodeDutyFrame(nil, DutyFrame{Seq: 2, Cycle: 2, Primary: 132, Secondary: 123})
	bad[len(bad)-3] ^= 0xFF // corrupt CRC
	stream = append(stream, bad...)

	stream = EncodeDutyFrame(stream, DutyFrame{Seq: 3, Cycle: 3, Primary: 134, Secondary: 121})
	partial := EncodeDutyFrame(nil, DutyFrame{Seq: 4, Cycle: 4})
	stream = append(stream, partial[:4]...)

	frames, consumed, dropped := DecodeDutyFrames(stream)

	want := []DutyFrame{
		{Seq: 1, Cycle: 1, Primary: 130, Secondary: 125},
		{Seq: 3, Cycle: 3, Primary: 134, Secondary: 121},
	}
	if diff := cmp.Diff(want, frames); diff != "" {
		t.Errorf("Decoded frames mismatch (-want +got):\n%s", diff)
	}
	if dropped != 2 {
		t.Errorf("Expected 2 dropped (noise + bad CRC), got %d", dropped)
	}
	if consumed != len(stream)-4 {
		t.Errorf("Expected partial frame left unconsumed, consumed %d of %d", consumed, len(stream))
	}
}
