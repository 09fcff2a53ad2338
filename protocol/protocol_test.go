package protocol

import (
	"bytes"
	"testing"
)

func encodePayload(encode func(OutputBuffer)) []byte {
	out := NewScratchOutput()
	encode(out)
	return out.Result()
}

func TestFrameRoundTrip(t *testing.T) {
	payload := encodePayload(func(out OutputBuffer) {
		EncodeWriteReg(out, 0xFE20001C, 1<<21)
	})

	out := NewScratchOutput()
	EncodeFrame(out, 3, payload)
	frame := out.Result()

	if frame[len(frame)-1] != SyncByte {
		t.Fatalf("frame does not end in sync byte: % X", frame)
	}
	if int(frame[0]) != len(frame) {
		t.Fatalf("length byte %d, frame is %d bytes", frame[0], len(frame))
	}

	in := NewSliceInputBuffer(frame)
	got, ok := DecodeFrame(in)
	if !ok {
		t.Fatal("DecodeFrame did not find the frame")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = % X, want % X", got, payload)
	}
	if in.Available() != 0 {
		t.Errorf("%d bytes left after decode", in.Available())
	}
}

func TestDecodeFrameSkipsGarbage(t *testing.T) {
	payload := encodePayload(func(out OutputBuffer) {
		EncodeReadReg(out, 0xFE200034)
	})

	out := NewScratchOutput()
	out.Output([]byte{0xFF, 0x00, 0x42, SyncByte})
	EncodeFrame(out, 0, payload)

	in := NewSliceInputBuffer(out.Result())
	got, ok := DecodeFrame(in)
	if !ok {
		t.Fatal("DecodeFrame did not recover after garbage")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = % X, want % X", got, payload)
	}
}

func TestDecodeFramePartial(t *testing.T) {
	payload := encodePayload(func(out OutputBuffer) {
		EncodeRegVal(out, 0xFE200034, 0xA5A5)
	})

	out := NewScratchOutput()
	EncodeFrame(out, 1, payload)
	frame := out.Result()

	fifo := NewFifoBuffer(256)
	fifo.Write(frame[:len(frame)/2])

	if _, ok := DecodeFrame(fifo); ok {
		t.Fatal("DecodeFrame returned a frame from a partial buffer")
	}

	fifo.Write(frame[len(frame)/2:])
	got, ok := DecodeFrame(fifo)
	if !ok {
		t.Fatal("DecodeFrame did not find the completed frame")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = % X, want % X", got, payload)
	}
}

func TestDecodeFrameRejectsCorruptCRC(t *testing.T) {
	payload := encodePayload(EncodeAck)

	out := NewScratchOutput()
	EncodeFrame(out, 2, payload)
	frame := append([]byte(nil), out.Result()...)
	frame[len(frame)-3] ^= 0xFF // flip crc high byte

	good := NewScratchOutput()
	EncodeFrame(good, 3, payload)

	in := NewSliceInputBuffer(append(frame, good.Result()...))
	got, ok := DecodeFrame(in)
	if !ok {
		t.Fatal("DecodeFrame did not skip the corrupt frame")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = % X, want % X", got, payload)
	}
}

func TestCommandPayloads(t *testing.T) {
	payload := encodePayload(func(out OutputBuffer) {
		EncodeWriteReg(out, 0xFE200000, 0b001<<3)
	})

	data := payload
	cmd, err := DecodeVLQUint(&data)
	if err != nil || cmd != CmdWriteReg {
		t.Fatalf("command = %d, err = %v", cmd, err)
	}
	addr, err := DecodeVLQUint(&data)
	if err != nil || addr != 0xFE200000 {
		t.Fatalf("addr = 0x%X, err = %v", addr, err)
	}
	val, err := DecodeVLQUint(&data)
	if err != nil || val != 0b001<<3 {
		t.Fatalf("val = %#x, err = %v", val, err)
	}
	if len(data) != 0 {
		t.Errorf("%d trailing bytes in payload", len(data))
	}
}
