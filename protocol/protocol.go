// Package protocol implements the framed register-access protocol spoken
// between a host and a board-side monitor. A frame carries one command:
//
//	[length] [dest|seq] [payload: VLQ command + args] [crc16 hi lo] [sync]
//
// The payload encodes a command identifier followed by its arguments, all
// as VLQ integers. The framing (length prefix, sequence nibble, CRC16,
// trailing 0x7E sync byte) lets either side resynchronize after line noise
// by scanning for the sync byte.
package protocol

// Frame layout constants.
const (
	FrameHeaderSize  = 2 // length byte + dest/seq byte
	FrameTrailerSize = 3 // crc16 (2) + sync (1)
	FrameLengthMin   = FrameHeaderSize + FrameTrailerSize
	FrameLengthMax   = 64

	SyncByte  = 0x7E
	FrameDest = 0x10
	SeqMask   = 0x0F
)

// Command identifiers. Requests flow host to monitor; responses flow back.
const (
	CmdReadReg  uint32 = 1 // args: addr; answered by RspRegVal
	CmdWriteReg uint32 = 2 // args: addr, value; answered by RspAck
	RspRegVal   uint32 = 3 // args: addr, value
	RspAck      uint32 = 4 // no args
)

// EncodeFrame appends one complete frame wrapping payload to output. The
// payload must fit FrameLengthMax minus the frame overhead.
func EncodeFrame(output OutputBuffer, seq uint8, payload []byte) {
	start := output.CurPosition()
	frameLen := len(payload) + FrameHeaderSize + FrameTrailerSize
	output.Output([]byte{byte(frameLen), FrameDest | seq&SeqMask})
	output.Output(payload)
	crc := CRC16(output.DataSince(start))
	output.Output([]byte{byte(crc >> 8), byte(crc), SyncByte})
}

// DecodeFrame extracts the next complete, valid frame from input and
// returns its payload. It pops everything it consumed, including garbage
// skipped while resynchronizing. ok is false when no complete frame is
// buffered yet; call again once more bytes arrive.
func DecodeFrame(input InputBuffer) (payload []byte, ok bool) {
	for {
		data := input.Data()

		// Skip leading sync bytes and anything before them.
		skip := 0
		for skip < len(data) && data[skip] == SyncByte {
			skip++
		}
		if skip > 0 {
			input.Pop(skip)
			data = data[skip:]
		}

		if len(data) < FrameLengthMin {
			return nil, false
		}

		frameLen := int(data[0])
		if frameLen < FrameLengthMin || frameLen > FrameLengthMax {
			input.Pop(1)
			continue
		}
		if data[1]&^byte(SeqMask) != FrameDest {
			input.Pop(1)
			continue
		}
		if len(data) < frameLen {
			return nil, false
		}
		if data[frameLen-1] != SyncByte {
			input.Pop(1)
			continue
		}

		frameCRC := uint16(data[frameLen-3])<<8 | uint16(data[frameLen-2])
		if frameCRC != CRC16(data[:frameLen-3]) {
			input.Pop(1)
			continue
		}

		payload = append([]byte(nil), data[FrameHeaderSize:frameLen-FrameTrailerSize]...)
		input.Pop(frameLen)
		return payload, true
	}
}

// EncodeReadReg appends a read-register request payload.
func EncodeReadReg(output OutputBuffer, addr uint32) {
	EncodeVLQUint(output, CmdReadReg)
	EncodeVLQUint(output, addr)
}

// EncodeWriteReg appends a write-register request payload.
func EncodeWriteReg(output OutputBuffer, addr, val uint32) {
	EncodeVLQUint(output, CmdWriteReg)
	EncodeVLQUint(output, addr)
	EncodeVLQUint(output, val)
}

// EncodeRegVal appends a register-value response payload.
func EncodeRegVal(output OutputBuffer, addr, val uint32) {
	EncodeVLQUint(output, RspRegVal)
	EncodeVLQUint(output, addr)
	EncodeVLQUint(output, val)
}

// EncodeAck appends an acknowledge response payload.
func EncodeAck(output OutputBuffer) {
	EncodeVLQUint(output, RspAck)
}
